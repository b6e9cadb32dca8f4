package format

import "github.com/dhamidi/jdesc/descriptor"

// Report is the printable summary of one descriptor.
type Report struct {
	Kind       string       `json:"kind" yaml:"kind"`
	Descriptor string       `json:"descriptor" yaml:"descriptor"`
	Display    string       `json:"display" yaml:"display"`
	Size       int          `json:"size" yaml:"size"`
	Dimensions int          `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Root       *TypeReport  `json:"root,omitempty" yaml:"root,omitempty"`
	Parameters []TypeReport `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Return     *TypeReport  `json:"return,omitempty" yaml:"return,omitempty"`
	References []string     `json:"references,omitempty" yaml:"references,omitempty"`
}

type TypeReport struct {
	Kind       string `json:"kind" yaml:"kind"`
	Descriptor string `json:"descriptor" yaml:"descriptor"`
	Display    string `json:"display" yaml:"display"`
	Size       int    `json:"size" yaml:"size"`
}

// Kind names the variant of d: "primitive", "reference", "array" or
// "method".
func Kind(d descriptor.Descriptor) string {
	switch d.(type) {
	case descriptor.Primitive:
		return "primitive"
	case descriptor.Reference:
		return "reference"
	case *descriptor.Array:
		return "array"
	case *descriptor.Method:
		return "method"
	}
	return "unknown"
}

func typeReport(t descriptor.Type) TypeReport {
	return TypeReport{
		Kind:       Kind(t),
		Descriptor: t.String(),
		Display:    t.Display(),
		Size:       t.Size(),
	}
}

// NewReport summarizes d. A non-empty member switches the display to the
// named form.
func NewReport(d descriptor.Descriptor, member string) *Report {
	r := &Report{
		Kind:       Kind(d),
		Descriptor: d.String(),
		Display:    d.Display(),
		References: descriptor.ReferencedNames(d),
	}
	if member != "" {
		r.Display = d.DisplayNamed(member)
	}

	switch d := d.(type) {
	case *descriptor.Array:
		r.Size = d.Size()
		r.Dimensions = d.Dimensions()
		root := typeReport(d.Root())
		r.Root = &root
	case *descriptor.Method:
		r.Size = d.TotalSize()
		for _, p := range d.Parameters() {
			r.Parameters = append(r.Parameters, typeReport(p))
		}
		ret := typeReport(d.ReturnType())
		r.Return = &ret
	case descriptor.Type:
		r.Size = d.Size()
	}
	return r
}
