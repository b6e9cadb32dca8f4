package format

import (
	"fmt"
	"io"
	"strings"
)

// LineEncoder writes one tab-separated record per line: the descriptor
// itself, then its parameters, return type and referenced classes.
type LineEncoder struct {
	w      io.Writer
	report *Report
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(report *Report) error {
	e.report = report
	return encode(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	fmt.Fprintf(&sb, "%s\t%s\t%s\t%d\n", r.Kind, r.Descriptor, r.Display, r.Size)

	if r.Root != nil {
		fmt.Fprintf(&sb, "root\t%d\t%s\t%s\n", r.Dimensions, r.Root.Descriptor, r.Root.Display)
	}

	for i, p := range r.Parameters {
		fmt.Fprintf(&sb, "param\t%d\t%s\t%s\t%d\n", i, p.Descriptor, p.Display, p.Size)
	}

	if r.Return != nil {
		fmt.Fprintf(&sb, "return\t%s\t%s\t%d\n", r.Return.Descriptor, r.Return.Display, r.Return.Size)
	}

	for _, name := range r.References {
		fmt.Fprintf(&sb, "class\t%s\n", name)
	}

	return []byte(sb.String()), nil
}
