package classfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/jdesc/descriptor"
	"github.com/dhamidi/jdesc/internalname"
)

var ErrInvalidType = errors.New("invalid field type")

// FieldType is the flat form of a field descriptor used by class file
// tooling: either BaseType or ClassName is set, wrapped in ArrayDepth
// array dimensions.
type FieldType struct {
	BaseType   string
	ClassName  string
	ArrayDepth int
}

func (ft *FieldType) String() string {
	var sb strings.Builder
	if ft.BaseType != "" {
		sb.WriteString(ft.BaseType)
	} else if ft.ClassName != "" {
		sb.WriteString(InternalToSourceName(ft.ClassName))
	}
	for i := 0; i < ft.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (ft *FieldType) IsArray() bool {
	return ft.ArrayDepth > 0
}

func (ft *FieldType) IsPrimitive() bool {
	return ft.BaseType != "" && ft.ClassName == "" && ft.ArrayDepth == 0
}

func (ft *FieldType) IsReference() bool {
	return ft.ClassName != "" || ft.ArrayDepth > 0
}

func (ft *FieldType) IsVoid() bool {
	return ft.BaseType == descriptor.Void.Display() && ft.ArrayDepth == 0
}

// FromType flattens t.
func FromType(t descriptor.Type) FieldType {
	var ft FieldType
	if a, ok := t.(*descriptor.Array); ok {
		ft.ArrayDepth = a.Dimensions()
		t = a.Root()
	}
	switch t := t.(type) {
	case descriptor.Primitive:
		ft.BaseType = t.Display()
	case descriptor.Reference:
		ft.ClassName = t.InternalName()
	}
	return ft
}

// ToType rebuilds the descriptor.Type that ft flattens.
func (ft *FieldType) ToType() (descriptor.Type, error) {
	if ft.ArrayDepth < 0 {
		return nil, fmt.Errorf("%w: negative array depth %d", ErrInvalidType, ft.ArrayDepth)
	}

	var root descriptor.Type
	switch {
	case ft.BaseType != "" && ft.ClassName != "":
		return nil, fmt.Errorf("%w: both base type %q and class %q set", ErrInvalidType, ft.BaseType, ft.ClassName)
	case ft.BaseType != "":
		p, ok := descriptor.PrimitiveNamed(ft.BaseType)
		if !ok {
			return nil, fmt.Errorf("%w: unknown base type %q", ErrInvalidType, ft.BaseType)
		}
		if p == descriptor.Void && ft.ArrayDepth > 0 {
			return nil, fmt.Errorf("%w: array of void", ErrInvalidType)
		}
		root = p
	case ft.ClassName != "":
		if strings.ContainsRune(ft.ClassName, ';') {
			return nil, fmt.Errorf("%w: class name %q contains ';'", ErrInvalidType, ft.ClassName)
		}
		root = descriptor.NewReference(ft.ClassName)
	default:
		return nil, fmt.Errorf("%w: neither base type nor class set", ErrInvalidType)
	}

	if ft.ArrayDepth == 0 {
		return root, nil
	}
	return descriptor.NewArrayOf(root, ft.ArrayDepth), nil
}

// Descriptor renders ft in descriptor syntax, or "" when ft is invalid.
func (ft *FieldType) Descriptor() string {
	t, err := ft.ToType()
	if err != nil {
		return ""
	}
	return t.String()
}

// MethodDescriptor is the flat form of a method descriptor. A nil
// ReturnType means void.
type MethodDescriptor struct {
	Parameters []FieldType
	ReturnType *FieldType
}

func (md *MethodDescriptor) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range md.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	if md.ReturnType != nil {
		sb.WriteString(" ")
		sb.WriteString(md.ReturnType.String())
	} else {
		sb.WriteString(" void")
	}
	return sb.String()
}

func FromMethod(m *descriptor.Method) MethodDescriptor {
	md := MethodDescriptor{}
	for _, p := range m.Parameters() {
		md.Parameters = append(md.Parameters, FromType(p))
	}
	if !descriptor.IsVoid(m.ReturnType()) {
		ret := FromType(m.ReturnType())
		md.ReturnType = &ret
	}
	return md
}

func (md *MethodDescriptor) ToMethod() (*descriptor.Method, error) {
	params := make([]descriptor.Type, len(md.Parameters))
	for i := range md.Parameters {
		p := &md.Parameters[i]
		if p.IsVoid() {
			return nil, fmt.Errorf("parameter %d: %w: void parameter", i, ErrInvalidType)
		}
		t, err := p.ToType()
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		params[i] = t
	}

	var ret descriptor.Type = descriptor.Void
	if md.ReturnType != nil {
		t, err := md.ReturnType.ToType()
		if err != nil {
			return nil, fmt.Errorf("return type: %w", err)
		}
		ret = t
	}
	return descriptor.NewMethod(ret, params...), nil
}

func (md *MethodDescriptor) Descriptor() string {
	m, err := md.ToMethod()
	if err != nil {
		return ""
	}
	return m.String()
}

func ParseFieldDescriptor(desc string) (*FieldType, error) {
	t, err := descriptor.ParseType(desc)
	if err != nil {
		return nil, err
	}
	ft := FromType(t)
	return &ft, nil
}

func ParseMethodDescriptor(desc string) (*MethodDescriptor, error) {
	m, err := descriptor.ParseMethod(desc)
	if err != nil {
		return nil, err
	}
	md := FromMethod(m)
	return &md, nil
}

func InternalToSourceName(name string) string {
	return internalname.ToSourceName(name)
}

func SourceToInternalName(name string) string {
	return internalname.FromSourceName(name)
}
