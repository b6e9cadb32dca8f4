package descriptor

import (
	"fmt"
	"strings"
)

// Method is a method descriptor: parameter types and a return type.
type Method struct {
	params []Type
	ret    Type
}

// NewMethod panics if ret or a parameter is nil, or if a parameter is
// Void.
func NewMethod(ret Type, params ...Type) *Method {
	if ret == nil {
		panic("descriptor: nil return type")
	}
	for i, p := range params {
		if p == nil {
			panic(fmt.Sprintf("descriptor: nil parameter %d", i))
		}
		if IsVoid(p) {
			panic(fmt.Sprintf("descriptor: void parameter %d", i))
		}
	}
	return &Method{params: append([]Type(nil), params...), ret: ret}
}

func (m *Method) Parameter(i int) Type { return m.params[i] }
func (m *Method) ParameterCount() int  { return len(m.params) }

// Parameters returns a copy of the parameter list.
func (m *Method) Parameters() []Type {
	return append([]Type(nil), m.params...)
}

func (m *Method) ReturnType() Type { return m.ret }

// ParametersSize is the number of local variable slots taken by the
// parameters, not counting the receiver.
func (m *Method) ParametersSize() int {
	size := 0
	for _, p := range m.params {
		size += p.Size()
	}
	return size
}

func (m *Method) ReturnSize() int { return m.ret.Size() }

func (m *Method) TotalSize() int {
	return m.ParametersSize() + m.ReturnSize()
}

func (m *Method) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, p := range m.params {
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	sb.WriteString(m.ret.String())
	return sb.String()
}

func (m *Method) displayParams() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = p.Display()
	}
	return strings.Join(parts, ", ")
}

func (m *Method) Display() string {
	return fmt.Sprintf("%s (%s)", m.ret.Display(), m.displayParams())
}

func (m *Method) DisplayNamed(member string) string {
	return fmt.Sprintf("%s %s(%s)", m.ret.Display(), member, m.displayParams())
}

func (m *Method) Accept(v Visitor) { WalkMethod(v, m) }

func (m *Method) Remap(mapper Mapper) *Method {
	params := make([]Type, len(m.params))
	for i, p := range m.params {
		params[i] = RemapType(p, mapper)
	}
	return &Method{params: params, ret: RemapType(m.ret, mapper)}
}

func (m *Method) Equal(o *Method) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || len(m.params) != len(o.params) {
		return false
	}
	for i := range m.params {
		if !Equal(m.params[i], o.params[i]) {
			return false
		}
	}
	return Equal(m.ret, o.ret)
}

func (*Method) descriptor() {}
