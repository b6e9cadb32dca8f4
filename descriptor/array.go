package descriptor

import "fmt"

// Array is an array type. Multi-dimensional arrays nest: "[[I" is an Array
// whose element is the Array "[I".
type Array struct {
	elem Type
}

// NewArray panics if elem is nil or Void.
func NewArray(elem Type) *Array {
	if elem == nil {
		panic("descriptor: nil array element")
	}
	if IsVoid(elem) {
		panic("descriptor: void array element")
	}
	return &Array{elem: elem}
}

// NewArrayOf wraps elem in dims array layers.
func NewArrayOf(elem Type, dims int) *Array {
	if dims < 1 {
		panic(fmt.Sprintf("descriptor: array dimensions must be positive, got %d", dims))
	}
	out := NewArray(elem)
	for ; dims > 1; dims-- {
		out = NewArray(out)
	}
	return out
}

func (a *Array) Element() Type { return a.elem }

// Root returns the innermost element type, which is never an array.
func (a *Array) Root() Type {
	out := a.elem
	for {
		inner, ok := out.(*Array)
		if !ok {
			return out
		}
		out = inner.elem
	}
}

func (a *Array) Dimensions() int {
	if inner, ok := a.elem.(*Array); ok {
		return 1 + inner.Dimensions()
	}
	return 1
}

func (a *Array) Size() int    { return 1 }
func (a *Array) Prefix() byte { return '[' }

func (a *Array) String() string {
	return "[" + a.elem.String()
}

func (a *Array) Display() string {
	return a.elem.Display() + "[]"
}

func (a *Array) DisplayNamed(member string) string {
	return displayNamed(a, member)
}

func (a *Array) Accept(v Visitor) { WalkType(v, a) }

func (a *Array) Remap(m Mapper) *Array {
	return NewArray(RemapType(a.elem, m))
}

func (a *Array) Equal(o *Array) bool {
	if a == o {
		return true
	}
	if a == nil || o == nil {
		return false
	}
	return Equal(a.elem, o.elem)
}

func (*Array) descriptor() {}
func (*Array) typ()        {}
