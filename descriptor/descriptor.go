// Package descriptor models JVM field and method descriptors such as
// "I", "[Ljava/lang/String;" or "(IJ)V".
//
// A parsed descriptor is an immutable tree built from four kinds:
// Primitive, Reference, *Array and *Method. Primitive, Reference and
// *Array implement Type; every kind implements Descriptor. Consumers
// dispatch on the kind with a type switch.
package descriptor

// Descriptor is either a Type or a *Method.
type Descriptor interface {
	// String returns the canonical descriptor syntax, which parses back to
	// an equal value.
	String() string
	// Display returns the source-like form, e.g. "java.lang.String[]".
	Display() string
	// DisplayNamed renders a declaration of member with this descriptor.
	DisplayNamed(member string) string
	Accept(v Visitor)

	descriptor()
}

// Type classifies a value: a Primitive, a Reference or an *Array.
type Type interface {
	Descriptor
	// Size is the number of operand stack slots a value of this type
	// occupies.
	Size() int
	// Prefix is the first byte of the descriptor syntax.
	Prefix() byte

	typ()
}

// Equal reports whether a and b describe the same descriptor.
func Equal(a, b Descriptor) bool {
	switch a := a.(type) {
	case Primitive:
		b, ok := b.(Primitive)
		return ok && a == b
	case Reference:
		b, ok := b.(Reference)
		return ok && a == b
	case *Array:
		b, ok := b.(*Array)
		return ok && a.Equal(b)
	case *Method:
		b, ok := b.(*Method)
		return ok && a.Equal(b)
	}
	return false
}

// IsVoid reports whether d is the void return type.
func IsVoid(d Descriptor) bool {
	p, ok := d.(Primitive)
	return ok && p == Void
}

func displayNamed(d Descriptor, member string) string {
	return d.Display() + " " + member
}
