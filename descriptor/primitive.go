package descriptor

import "fmt"

// Primitive is one of the nine JVM primitive types, including void.
type Primitive uint8

const (
	Byte Primitive = iota + 1
	Short
	Int
	Long
	Float
	Double
	Boolean
	Char
	Void
)

type primitiveInfo struct {
	prefix byte
	size   int
	name   string
}

var primitives = [...]primitiveInfo{
	Byte:    {'B', 1, "byte"},
	Short:   {'S', 1, "short"},
	Int:     {'I', 1, "int"},
	Long:    {'J', 2, "long"},
	Float:   {'F', 1, "float"},
	Double:  {'D', 2, "double"},
	Boolean: {'Z', 1, "boolean"},
	Char:    {'C', 1, "char"},
	Void:    {'V', 0, "void"},
}

// Primitives lists every primitive in declaration order.
func Primitives() []Primitive {
	return []Primitive{Byte, Short, Int, Long, Float, Double, Boolean, Char, Void}
}

// PrimitiveFor returns the primitive with the given descriptor letter.
func PrimitiveFor(prefix byte) (Primitive, bool) {
	for _, p := range Primitives() {
		if primitives[p].prefix == prefix {
			return p, true
		}
	}
	return 0, false
}

// PrimitiveNamed returns the primitive with the given source keyword.
func PrimitiveNamed(name string) (Primitive, bool) {
	for _, p := range Primitives() {
		if primitives[p].name == name {
			return p, true
		}
	}
	return 0, false
}

func (p Primitive) valid() bool {
	return p >= Byte && p <= Void
}

func (p Primitive) info() primitiveInfo {
	if !p.valid() {
		return primitiveInfo{}
	}
	return primitives[p]
}

func (p Primitive) Size() int    { return p.info().size }
func (p Primitive) Prefix() byte { return p.info().prefix }

func (p Primitive) String() string {
	if !p.valid() {
		return fmt.Sprintf("Primitive(%d)", uint8(p))
	}
	return string(p.info().prefix)
}

func (p Primitive) Display() string {
	if !p.valid() {
		return fmt.Sprintf("Primitive(%d)", uint8(p))
	}
	return p.info().name
}

func (p Primitive) DisplayNamed(member string) string {
	return displayNamed(p, member)
}

func (p Primitive) Accept(v Visitor) { WalkType(v, p) }

func (p Primitive) Remap(Mapper) Primitive { return p }

func (Primitive) descriptor() {}
func (Primitive) typ()        {}
