package descriptor

import "github.com/dhamidi/jdesc/internalname"

// Mapper rewrites internal class names.
type Mapper interface {
	Map(internalName string) string
}

type MapperFunc func(internalName string) string

func (f MapperFunc) Map(internalName string) string { return f(internalName) }

// Identity maps every name to itself.
var Identity Mapper = MapperFunc(func(name string) string { return name })

// PackageMapper moves classes in package from, and its subpackages, to
// package to.
func PackageMapper(from, to string) Mapper {
	return MapperFunc(func(name string) string {
		return internalname.RenamePackage(name, from, to)
	})
}

// ClassMapper renames class from, and the classes nested in it, to to.
func ClassMapper(from, to string) Mapper {
	return MapperFunc(func(name string) string {
		return internalname.RenameClass(name, from, to)
	})
}

// ChainMapper applies mappers left to right.
func ChainMapper(mappers ...Mapper) Mapper {
	return MapperFunc(func(name string) string {
		for _, m := range mappers {
			name = m.Map(name)
		}
		return name
	})
}

// Remap returns d with every internal name replaced by its image under m.
// d itself is left untouched.
func Remap(d Descriptor, m Mapper) Descriptor {
	switch d := d.(type) {
	case Type:
		return RemapType(d, m)
	case *Method:
		return d.Remap(m)
	}
	return d
}

func RemapType(t Type, m Mapper) Type {
	switch t := t.(type) {
	case Primitive:
		return t
	case Reference:
		return t.Remap(m)
	case *Array:
		return t.Remap(m)
	}
	return t
}
