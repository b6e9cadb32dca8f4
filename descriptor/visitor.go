package descriptor

// Visitor receives every internal name reachable from a descriptor. A
// visitor may also implement any of TypeVisitor, ReferenceVisitor,
// ArrayVisitor, PrimitiveVisitor and MethodVisitor to replace the default
// traversal for that kind.
type Visitor interface {
	VisitInternalName(name string)
}

type TypeVisitor interface {
	VisitType(t Type)
}

type ReferenceVisitor interface {
	VisitReference(r Reference)
}

type ArrayVisitor interface {
	VisitArray(a *Array)
}

type PrimitiveVisitor interface {
	VisitPrimitive(p Primitive)
}

type MethodVisitor interface {
	VisitMethod(m *Method)
}

// VisitorFunc is a Visitor that only cares about internal names.
type VisitorFunc func(name string)

func (f VisitorFunc) VisitInternalName(name string) { f(name) }

// Walk traverses d with v.
func Walk(v Visitor, d Descriptor) {
	switch d := d.(type) {
	case Type:
		WalkType(v, d)
	case *Method:
		WalkMethod(v, d)
	}
}

func WalkType(v Visitor, t Type) {
	if tv, ok := v.(TypeVisitor); ok {
		tv.VisitType(t)
		return
	}
	DefaultType(v, t)
}

// DefaultType dispatches t to the visit method for its kind.
func DefaultType(v Visitor, t Type) {
	switch t := t.(type) {
	case Reference:
		if rv, ok := v.(ReferenceVisitor); ok {
			rv.VisitReference(t)
			return
		}
		v.VisitInternalName(t.name)
	case *Array:
		if av, ok := v.(ArrayVisitor); ok {
			av.VisitArray(t)
			return
		}
		DefaultArray(v, t)
	case Primitive:
		if pv, ok := v.(PrimitiveVisitor); ok {
			pv.VisitPrimitive(t)
		}
	}
}

// DefaultArray visits the element of a.
func DefaultArray(v Visitor, a *Array) {
	WalkType(v, a.elem)
}

func WalkMethod(v Visitor, m *Method) {
	if mv, ok := v.(MethodVisitor); ok {
		mv.VisitMethod(m)
		return
	}
	DefaultMethod(v, m)
}

// DefaultMethod visits each parameter and then the return type.
func DefaultMethod(v Visitor, m *Method) {
	for _, p := range m.params {
		WalkType(v, p)
	}
	WalkType(v, m.ret)
}

// ReferencedNames returns the internal names referenced by d in order of
// first appearance.
func ReferencedNames(d Descriptor) []string {
	seen := make(map[string]bool)
	var names []string
	Walk(VisitorFunc(func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}), d)
	return names
}
