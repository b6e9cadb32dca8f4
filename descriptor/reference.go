package descriptor

import (
	"strings"

	"github.com/dhamidi/jdesc/internalname"
)

// Reference is an object type named by its internal name, e.g.
// "java/lang/String".
type Reference struct {
	name string
}

// NewReference panics if internalName is empty or contains ';'.
func NewReference(internalName string) Reference {
	if internalName == "" {
		panic("descriptor: empty internal name")
	}
	if strings.IndexByte(internalName, ';') != -1 {
		panic("descriptor: internal name contains ';': " + internalName)
	}
	return Reference{name: internalName}
}

// IsInternalName reports whether name can appear between 'L' and ';' in a
// descriptor: non-empty and drawn from [A-Za-z0-9_$/].
func IsInternalName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isNameChar(name[i]) {
			return false
		}
	}
	return true
}

func (r Reference) InternalName() string { return r.name }

func (r Reference) Size() int    { return 1 }
func (r Reference) Prefix() byte { return 'L' }

func (r Reference) String() string {
	return "L" + r.name + ";"
}

func (r Reference) Display() string {
	return internalname.Display(r.name)
}

func (r Reference) DisplayNamed(member string) string {
	return displayNamed(r, member)
}

func (r Reference) Accept(v Visitor) { WalkType(v, r) }

// Remap returns a reference to m's image of the internal name.
func (r Reference) Remap(m Mapper) Reference {
	return NewReference(m.Map(r.name))
}

func (Reference) descriptor() {}
func (Reference) typ()        {}
