// Package internalname manipulates slash-separated JVM internal class names
// such as "java/lang/String" or "java/util/Map$Entry".
package internalname

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNotInner is returned by OuterClass for names without a '$' separator.
var ErrNotInner = errors.New("not an inner class")

var (
	validClassPattern     = regexp.MustCompile(`^(?:[a-zA-Z$_][a-zA-Z0-9$_]*?/)*[a-zA-Z$_][a-zA-Z0-9$_]*?(?:\$[a-zA-Z0-9_]+?)*$`)
	anonymousClassPattern = regexp.MustCompile(`^(.*)\$[0-9]+$`)
)

// PackageName returns everything before the last '/', or "" for names in
// the main package.
func PackageName(name string) string {
	lastSlash := strings.LastIndexByte(name, '/')
	if lastSlash == -1 {
		return ""
	}
	return name[:lastSlash]
}

// ClassName returns everything after the last '/', including any '$'
// nesting.
func ClassName(name string) string {
	lastSlash := strings.LastIndexByte(name, '/')
	if lastSlash == -1 {
		return name
	}
	return name[lastSlash+1:]
}

// SimpleName returns the innermost class name, after the last '$'.
func SimpleName(name string) string {
	cls := ClassName(name)
	lastDollar := strings.LastIndexByte(cls, '$')
	if lastDollar == -1 {
		return cls
	}
	return cls[lastDollar+1:]
}

func IsInnerClass(name string) bool {
	return strings.IndexByte(ClassName(name), '$') != -1
}

// OuterClass strips the innermost nesting level:
// "a/Outer$Inner$1" becomes "a/Outer$Inner".
func OuterClass(name string) (string, error) {
	pkg, cls := PackageName(name), ClassName(name)
	lastDollar := strings.LastIndexByte(cls, '$')
	if lastDollar == -1 {
		return "", fmt.Errorf("%w: '%s'", ErrNotInner, name)
	}
	return WrapPackage(pkg, cls[:lastDollar]), nil
}

// RootClass returns the top-level class enclosing name, or name itself
// when it is not nested.
func RootClass(name string) string {
	pkg, cls := PackageName(name), ClassName(name)
	dollar := strings.IndexByte(cls, '$')
	if dollar == -1 {
		return name
	}
	return WrapPackage(pkg, cls[:dollar])
}

// IsAnonymous reports whether name ends in a numeric '$' suffix, the
// compiler's naming for anonymous classes.
func IsAnonymous(name string) bool {
	return anonymousClassPattern.MatchString(name)
}

func InMainPackage(name string) bool {
	return strings.IndexByte(name, '/') == -1
}

// IsValid reports whether name is a well formed internal class name whose
// package segments are Java identifiers.
func IsValid(name string) bool {
	return validClassPattern.MatchString(name)
}

// Display renders name the way it is written in source code, with both
// package and nesting separators replaced by '.'.
func Display(name string) string {
	cls := strings.ReplaceAll(ClassName(name), "$", ".")
	if InMainPackage(name) {
		return cls
	}
	return strings.ReplaceAll(PackageName(name), "/", ".") + "." + cls
}

func WrapPackage(pkg, cls string) string {
	if pkg == "" {
		return cls
	}
	return pkg + "/" + cls
}

func WrapClass(name, inner string) string {
	return name + "$" + inner
}

// ToSourceName converts an internal name to a dotted binary name,
// keeping '$' nesting separators: "java/util/Map$Entry" becomes
// "java.util.Map$Entry".
func ToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// FromSourceName converts a dotted binary name to an internal name.
func FromSourceName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// InPackage reports whether name lives in pkg or in one of its
// subpackages. Every name lives in the empty package.
func InPackage(name, pkg string) bool {
	if pkg == "" {
		return true
	}
	if len(pkg) >= len(name) {
		return false
	}
	return name[len(pkg)] == '/' && strings.HasPrefix(name, pkg)
}

// RenamePackage moves name from package prefix from to package prefix to.
// Names outside from are returned unchanged.
func RenamePackage(name, from, to string) string {
	if from == to {
		return name
	}
	if from == "" {
		return to + "/" + name
	}
	if InPackage(name, from) {
		return to + name[len(from):]
	}
	return name
}

// InClass reports whether name is a class nested inside cls.
func InClass(name, cls string) bool {
	if len(cls) >= len(name) {
		return false
	}
	rest := name[len(cls):]
	return rest[0] == '$' && strings.IndexByte(rest, '/') == -1 && strings.HasPrefix(name, cls)
}

// RenameClass renames the class from to to, carrying its nested classes
// along. Other names are returned unchanged.
func RenameClass(name, from, to string) string {
	if from == to {
		return name
	}
	if name == from {
		return to
	}
	if InClass(name, from) {
		return to + name[len(from):]
	}
	return name
}
