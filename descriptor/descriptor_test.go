package descriptor

import (
	"fmt"
	"testing"
)

func TestPrimitives(t *testing.T) {
	tests := []struct {
		p      Primitive
		prefix byte
		size   int
		name   string
	}{
		{Byte, 'B', 1, "byte"},
		{Short, 'S', 1, "short"},
		{Int, 'I', 1, "int"},
		{Long, 'J', 2, "long"},
		{Float, 'F', 1, "float"},
		{Double, 'D', 2, "double"},
		{Boolean, 'Z', 1, "boolean"},
		{Char, 'C', 1, "char"},
		{Void, 'V', 0, "void"},
	}

	if got := len(Primitives()); got != len(tests) {
		t.Fatalf("len(Primitives()) = %d, want %d", got, len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Prefix() != tt.prefix {
				t.Errorf("Prefix() = %c, want %c", tt.p.Prefix(), tt.prefix)
			}
			if tt.p.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", tt.p.Size(), tt.size)
			}
			if tt.p.Display() != tt.name {
				t.Errorf("Display() = %q, want %q", tt.p.Display(), tt.name)
			}
			if p, ok := PrimitiveFor(tt.prefix); !ok || p != tt.p {
				t.Errorf("PrimitiveFor(%c) = %v, %v", tt.prefix, p, ok)
			}
			if p, ok := PrimitiveNamed(tt.name); !ok || p != tt.p {
				t.Errorf("PrimitiveNamed(%q) = %v, %v", tt.name, p, ok)
			}
		})
	}

	if _, ok := PrimitiveFor('L'); ok {
		t.Error("PrimitiveFor('L') should fail")
	}
	if !IsVoid(Void) || IsVoid(Int) || IsVoid(NewReference("V")) {
		t.Error("IsVoid misclassified a descriptor")
	}
}

func TestInvalidPrimitive(t *testing.T) {
	for _, p := range []Primitive{0, Void + 1, 255} {
		want := fmt.Sprintf("Primitive(%d)", uint8(p))
		if got := p.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
		if got := p.Display(); got != want {
			t.Errorf("Display() = %q, want %q", got, want)
		}
		if p.Size() != 0 || p.Prefix() != 0 {
			t.Errorf("%v: Size() = %d, Prefix() = %d, want 0, 0", p, p.Size(), p.Prefix())
		}
	}
}

func TestIsInternalName(t *testing.T) {
	tests := map[string]bool{
		"java/lang/String": true,
		"Map$Entry":        true,
		"snake_case/$1":    true,
		"":                 false,
		"my pkg/A":         false,
		"java.lang.String": false,
		"a/B;":             false,
		"a/[B":             false,
	}
	for name, want := range tests {
		if got := IsInternalName(name); got != want {
			t.Errorf("IsInternalName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParsedPrimitivesAreShared(t *testing.T) {
	m := MustParseMethod("(IJ)I")
	if m.Parameter(0) != Int || m.ReturnType() != Int {
		t.Error("parsed int is not the Int primitive")
	}
	if m.Parameter(1) != Long {
		t.Error("parsed long is not the Long primitive")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b  string
		equal bool
	}{
		{"I", "I", true},
		{"I", "J", false},
		{"Ljava/lang/String;", "Ljava/lang/String;", true},
		{"Ljava/lang/String;", "Ljava/lang/Object;", false},
		{"[[I", "[[I", true},
		{"[[I", "[I", false},
		{"[[I", "[[J", false},
		{"[I", "I", false},
		{"(I[J)V", "(I[J)V", true},
		{"(I[J)V", "(I[J)I", false},
		{"(I)V", "(II)V", false},
		{"()V", "()V", true},
	}
	for _, tt := range tests {
		if got := Equal(MustParse(tt.a), MustParse(tt.b)); got != tt.equal {
			t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}

	if MustParseReference("LA;") != NewReference("A") {
		t.Error("references with the same name should compare equal with ==")
	}
	if Equal(Int, MustParseMethod("()I")) {
		t.Error("a type should never equal a method")
	}
}

func TestConstructors(t *testing.T) {
	a := NewArrayOf(NewReference("java/lang/String"), 2)
	if got := a.String(); got != "[[Ljava/lang/String;" {
		t.Errorf("NewArrayOf = %q", got)
	}
	if !Equal(a, NewArray(NewArray(NewReference("java/lang/String")))) {
		t.Error("NewArrayOf should match nested NewArray")
	}

	m := NewMethod(Void, Int, a)
	if got := m.String(); got != "(I[[Ljava/lang/String;)V" {
		t.Errorf("NewMethod = %q", got)
	}

	params := m.Parameters()
	params[0] = Long
	if m.Parameter(0) != Int {
		t.Error("Parameters() should return a copy")
	}
}

func TestConstructorPreconditions(t *testing.T) {
	tests := map[string]func(){
		"empty reference":     func() { NewReference("") },
		"semicolon reference": func() { NewReference("a;b") },
		"nil array":           func() { NewArray(nil) },
		"void array":          func() { NewArray(Void) },
		"zero dimensions":     func() { NewArrayOf(Int, 0) },
		"nil return":          func() { NewMethod(nil) },
		"nil parameter":       func() { NewMethod(Void, Int, nil) },
		"void parameter":      func() { NewMethod(Void, Void) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", name)
				}
			}()
			fn()
		})
	}
}

func TestMethodSizes(t *testing.T) {
	tests := []struct {
		desc   string
		count  int
		params int
		ret    int
	}{
		{"()V", 0, 0, 0},
		{"(IJ)V", 2, 3, 0},
		{"(DJ)J", 2, 4, 2},
		{"(Ljava/lang/Object;[J)D", 2, 2, 2},
		{"(ZBSC)Ljava/lang/String;", 4, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			m := MustParseMethod(tt.desc)
			if got := m.ParameterCount(); got != tt.count {
				t.Errorf("ParameterCount() = %d, want %d", got, tt.count)
			}
			if got := m.ParametersSize(); got != tt.params {
				t.Errorf("ParametersSize() = %d, want %d", got, tt.params)
			}
			if got := m.ReturnSize(); got != tt.ret {
				t.Errorf("ReturnSize() = %d, want %d", got, tt.ret)
			}
			if got := m.TotalSize(); got != tt.params+tt.ret {
				t.Errorf("TotalSize() = %d, want %d", got, tt.params+tt.ret)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	tests := map[string]byte{
		"I":                  'I',
		"Ljava/lang/String;": 'L',
		"[I":                 '[',
	}
	for desc, want := range tests {
		if got := MustParseType(desc).Prefix(); got != want {
			t.Errorf("%s: Prefix() = %c, want %c", desc, got, want)
		}
	}
}

func TestDisplayNamed(t *testing.T) {
	tests := []struct {
		desc   string
		member string
		want   string
	}{
		{"I", "count", "int count"},
		{"[Ljava/lang/String;", "args", "java.lang.String[] args"},
		{"([Ljava/lang/String;)V", "main", "void main(java.lang.String[])"},
		{"(IJ)Ljava/util/Map$Entry;", "entry", "java.util.Map.Entry entry(int, long)"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.desc).DisplayNamed(tt.member); got != tt.want {
			t.Errorf("%s.DisplayNamed(%q) = %q, want %q", tt.desc, tt.member, got, tt.want)
		}
	}
}
