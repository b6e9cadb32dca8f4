package descriptor

import (
	"strings"
	"testing"
)

var lavaJang = MapperFunc(func(name string) string {
	if strings.HasPrefix(name, "java/lang") {
		return "lava/jang" + name[len("java/lang"):]
	}
	return name
})

func TestRemapMethod(t *testing.T) {
	m := NewMethod(Void, Int, NewArray(NewReference("java/lang/String")), NewArray(Int))
	remapped := m.Remap(lavaJang)

	if got := remapped.String(); got != "(I[Llava/jang/String;[I)V" {
		t.Errorf("Remap = %q", got)
	}
	if got := remapped.Display(); got != "void (int, lava.jang.String[], int[])" {
		t.Errorf("Display() = %q", got)
	}
	if got := m.String(); got != "(I[Ljava/lang/String;[I)V" {
		t.Errorf("original changed to %q", got)
	}
	if remapped.Parameter(0) != Int || remapped.ReturnType() != Void {
		t.Error("primitives should survive remapping unchanged")
	}
}

func TestRemapIdentity(t *testing.T) {
	for _, in := range []string{
		"I", "Ljava/lang/String;", "[[[La/B$C;", "()V", "(IJLa/b;[[D)[Lc/D;",
	} {
		d := MustParse(in)
		if got := Remap(d, Identity); !Equal(got, d) {
			t.Errorf("Remap(%s, Identity) = %s", in, got)
		}
	}
}

func TestRemapKeepsShape(t *testing.T) {
	d := MustParseArray("[[Ljava/lang/Object;")
	got := d.Remap(lavaJang)
	if got.Dimensions() != 2 {
		t.Errorf("Dimensions() = %d, want 2", got.Dimensions())
	}
	if got.String() != "[[Llava/jang/Object;" {
		t.Errorf("Remap = %q", got)
	}
	if RemapType(Long, lavaJang) != Long {
		t.Error("primitive remap should be identity")
	}
}

func TestRemapMethodsMatchRemap(t *testing.T) {
	ref := MustParseReference("Ljava/lang/String;")
	arr := MustParseArray("[Ljava/lang/String;")
	m := MustParseMethod("(Ljava/lang/String;)V")

	tests := []struct {
		method Descriptor
		in     Descriptor
	}{
		{Int.Remap(lavaJang), Int},
		{ref.Remap(lavaJang), ref},
		{arr.Remap(lavaJang), arr},
		{m.Remap(lavaJang), m},
	}
	for _, tt := range tests {
		if want := Remap(tt.in, lavaJang); !Equal(tt.method, want) {
			t.Errorf("%s: Remap method = %s, Remap function = %s", tt.in, tt.method, want)
		}
	}
}

func TestPackageAndClassMappers(t *testing.T) {
	d := MustParse("(Ljava/lang/String;Lcom/acme/Widget$Part;Lcom/acme/WidgetFactory;)Ljava/util/List;")

	got := Remap(d, ChainMapper(
		PackageMapper("java/lang", "lava/jang"),
		ClassMapper("com/acme/Widget", "com/acme/Gadget"),
	))
	want := "(Llava/jang/String;Lcom/acme/Gadget$Part;Lcom/acme/WidgetFactory;)Ljava/util/List;"
	if got.String() != want {
		t.Errorf("Remap = %q, want %q", got, want)
	}
}
