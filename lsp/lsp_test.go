package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/jdesc/descriptor"
)

const sample = `mv.visitMethodInsn(INVOKESTATIC, "a/B", "run", "(ILjava/lang/String;)V", false);
String desc = "[[I";
bad = "LUnterminated";`

func TestTokenAt(t *testing.T) {
	tok, ok := TokenAt(sample, 0, 55)
	require.True(t, ok)
	assert.Equal(t, "(ILjava/lang/String;)V", tok.Text)
	assert.Equal(t, 0, tok.Line)
	assert.Equal(t, sample[tok.Start:tok.End], tok.Text)

	tok, ok = TokenAt(sample, 1, 16)
	require.True(t, ok)
	assert.Equal(t, "[[I", tok.Text)

	_, ok = TokenAt(sample, 1, 13)
	assert.False(t, ok)
	_, ok = TokenAt(sample, 7, 0)
	assert.False(t, ok)
	_, ok = TokenAt(sample, 0, 500)
	assert.False(t, ok)
}

func TestDescriptorAt(t *testing.T) {
	_, d, ok := DescriptorAt(sample, 0, 50)
	require.True(t, ok)
	assert.Equal(t, "void (int, java.lang.String)", d.Display())

	tok, _, ok := DescriptorAt(sample, 2, 10)
	assert.False(t, ok)
	assert.Equal(t, "LUnterminated", tok.Text)
}

func TestHoverText(t *testing.T) {
	text := HoverText(descriptor.MustParse("(JLa/B;)D"))
	assert.Contains(t, text, "double (long, a.B)")
	assert.Contains(t, text, "parameters: 2, parameter slots: 3, return slots: 2")
	assert.Contains(t, text, "references: `a/B`")

	text = HoverText(descriptor.MustParse("[[I"))
	assert.Contains(t, text, "dimensions: 2, element: `int`")
	assert.NotContains(t, text, "references")

	assert.Contains(t, HoverText(descriptor.Long), "stack slots: 2")
}

func TestServerHover(t *testing.T) {
	ls := NewServer("test")
	assert.Nil(t, ls.Hover("file:///x.java", 0, 0))

	ls.Update("file:///x.java", sample)
	hover := ls.Hover("file:///x.java", 1, 15)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Equal(t, protocol.MarkupKindMarkdown, content.Kind)
	assert.Contains(t, content.Value, "int[][]")
	require.NotNil(t, hover.Range)
	assert.Equal(t, protocol.UInteger(1), hover.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(15), hover.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(18), hover.Range.End.Character)

	assert.Nil(t, ls.Hover("file:///x.java", 2, 10))
}
