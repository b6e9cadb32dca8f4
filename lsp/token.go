package lsp

import (
	"fmt"
	"strings"

	"github.com/dhamidi/jdesc/descriptor"
)

// Token is a candidate descriptor literal found in a document. Start and
// End are byte offsets within the line.
type Token struct {
	Text  string
	Line  int
	Start int
	End   int
}

func isDescriptorChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("_$/;()[", c) != -1
}

// TokenAt returns the maximal run of descriptor characters around column
// col of line (both zero-based).
func TokenAt(content string, line, col int) (Token, bool) {
	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return Token{}, false
	}
	text := strings.TrimSuffix(lines[line], "\r")
	if col < 0 || col > len(text) {
		return Token{}, false
	}

	start := col
	for start > 0 && isDescriptorChar(text[start-1]) {
		start--
	}
	end := col
	for end < len(text) && isDescriptorChar(text[end]) {
		end++
	}
	if start == end {
		return Token{}, false
	}
	return Token{Text: text[start:end], Line: line, Start: start, End: end}, true
}

// DescriptorAt parses the token under the cursor. It fails when there is
// no token or the token is not a valid descriptor.
func DescriptorAt(content string, line, col int) (Token, descriptor.Descriptor, bool) {
	tok, ok := TokenAt(content, line, col)
	if !ok {
		return Token{}, nil, false
	}
	d, err := descriptor.Parse(tok.Text)
	if err != nil {
		return tok, nil, false
	}
	return tok, d, true
}

// HoverText renders the Markdown shown when hovering over d.
func HoverText(d descriptor.Descriptor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "```java\n%s\n```\n", d.Display())

	switch d := d.(type) {
	case *descriptor.Method:
		fmt.Fprintf(&sb, "\nparameters: %d, parameter slots: %d, return slots: %d",
			d.ParameterCount(), d.ParametersSize(), d.ReturnSize())
	case *descriptor.Array:
		fmt.Fprintf(&sb, "\ndimensions: %d, element: `%s`", d.Dimensions(), d.Root().Display())
	case descriptor.Type:
		fmt.Fprintf(&sb, "\nstack slots: %d", d.Size())
	}

	if names := descriptor.ReferencedNames(d); len(names) > 0 {
		fmt.Fprintf(&sb, "\n\nreferences: `%s`", strings.Join(names, "`, `"))
	}
	return sb.String()
}
