package descriptor

import "fmt"

type parser struct {
	input string
	pos   int
}

func (p *parser) fail(msg string, index int) error {
	return &FormatError{Message: msg, Input: p.input, Index: index}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	return p.input[p.pos]
}

func (p *parser) finish() error {
	if !p.eof() {
		return p.fail("Extra input", p.pos)
	}
	return nil
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '$' || c == '_' || c == '/'
}

// terminal reads a primitive letter other than 'V'.
func (p *parser) terminal() (Primitive, error) {
	c := p.peek()
	if prim, ok := PrimitiveFor(c); ok && prim != Void {
		p.pos++
		return prim, nil
	}
	return 0, p.fail(fmt.Sprintf("No such descriptor for prefix '%c'", c), p.pos)
}

func (p *parser) primitive() (Primitive, error) {
	if p.eof() {
		return 0, p.fail("Expected primitive descriptor", p.pos)
	}
	return p.terminal()
}

func (p *parser) reference() (Reference, error) {
	if p.eof() {
		return Reference{}, p.fail("Expected reference descriptor", p.pos)
	}
	if p.peek() != 'L' {
		return Reference{}, p.fail("Expected 'L' to start reference", p.pos)
	}
	p.pos++
	return p.internalName()
}

// internalName reads the name and the terminating ';' after an 'L'.
func (p *parser) internalName() (Reference, error) {
	start := p.pos
	for end := start; end < len(p.input); end++ {
		c := p.input[end]
		if c == ';' {
			if end == start {
				return Reference{}, p.fail("Empty internal name", start)
			}
			p.pos = end + 1
			return Reference{name: p.input[start:end]}, nil
		}
		if !isNameChar(c) {
			return Reference{}, p.fail(fmt.Sprintf("Illegal character in internal name: '%c'", c), end)
		}
	}
	return Reference{}, p.fail("Unfinished reference descriptor", len(p.input))
}

func (p *parser) array() (*Array, error) {
	if p.eof() {
		return nil, p.fail("Expected array descriptor", p.pos)
	}
	if p.peek() != '[' {
		return nil, p.fail("Expected '[' to start array", p.pos)
	}
	p.pos++
	elem, err := p.fieldType()
	if err != nil {
		return nil, err
	}
	return &Array{elem: elem}, nil
}

// fieldType reads any Type except void.
func (p *parser) fieldType() (Type, error) {
	if p.eof() {
		return nil, p.fail("Expected type descriptor", p.pos)
	}
	switch p.peek() {
	case 'L':
		p.pos++
		return p.internalName()
	case '[':
		return p.array()
	}
	return p.terminal()
}

func (p *parser) returnType() (Type, error) {
	if p.eof() {
		return nil, p.fail("Expected return type descriptor", p.pos)
	}
	if p.peek() == 'V' {
		p.pos++
		return Void, nil
	}
	return p.fieldType()
}

func (p *parser) method() (*Method, error) {
	if p.eof() || p.peek() != '(' {
		return nil, p.fail("Expected '(' in method descriptor", p.pos)
	}
	p.pos++

	var params []Type
	for !p.eof() && p.peek() != ')' {
		t, err := p.fieldType()
		if err != nil {
			return nil, err
		}
		params = append(params, t)
	}
	if p.eof() {
		return nil, p.fail("Unfinished list of parameter types", p.pos)
	}
	p.pos++

	ret, err := p.returnType()
	if err != nil {
		return nil, err
	}
	return &Method{params: params, ret: ret}, nil
}

func (p *parser) descriptor() (Descriptor, error) {
	if p.eof() {
		return nil, p.fail("Expected descriptor", p.pos)
	}
	if p.peek() == '(' {
		return p.method()
	}
	return p.fieldType()
}

func parseWith[T any](input string, production func(*parser) (T, error)) (T, error) {
	p := &parser{input: input}
	out, err := production(p)
	if err == nil {
		err = p.finish()
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// ParsePrimitive parses one of the eight value-carrying primitive letters.
// "V" is rejected; void is only reachable through ParseMethod.
func ParsePrimitive(s string) (Primitive, error) {
	return parseWith(s, (*parser).primitive)
}

func ParseReference(s string) (Reference, error) {
	return parseWith(s, (*parser).reference)
}

func ParseArray(s string) (*Array, error) {
	return parseWith(s, (*parser).array)
}

// ParseType parses a field descriptor: a primitive, a reference or an
// array.
func ParseType(s string) (Type, error) {
	return parseWith(s, (*parser).fieldType)
}

func ParseMethod(s string) (*Method, error) {
	return parseWith(s, (*parser).method)
}

// Parse parses s as a method descriptor if it starts with '(' and as a
// field descriptor otherwise.
func Parse(s string) (Descriptor, error) {
	return parseWith(s, (*parser).descriptor)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func MustParse(s string) Descriptor          { return must(Parse(s)) }
func MustParseType(s string) Type            { return must(ParseType(s)) }
func MustParseMethod(s string) *Method       { return must(ParseMethod(s)) }
func MustParseArray(s string) *Array         { return must(ParseArray(s)) }
func MustParseReference(s string) Reference { return must(ParseReference(s)) }
