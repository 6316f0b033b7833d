package parser

import (
	"errors"

	"github.com/benbjohnson/cssprop/ast"
	"github.com/benbjohnson/cssprop/scanner"
)

// Impl resolves the names found in a syntax descriptor. D is the data type
// representation and C the custom identifier representation.
//
// Implementations must be free of side effects and must accept any string.
type Impl[D, C comparable] interface {
	// CustomIdentFromIdent wraps an already tokenized identifier.
	// It returns false for reserved CSS-wide keywords.
	CustomIdentFromIdent(ident string) (C, bool)

	// DataTypeFromName resolves the text between "<" and ">".
	DataTypeFromName(name string) (D, bool)

	// UnpremultiplyDataType returns the expanded component for a
	// pre-multiplied data type, or false if d is not pre-multiplied.
	UnpremultiplyDataType(d D) (ast.Component[D, C], bool)
}

// ErrMultipliedPremultiplied is returned by Unpremultiplied when a component
// names a pre-multiplied data type and also carries a multiplier.
var ErrMultipliedPremultiplied = errors.New("pre-multiplied data type cannot carry a multiplier")

// Parse parses a syntax descriptor or universal syntax descriptor.
// On error the returned descriptor is the zero value, which has no
// components and is not universal.
//
// See https://drafts.css-houdini.org/css-properties-values-api-1/#parsing-syntax
func Parse[D, C comparable](impl Impl[D, C], input string) (ast.Descriptor[D, C], error) {
	// Strip leading and trailing ASCII whitespace.
	start, end := trimBounds(input)
	if start == end {
		return ast.Descriptor[D, C]{}, &Error{Kind: EmptyInput}
	}

	// A lone "*" is the universal syntax descriptor.
	if end-start == 1 && input[start] == '*' {
		return ast.Universal[D, C](), nil
	}

	p := parser[D, C]{impl: impl, input: input[start:end], base: start}
	if err := p.parse(); err != nil {
		return ast.Descriptor[D, C]{}, err
	}
	return ast.NewDescriptor(p.output...), nil
}

// IsPremultiplied returns true if name refers to a pre-multiplied data type.
//
// See https://drafts.css-houdini.org/css-properties-values-api-1/#pre-multiplied-data-type-name
func IsPremultiplied[D, C comparable](impl Impl[D, C], name ast.ComponentName[D, C]) bool {
	d, ok := name.DataType()
	if !ok {
		return false
	}
	_, ok = impl.UnpremultiplyDataType(d)
	return ok
}

// Unpremultiplied returns the expanded form of c if it names a pre-multiplied
// data type. Otherwise c is returned unchanged.
func Unpremultiplied[D, C comparable](impl Impl[D, C], c ast.Component[D, C]) (ast.Component[D, C], error) {
	d, ok := c.Name.DataType()
	if !ok {
		return c, nil
	}
	expanded, ok := impl.UnpremultiplyDataType(d)
	if !ok {
		return c, nil
	}
	if c.Multiplier != ast.None {
		return c, ErrMultipliedPremultiplied
	}
	return expanded, nil
}

// parser walks a trimmed descriptor byte by byte.
type parser[D, C comparable] struct {
	impl   Impl[D, C]
	input  string
	base   int // offset of input within the untrimmed string
	pos    int
	output []ast.Component[D, C]
}

// peek returns the byte at the cursor, or false at end of input.
func (p *parser[D, C]) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser[D, C]) newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Offset: p.base + p.pos, Err: err}
}

// parse repeatedly consumes the next input byte.
func (p *parser[D, C]) parse() error {
	for {
		b, ok := p.peek()
		if !ok {
			// EOF: a descriptor needs at least one component.
			if len(p.output) == 0 {
				return p.newError(UnexpectedEOF, nil)
			}
			return nil
		}

		if isWhitespace(b) {
			p.pos++
			continue
		}

		// A pipe must follow a component. The next component is consumed
		// either way, so adjacent components without a pipe are accepted.
		if b == '|' {
			if len(p.output) == 0 {
				return p.newError(UnexpectedPipe, nil)
			}
			p.pos++
		}

		c, err := p.parseComponent()
		if err != nil {
			return err
		}
		p.output = append(p.output, c)
	}
}

func (p *parser[D, C]) skipWhitespace() {
	for {
		b, ok := p.peek()
		if !ok || !isWhitespace(b) {
			return
		}
		p.pos++
	}
}

// parseComponent consumes a syntax component.
//
// See https://drafts.css-houdini.org/css-properties-values-api-1/#consume-a-syntax-component
func (p *parser[D, C]) parseComponent() (ast.Component[D, C], error) {
	p.skipWhitespace()
	name, err := p.parseName()
	if err != nil {
		return ast.Component[D, C]{}, err
	}

	// Pre-multiplied data types never take a multiplier.
	c := ast.Component[D, C]{Name: name}
	if !IsPremultiplied(p.impl, name) {
		c.Multiplier = p.parseMultiplier()
	}
	return c, nil
}

func (p *parser[D, C]) parseName() (ast.ComponentName[D, C], error) {
	b, ok := p.peek()
	if !ok {
		return ast.ComponentName[D, C]{}, p.newError(UnexpectedEOF, nil)
	}

	if b == '<' {
		p.pos++
		d, err := p.parseDataTypeName()
		if err != nil {
			return ast.ComponentName[D, C]{}, err
		}
		return ast.DataTypeName[D, C](d), nil
	}

	if b != '\\' && !isNameStart(b) {
		return ast.ComponentName[D, C]{}, p.newError(InvalidNameStart, nil)
	}

	ident, n, err := scanner.ScanIdent(p.input[p.pos:])
	if err != nil {
		return ast.ComponentName[D, C]{}, p.newError(InvalidName, err)
	}
	c, ok := p.impl.CustomIdentFromIdent(ident)
	if !ok {
		return ast.ComponentName[D, C]{}, p.newError(InvalidName, &ReservedError{Ident: ident})
	}
	p.pos += n
	return ast.IdentName[D](c), nil
}

// parseDataTypeName consumes the text up to and including the closing ">".
// It assumes the opening "<" has been consumed.
//
// See https://drafts.css-houdini.org/css-properties-values-api-1/#consume-data-type-name
func (p *parser[D, C]) parseDataTypeName() (D, error) {
	start := p.pos
	for {
		b, ok := p.peek()
		if !ok {
			var zero D
			return zero, &Error{Kind: UnclosedDataTypeName, Offset: p.base + start - 1}
		}
		if b == '>' {
			break
		}
		p.pos++
	}

	d, ok := p.impl.DataTypeFromName(p.input[start:p.pos])
	if !ok {
		return d, &Error{Kind: UnknownDataTypeName, Offset: p.base + start, Name: p.input[start:p.pos]}
	}
	p.pos++
	return d, nil
}

// parseMultiplier consumes an optional "+" or "#".
func (p *parser[D, C]) parseMultiplier() ast.Multiplier {
	b, ok := p.peek()
	if !ok {
		return ast.None
	}
	var m ast.Multiplier
	switch b {
	case '+':
		m = ast.Space
	case '#':
		m = ast.Comma
	default:
		return ast.None
	}
	p.pos++
	return m
}

// isWhitespace returns true for tab, newline, carriage return and space.
//
// See https://drafts.csswg.org/css-syntax-3/#whitespace
func isWhitespace(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r' || b == ' '
}

// isLetter returns true for ASCII letters.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isNonASCII returns true for any byte of a multi-byte UTF-8 sequence.
func isNonASCII(b byte) bool {
	return b >= 0x80
}

// isNameStart returns true if the byte can start a name.
//
// See https://drafts.csswg.org/css-syntax-3/#name-start-code-point
func isNameStart(b byte) bool {
	return isLetter(b) || isNonASCII(b) || b == '_'
}
