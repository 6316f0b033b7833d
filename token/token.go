package token

import "strconv"

// Token represents a lexical token.
type Token interface {
	token()
	String() string
	Position() Pos
}

func (_ *Ident) token()      {}
func (_ *Function) token()   {}
func (_ *Delim) token()      {}
func (_ *Whitespace) token() {}
func (_ *EOF) token()        {}

// Ident represents an <ident-token>. Value holds the unescaped name.
type Ident struct {
	Value string
	Pos   Pos
}

func (t *Ident) String() string { return t.Value }
func (t *Ident) Position() Pos  { return t.Pos }

// Function represents a <function-token>: a name followed by "(".
// The url( prefix is reported as a function as well.
type Function struct {
	Value string
	Pos   Pos
}

func (t *Function) String() string { return t.Value + "(" }
func (t *Function) Position() Pos  { return t.Pos }

// Delim represents a single code point that starts no other token.
type Delim struct {
	Value string
	Pos   Pos
}

func (t *Delim) String() string { return t.Value }
func (t *Delim) Position() Pos  { return t.Pos }

// Whitespace represents a run of whitespace code points.
type Whitespace struct {
	Value string
	Pos   Pos
}

func (t *Whitespace) String() string { return strconv.Quote(t.Value) }
func (t *Whitespace) Position() Pos  { return t.Pos }

// EOF marks the end of input.
type EOF struct {
	Pos Pos
}

func (t *EOF) String() string { return "EOF" }
func (t *EOF) Position() Pos  { return t.Pos }

// Pos specifies the position of a code point in the input.
// Line is zero-based and Char is one-based within the line.
// Offset is the byte offset just past the code point in the raw input,
// before newline and NULL preprocessing.
type Pos struct {
	Char   int
	Line   int
	Offset int
}
