package cssprop

import (
	"github.com/benbjohnson/cssprop/ast"
	"github.com/benbjohnson/cssprop/parser"
)

// Descriptor, Component and ComponentName instantiated for the builtin
// vocabulary.
type (
	Descriptor    = ast.Descriptor[DataType, CustomIdent]
	Component     = ast.Component[DataType, CustomIdent]
	ComponentName = ast.ComponentName[DataType, CustomIdent]
)

// DataTypeName returns a component name for a builtin data type.
func DataTypeName(t DataType) ComponentName {
	return ast.DataTypeName[DataType, CustomIdent](t)
}

// IdentName returns a component name for a custom identifier.
func IdentName(c CustomIdent) ComponentName {
	return ast.IdentName[DataType](c)
}

// Parse parses a syntax descriptor using the builtin vocabulary.
// Errors are of type *parser.Error.
func Parse(input string) (Descriptor, error) {
	return parser.Parse[DataType, CustomIdent](DefaultImpl{}, input)
}

// Unpremultiply returns the expanded form of c if it names <transform-list>.
// Any other component is returned unchanged.
func Unpremultiply(c Component) (Component, error) {
	return parser.Unpremultiplied[DataType, CustomIdent](DefaultImpl{}, c)
}

// reservedKeywords are the CSS-wide keywords that cannot be custom identifiers.
var reservedKeywords = []string{"inherit", "reset", "revert", "unset", "default"}

// ReservedKeywords returns the CSS-wide keywords rejected as identifiers.
func ReservedKeywords() []string {
	return append([]string(nil), reservedKeywords...)
}

// CustomIdent represents a custom identifier that is not a CSS-wide keyword.
type CustomIdent struct {
	name string
}

// NewCustomIdent returns ident as a custom identifier. It returns false if
// ident matches a CSS-wide keyword, ignoring ASCII case.
func NewCustomIdent(ident string) (CustomIdent, bool) {
	for _, kw := range reservedKeywords {
		if parser.EqualFoldASCII(ident, kw) {
			return CustomIdent{}, false
		}
	}
	return CustomIdent{name: ident}, true
}

// String returns the identifier text.
func (c CustomIdent) String() string { return c.name }

// DefaultImpl resolves names against the builtin vocabulary.
type DefaultImpl struct{}

var _ parser.Impl[DataType, CustomIdent] = DefaultImpl{}

func (DefaultImpl) CustomIdentFromIdent(ident string) (CustomIdent, bool) {
	return NewCustomIdent(ident)
}

func (DefaultImpl) DataTypeFromName(name string) (DataType, bool) {
	return ParseDataType(name)
}

func (DefaultImpl) UnpremultiplyDataType(t DataType) (Component, bool) {
	return t.Unpremultiply()
}
