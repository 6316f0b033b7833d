package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/cssprop/ast"
)

type name = ast.ComponentName[string, string]

// Ensure that a component name exposes exactly one side of the union.
func TestComponentName(t *testing.T) {
	n := ast.DataTypeName[string, string]("length")
	assert.Equal(t, ast.DataTypeKind, n.Kind())
	d, ok := n.DataType()
	assert.True(t, ok)
	assert.Equal(t, "length", d)
	_, ok = n.Ident()
	assert.False(t, ok)

	n = ast.IdentName[string, string]("auto")
	assert.Equal(t, ast.IdentKind, n.Kind())
	c, ok := n.Ident()
	assert.True(t, ok)
	assert.Equal(t, "auto", c)
	_, ok = n.DataType()
	assert.False(t, ok)

	// Names with the same text but different kinds are not equal.
	assert.NotEqual(t, ast.DataTypeName[string, string]("x"), ast.IdentName[string, string]("x"))
	assert.Equal(t, name{}.Kind(), ast.NameKind(0))
}

func TestMultiplier_String(t *testing.T) {
	assert.Equal(t, "", ast.None.String())
	assert.Equal(t, "+", ast.Space.String())
	assert.Equal(t, "#", ast.Comma.String())
}

// Ensure that descriptors cannot be mutated through their inputs or outputs.
func TestDescriptor_Immutable(t *testing.T) {
	in := []ast.Component[string, string]{
		{Name: ast.IdentName[string, string]("foo")},
		{Name: ast.DataTypeName[string, string]("length"), Multiplier: ast.Comma},
	}
	d := ast.NewDescriptor(in...)
	in[0].Multiplier = ast.Space

	require.Equal(t, 2, d.Len())
	assert.False(t, d.IsUniversal())
	assert.Equal(t, ast.None, d.At(0).Multiplier)

	out := d.Components()
	out[1].Multiplier = ast.None
	assert.Equal(t, ast.Comma, d.At(1).Multiplier)
}

func TestUniversal(t *testing.T) {
	d := ast.Universal[string, string]()
	assert.True(t, d.IsUniversal())
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.Components())
	assert.Equal(t, d, ast.NewDescriptor[string, string]())

	var zero ast.Descriptor[string, string]
	assert.False(t, zero.IsUniversal())
	assert.Equal(t, 0, zero.Len())
	assert.NotEqual(t, d, zero)
}
