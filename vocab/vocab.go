// Package vocab implements a syntax descriptor vocabulary loaded from YAML.
//
// A vocabulary file lists the data type names accepted between angle
// brackets, the expansion of any pre-multiplied types, and optionally the
// keywords that cannot be used as custom identifiers:
//
//	reserved: [inherit, initial, unset]
//	types:
//	  - name: length
//	  - name: transform-function
//	  - name: transform-list
//	    expands: {name: transform-function, multiplier: "+"}
//
// When "reserved" is omitted the CSS-wide keywords are used.
package vocab

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/benbjohnson/cssprop"
	"github.com/benbjohnson/cssprop/ast"
	"github.com/benbjohnson/cssprop/parser"
)

// TypeName is a data type name without angle brackets.
type TypeName string

// Ident is a custom identifier accepted by a vocabulary.
type Ident string

// Descriptor and Component instantiated for vocabulary names.
type (
	Descriptor = ast.Descriptor[TypeName, Ident]
	Component  = ast.Component[TypeName, Ident]
)

// Vocabulary resolves data type names and identifiers for the parser.
// It is read-only after construction and safe for concurrent use.
type Vocabulary struct {
	reserved []string
	order    []TypeName
	expands  map[TypeName]*Component
}

var _ parser.Impl[TypeName, Ident] = (*Vocabulary)(nil)

// Default returns a vocabulary equivalent to the builtin data types.
func Default() *Vocabulary {
	v := &Vocabulary{
		reserved: cssprop.ReservedKeywords(),
		expands:  make(map[TypeName]*Component),
	}
	for _, t := range cssprop.DataTypes() {
		name := TypeName(t.String())
		v.order = append(v.order, name)
		v.expands[name] = nil
		if c, ok := t.Unpremultiply(); ok {
			d, _ := c.Name.DataType()
			v.expands[name] = &Component{
				Name:       ast.DataTypeName[TypeName, Ident](TypeName(d.String())),
				Multiplier: c.Multiplier,
			}
		}
	}
	return v
}

// LoadFile reads a vocabulary from a YAML file.
func LoadFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Load reads a vocabulary from a YAML document.
func Load(r io.Reader) (*Vocabulary, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); errors.Is(err, io.EOF) {
		return nil, ErrNoTypes
	} else if err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	return doc.build()
}

// ErrNoTypes is returned when a vocabulary declares no data types.
var ErrNoTypes = errors.New("vocabulary declares no types")

// document is the YAML representation of a vocabulary.
type document struct {
	Reserved *[]string `yaml:"reserved"`
	Types    []typeDoc `yaml:"types"`
}

type typeDoc struct {
	Name    string        `yaml:"name"`
	Expands *expansionDoc `yaml:"expands"`
}

type expansionDoc struct {
	Name       string `yaml:"name"`
	Multiplier string `yaml:"multiplier"`
}

func (doc *document) build() (*Vocabulary, error) {
	if len(doc.Types) == 0 {
		return nil, ErrNoTypes
	}

	v := &Vocabulary{
		reserved: cssprop.ReservedKeywords(),
		expands:  make(map[TypeName]*Component, len(doc.Types)),
	}
	if doc.Reserved != nil {
		v.reserved = append([]string(nil), (*doc.Reserved)...)
	}

	// Register names first so expansions may refer forward.
	for i, t := range doc.Types {
		if t.Name == "" {
			return nil, fmt.Errorf("types[%d]: empty name", i)
		} else if strings.ContainsAny(t.Name, "<>") {
			return nil, fmt.Errorf("types[%d]: name %q contains an angle bracket", i, t.Name)
		}
		name := TypeName(t.Name)
		if _, ok := v.expands[name]; ok {
			return nil, fmt.Errorf("types[%d]: duplicate type %q", i, t.Name)
		}
		v.order = append(v.order, name)
		v.expands[name] = nil
	}

	for i, t := range doc.Types {
		if t.Expands == nil {
			continue
		}
		target := TypeName(t.Expands.Name)
		if _, ok := v.expands[target]; !ok {
			return nil, fmt.Errorf("types[%d]: %q expands to unknown type %q", i, t.Name, t.Expands.Name)
		}
		m, err := parseMultiplier(t.Expands.Multiplier)
		if err != nil {
			return nil, fmt.Errorf("types[%d]: %w", i, err)
		}
		v.expands[TypeName(t.Name)] = &Component{
			Name:       ast.DataTypeName[TypeName, Ident](target),
			Multiplier: m,
		}
	}

	// An expansion must itself be a plain type.
	for _, name := range v.order {
		c := v.expands[name]
		if c == nil {
			continue
		}
		target, _ := c.Name.DataType()
		if v.expands[target] != nil {
			return nil, fmt.Errorf("type %q expands to pre-multiplied type %q", name, target)
		}
	}

	return v, nil
}

func parseMultiplier(s string) (ast.Multiplier, error) {
	switch s {
	case "+":
		return ast.Space, nil
	case "#":
		return ast.Comma, nil
	}
	return ast.None, fmt.Errorf("invalid multiplier %q, expected \"+\" or \"#\"", s)
}

// Types returns the data type names in declaration order.
func (v *Vocabulary) Types() []TypeName {
	return append([]TypeName(nil), v.order...)
}

// Reserved returns the keywords rejected as custom identifiers.
func (v *Vocabulary) Reserved() []string {
	return append([]string(nil), v.reserved...)
}

// Parse parses a syntax descriptor against the vocabulary.
func (v *Vocabulary) Parse(input string) (Descriptor, error) {
	return parser.Parse[TypeName, Ident](v, input)
}

// CustomIdentFromIdent returns ident unless it matches a reserved keyword,
// ignoring ASCII case.
func (v *Vocabulary) CustomIdentFromIdent(ident string) (Ident, bool) {
	for _, kw := range v.reserved {
		if parser.EqualFoldASCII(ident, kw) {
			return "", false
		}
	}
	return Ident(ident), true
}

// DataTypeFromName returns the type with exactly the given name.
func (v *Vocabulary) DataTypeFromName(name string) (TypeName, bool) {
	if _, ok := v.expands[TypeName(name)]; !ok {
		return "", false
	}
	return TypeName(name), true
}

// UnpremultiplyDataType returns the expansion declared for t, if any.
func (v *Vocabulary) UnpremultiplyDataType(t TypeName) (Component, bool) {
	c := v.expands[t]
	if c == nil {
		return Component{}, false
	}
	return *c, true
}
