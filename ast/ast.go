package ast

// Multiplier represents the repetition marker that may follow a component.
// The zero value means the component carries no multiplier.
type Multiplier int

const (
	// None means the component matches a single value.
	None Multiplier = iota
	// Space means a whitespace-separated list of values ("+").
	Space
	// Comma means a comma-separated list of values ("#").
	Comma
)

// String returns the suffix character for the multiplier.
func (m Multiplier) String() string {
	switch m {
	case Space:
		return "+"
	case Comma:
		return "#"
	}
	return ""
}

// NameKind identifies which side of a ComponentName is set.
type NameKind int

const (
	DataTypeKind NameKind = iota + 1
	IdentKind
)

func (k NameKind) String() string {
	switch k {
	case DataTypeKind:
		return "data-type"
	case IdentKind:
		return "ident"
	}
	return ""
}

// ComponentName is either a data type name (e.g. "<length>") or a custom
// identifier (e.g. "auto"). D and C are the data type and identifier
// representations of the vocabulary that produced the name.
type ComponentName[D, C comparable] struct {
	kind     NameKind
	dataType D
	ident    C
}

// DataTypeName returns a component name referring to a data type.
func DataTypeName[D, C comparable](d D) ComponentName[D, C] {
	return ComponentName[D, C]{kind: DataTypeKind, dataType: d}
}

// IdentName returns a component name referring to a custom identifier.
func IdentName[D, C comparable](c C) ComponentName[D, C] {
	return ComponentName[D, C]{kind: IdentKind, ident: c}
}

// Kind returns whether the name is a data type or an identifier.
func (n ComponentName[D, C]) Kind() NameKind { return n.kind }

// DataType returns the data type and true if n names a data type.
func (n ComponentName[D, C]) DataType() (D, bool) {
	return n.dataType, n.kind == DataTypeKind
}

// Ident returns the custom identifier and true if n names an identifier.
func (n ComponentName[D, C]) Ident() (C, bool) {
	return n.ident, n.kind == IdentKind
}

// Component represents a single alternative of a syntax descriptor.
type Component[D, C comparable] struct {
	Name       ComponentName[D, C]
	Multiplier Multiplier
}

// Descriptor represents a parsed syntax descriptor: an ordered list of
// alternative components, or the universal descriptor ("*") which matches
// any value. The zero value is an empty, non-universal descriptor.
type Descriptor[D, C comparable] struct {
	components []Component[D, C]
	universal  bool
}

// Universal returns the universal syntax descriptor.
func Universal[D, C comparable]() Descriptor[D, C] {
	return Descriptor[D, C]{universal: true}
}

// NewDescriptor returns a descriptor holding a copy of components.
// With no components it returns the universal descriptor.
func NewDescriptor[D, C comparable](components ...Component[D, C]) Descriptor[D, C] {
	if len(components) == 0 {
		return Universal[D, C]()
	}
	a := make([]Component[D, C], len(components))
	copy(a, components)
	return Descriptor[D, C]{components: a}
}

// IsUniversal returns true if the descriptor matches any value.
func (d Descriptor[D, C]) IsUniversal() bool { return d.universal }

// Len returns the number of components.
func (d Descriptor[D, C]) Len() int { return len(d.components) }

// At returns the i-th component. It panics if i is out of range.
func (d Descriptor[D, C]) At(i int) Component[D, C] { return d.components[i] }

// Components returns a copy of the components in order.
func (d Descriptor[D, C]) Components() []Component[D, C] {
	if len(d.components) == 0 {
		return nil
	}
	a := make([]Component[D, C], len(d.components))
	copy(a, d.components)
	return a
}
