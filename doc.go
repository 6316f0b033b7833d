/*
Package cssprop parses the syntax descriptors of registered custom properties
as defined by the CSS Properties and Values API. A syntax descriptor is the
value of the "syntax" descriptor in an @property rule:

	@property --gap {
		syntax: "<length> | <percentage> | auto";
		inherits: false;
		initial-value: 0px;
	}


Basics

A descriptor is either the universal descriptor "*", which accepts any value,
or a list of components separated by "|". Each component is a data type name
in angle brackets, such as <length>, or a custom identifier, such as auto.
A component may be followed by a multiplier: "+" for a space-separated list
or "#" for a comma-separated list.

	d, err := cssprop.Parse("<length>+ | auto")
	if err != nil {
		// errors.Is(err, parser.ErrUnknownDataTypeName) etc.
	}
	for _, c := range d.Components() {
		...
	}

Parsing does not interpret property values. It only produces the typed list
of components that a style engine can match values against.


Data types

The default vocabulary knows the fourteen data types of the CSS Properties and
Values API.
<transform-list> is pre-multiplied: it stands for <transform-function>+ and
never takes a multiplier of its own. Unpremultiply returns that expansion.


Custom vocabularies

The parser package is generic over the parser.Impl interface, which resolves
data type names and custom identifiers. The vocab package provides an
implementation loaded from YAML so embedders can extend the vocabulary
without changing the parser.
*/
package cssprop
