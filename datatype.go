package cssprop

import (
	"github.com/benbjohnson/cssprop/ast"
)

// DataType represents a builtin syntax component data type.
type DataType int

const (
	Length DataType = iota
	Number
	Percentage
	LengthPercentage
	Color
	Image
	URL
	Integer
	Angle
	Time
	Resolution
	TransformFunction
	TransformList
	CustomIdentType
)

var dataTypes = [...]string{
	Length:            "length",
	Number:            "number",
	Percentage:        "percentage",
	LengthPercentage:  "length-percentage",
	Color:             "color",
	Image:             "image",
	URL:               "url",
	Integer:           "integer",
	Angle:             "angle",
	Time:              "time",
	Resolution:        "resolution",
	TransformFunction: "transform-function",
	TransformList:     "transform-list",
	CustomIdentType:   "custom-ident",
}

// DataTypes returns every builtin data type in declaration order.
func DataTypes() []DataType {
	a := make([]DataType, len(dataTypes))
	for i := range a {
		a[i] = DataType(i)
	}
	return a
}

// String returns the name of the data type without angle brackets.
func (t DataType) String() string {
	if t >= 0 && t < DataType(len(dataTypes)) {
		return dataTypes[t]
	}
	return ""
}

// ParseDataType returns the data type with the given name. The match is
// exact and case-sensitive.
func ParseDataType(name string) (DataType, bool) {
	switch name {
	case "length":
		return Length, true
	case "number":
		return Number, true
	case "percentage":
		return Percentage, true
	case "length-percentage":
		return LengthPercentage, true
	case "color":
		return Color, true
	case "image":
		return Image, true
	case "url":
		return URL, true
	case "integer":
		return Integer, true
	case "angle":
		return Angle, true
	case "time":
		return Time, true
	case "resolution":
		return Resolution, true
	case "transform-function":
		return TransformFunction, true
	case "transform-list":
		return TransformList, true
	case "custom-ident":
		return CustomIdentType, true
	}
	return 0, false
}

// Unpremultiply returns the component a pre-multiplied data type stands for.
// Only <transform-list> is pre-multiplied; it expands to <transform-function>+.
func (t DataType) Unpremultiply() (Component, bool) {
	switch t {
	case TransformList:
		return Component{
			Name:       DataTypeName(TransformFunction),
			Multiplier: ast.Space,
		}, true
	}
	return Component{}, false
}
