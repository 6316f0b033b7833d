package parser

import (
	"fmt"
)

// ErrorKind identifies the cause of a failed parse.
type ErrorKind int

const (
	// EmptyInput means the descriptor was empty after trimming whitespace.
	EmptyInput ErrorKind = iota + 1
	// UnexpectedEOF means the input ended before a component was found.
	UnexpectedEOF
	// UnexpectedPipe means a "|" appeared before any component.
	UnexpectedPipe
	// InvalidNameStart means the next byte cannot begin a component name.
	InvalidNameStart
	// InvalidName means an identifier was malformed or a reserved keyword.
	InvalidName
	// UnclosedDataTypeName means a "<" had no matching ">".
	UnclosedDataTypeName
	// UnknownDataTypeName means the text between "<" and ">" is not a known type.
	UnknownDataTypeName
)

var kindMessages = [...]string{
	EmptyInput:           "empty syntax descriptor",
	UnexpectedEOF:        "unexpected end of input",
	UnexpectedPipe:       "unexpected \"|\"",
	InvalidNameStart:     "invalid component name start",
	InvalidName:          "invalid custom identifier",
	UnclosedDataTypeName: "unclosed data type name",
	UnknownDataTypeName:  "unknown data type name",
}

// String returns a short description of the kind.
func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindMessages) {
		return kindMessages[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors for use with errors.Is.
var (
	ErrEmptyInput           = &Error{Kind: EmptyInput}
	ErrUnexpectedEOF        = &Error{Kind: UnexpectedEOF}
	ErrUnexpectedPipe       = &Error{Kind: UnexpectedPipe}
	ErrInvalidNameStart     = &Error{Kind: InvalidNameStart}
	ErrInvalidName          = &Error{Kind: InvalidName}
	ErrUnclosedDataTypeName = &Error{Kind: UnclosedDataTypeName}
	ErrUnknownDataTypeName  = &Error{Kind: UnknownDataTypeName}
)

// Error represents a syntax descriptor parse error.
type Error struct {
	Kind ErrorKind

	// Offset is the byte offset in the original input where the error
	// was detected.
	Offset int

	// Name holds the unresolved text for UnknownDataTypeName.
	Name string

	// Err is the underlying identifier error for InvalidName.
	Err error
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	switch {
	case e.Kind == EmptyInput:
		return e.Kind.String()
	case e.Name != "":
		return fmt.Sprintf("%s <%s> at offset %d", e.Kind, e.Name, e.Offset)
	case e.Err != nil:
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Unwrap returns the underlying identifier error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ReservedError is wrapped by an InvalidName error when an identifier is
// rejected by the vocabulary, e.g. a CSS-wide keyword such as "inherit".
type ReservedError struct {
	Ident string
}

func (e *ReservedError) Error() string {
	return fmt.Sprintf("%q is reserved", e.Ident)
}
