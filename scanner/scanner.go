package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benbjohnson/cssprop/token"
)

// eof represents an EOF file byte.
var eof rune = -1

// Scanner implements a CSS3 scanner restricted to identifier-like tokens.
//
// Identifiers and functions are scanned per css-syntax-3 including escapes.
// There is no unicode-range token, so "u+a" scans as the identifier "u".
// Whitespace is grouped into a single token. Every other code point is
// returned as a delim token.
//
// This implementation only allows UTF-8 encoding. Invalid bytes decode to
// U+FFFD and count as one byte of input.
type Scanner struct {
	// Errors contains a list of all errors that occur during scanning.
	Errors []*Error

	rd io.RuneScanner

	buf    [4]rune      // circular buffer for runes
	bufpos [4]token.Pos // circular buffer for position
	bufi   int          // circular buffer index
	bufn   int          // number of buffered characters
}

// New returns a new instance of Scanner.
func New(r io.Reader) *Scanner {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return &Scanner{rd: rs}
}

// ScanIdent consumes a single <ident-token> from the start of s.
// It returns the unescaped identifier and the number of bytes of s consumed.
// An error is returned if s does not begin with an identifier.
func ScanIdent(s string) (string, int, error) {
	sc := New(strings.NewReader(s))
	tok := sc.Scan()
	ident, ok := tok.(*token.Ident)
	if !ok {
		return "", 0, &Error{Message: fmt.Sprintf("expected ident, got %s", describe(tok)), Pos: tok.Position()}
	}
	if len(sc.Errors) > 0 {
		return "", 0, sc.Errors[0]
	}
	return ident.Value, sc.Pos().Offset, nil
}

// Scan returns the next token.
func (s *Scanner) Scan() token.Token {
	ch := s.read()
	pos := s.Pos()

	if ch == eof {
		return &token.EOF{Pos: pos}
	} else if isWhitespace(ch) {
		return s.scanWhitespace()
	} else if ch == '-' {
		// A hyphen only starts an identifier when a name or escape follows.
		if s.peekIdent() {
			return s.scanIdent()
		}
		return &token.Delim{Value: "-", Pos: pos}
	} else if ch == '\\' {
		// Return a valid escape, if possible.
		if s.peekEscape() {
			return s.scanIdent()
		}
		// Otherwise this is a parse error but continue on as a DELIM.
		s.Errors = append(s.Errors, &Error{Message: "unescaped \\", Pos: pos})
		return &token.Delim{Value: "\\", Pos: pos}
	} else if isNameStart(ch) {
		return s.scanIdent()
	}
	return &token.Delim{Value: string(ch), Pos: pos}
}

// scanWhitespace consumes the current code point and all subsequent whitespace.
func (s *Scanner) scanWhitespace() token.Token {
	pos := s.Pos()
	var buf bytes.Buffer
	_, _ = buf.WriteRune(s.curr())
	for {
		ch := s.read()
		if ch == eof {
			s.unread(1)
			break
		} else if !isWhitespace(ch) {
			s.unread(1)
			break
		}
		_, _ = buf.WriteRune(ch)
	}
	return &token.Whitespace{Value: buf.String(), Pos: pos}
}

// scanName consumes a name.
// Consumes contiguous name code points and escaped code points.
func (s *Scanner) scanName() string {
	var buf bytes.Buffer
	s.unread(1)
	for {
		if ch := s.read(); isName(ch) {
			_, _ = buf.WriteRune(ch)
		} else if s.peekEscape() {
			_, _ = buf.WriteRune(s.scanEscape())
		} else {
			s.unread(1)
			return buf.String()
		}
	}
}

// scanIdent consumes an ident-like token.
// This function can return an ident or a function.
func (s *Scanner) scanIdent() token.Token {
	pos := s.Pos()
	v := s.scanName()

	if ch := s.read(); ch == '(' {
		return &token.Function{Value: v, Pos: pos}
	}
	s.unread(1)

	return &token.Ident{Value: v, Pos: pos}
}

// scanEscape consumes an escaped code point.
// This function assumes that the backslash has just been consumed.
func (s *Scanner) scanEscape() rune {
	var buf bytes.Buffer
	ch := s.read()
	if isHexDigit(ch) {
		_, _ = buf.WriteRune(ch)
		for i := 0; i < 5; i++ {
			if next := s.read(); next == eof {
				s.unread(1)
				break
			} else if isWhitespace(next) {
				break
			} else if !isHexDigit(next) {
				s.unread(1)
				break
			} else {
				_, _ = buf.WriteRune(next)
			}
		}
		v, _ := strconv.ParseInt(buf.String(), 16, 0)
		if v == 0 || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
			return '\uFFFD'
		}
		return rune(v)
	} else if ch == eof {
		s.unread(1)
		return '\uFFFD'
	}
	return ch
}

// peekEscape checks if the current and next code points are a valid escape.
func (s *Scanner) peekEscape() bool {
	// If the current code point is not a backslash then this is not an escape.
	if s.curr() != '\\' {
		return false
	}

	// If the next code point is a newline then this is not an escape.
	next := s.read()
	s.unread(1)
	return next != '\n'
}

// peekIdent checks if the next code points are a valid identifier.
func (s *Scanner) peekIdent() bool {
	if s.curr() == '-' {
		ch := s.read()
		if ch == '-' || isNameStart(ch) {
			s.unread(1)
			return true
		}
		ok := s.peekEscape()
		s.unread(1)
		return ok
	} else if isNameStart(s.curr()) {
		return true
	} else if s.curr() == '\\' && s.peekEscape() {
		return true
	}
	return false
}

// read reads the next rune from the reader.
// This function will initially check for any characters that have been pushed
// back onto the lookahead buffer and return those. Otherwise it will read from
// the reader and do preprocessing to convert newline characters and NULL.
func (s *Scanner) read() rune {
	// If we have runes on our internal lookahead buffer then return those.
	if s.bufn > 0 {
		s.bufi = ((s.bufi + 1) % len(s.buf))
		s.bufn--
		return s.buf[s.bufi]
	}

	// Otherwise read from the reader.
	ch, size, err := s.rd.ReadRune()
	pos := s.Pos()
	if err != nil {
		ch = eof
	} else {
		pos.Offset += size

		// Preprocess the input stream by replacing FF with LF. (§3.3)
		if ch == '\f' {
			ch = '\n'
		}

		// Preprocess the input stream by replacing CR and CRLF with LF. (§3.3)
		if ch == '\r' {
			if next, n, err := s.rd.ReadRune(); err == nil {
				if next == '\n' {
					pos.Offset += n
				} else {
					_ = s.rd.UnreadRune()
				}
			}
			ch = '\n'
		}

		// Replace NULL with Unicode replacement character. (§3.3)
		if ch == '\000' {
			ch = '\uFFFD'
		}

		// Track scanner position.
		if ch == '\n' {
			pos.Line++
			pos.Char = 0
		} else {
			pos.Char++
		}
	}

	// Add to circular buffer.
	s.bufi = ((s.bufi + 1) % len(s.buf))
	s.buf[s.bufi] = ch
	s.bufpos[s.bufi] = pos
	return ch
}

// unread adds the previous n code points back onto the buffer.
func (s *Scanner) unread(n int) {
	for i := 0; i < n; i++ {
		s.bufi = ((s.bufi + len(s.buf) - 1) % len(s.buf))
		s.bufn++
	}
}

// curr reads the current code point.
func (s *Scanner) curr() rune {
	return s.buf[s.bufi]
}

// Pos reads the current position of the scanner.
func (s *Scanner) Pos() token.Pos {
	return s.bufpos[s.bufi]
}

// describe returns a short description of tok for error messages.
func describe(tok token.Token) string {
	switch tok := tok.(type) {
	case *token.EOF:
		return "EOF"
	case *token.Function:
		return fmt.Sprintf("function %q", tok.Value)
	default:
		return fmt.Sprintf("%q", tok.String())
	}
}

// isWhitespace returns true if the rune is a space, tab, or newline.
func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

// isLetter returns true if the rune is a letter.
func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9')
}

// isHexDigit returns true if the rune is a hex digit.
func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isNonASCII returns true if the rune is greater than U+0080.
func isNonASCII(ch rune) bool {
	return ch >= '\u0080'
}

// isNameStart returns true if the rune can start a name.
func isNameStart(ch rune) bool {
	return isLetter(ch) || isNonASCII(ch) || ch == '_'
}

// isName returns true if the character is a name code point.
func isName(ch rune) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '-'
}

// Error represents a scan error.
type Error struct {
	Message string
	Pos     token.Pos
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return e.Message
}
