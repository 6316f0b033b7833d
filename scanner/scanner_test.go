package scanner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/cssprop/scanner"
	"github.com/benbjohnson/cssprop/token"
)

// Ensure than the scanner returns appropriate tokens.
func TestScanner_Scan(t *testing.T) {
	var tests = []struct {
		s   string
		tok token.Token
		err string
	}{
		{s: ``, tok: &token.EOF{}},
		{s: `   `, tok: &token.Whitespace{Value: `   `, Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: " \r\n", tok: &token.Whitespace{Value: " \n", Pos: token.Pos{Char: 1, Offset: 1}}},

		{s: `url`, tok: &token.Ident{Value: `url`, Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `myIdent`, tok: &token.Ident{Value: `myIdent`, Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `my\2603`, tok: &token.Ident{Value: `my☃`, Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `-x`, tok: &token.Ident{Value: `-x`, Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `--x`, tok: &token.Ident{Value: `--x`, Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `-`, tok: &token.Delim{Value: `-`, Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `-1`, tok: &token.Delim{Value: `-`, Pos: token.Pos{Char: 1, Offset: 1}}},

		{s: `myFunc(`, tok: &token.Function{Value: `myFunc`, Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `url(foo)`, tok: &token.Function{Value: `url`, Pos: token.Pos{Char: 1, Offset: 1}}},

		{s: "u+A", tok: &token.Ident{Value: "u", Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: "U+1?", tok: &token.Ident{Value: "U", Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: "u+02-04", tok: &token.Ident{Value: "u", Pos: token.Pos{Char: 1, Offset: 1}}},

		{s: `\2603`, tok: &token.Ident{Value: "☃", Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `\`, tok: &token.Ident{Value: "\uFFFD", Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `\ `, tok: &token.Ident{Value: " ", Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: "\\\n", tok: &token.Delim{Value: `\`, Pos: token.Pos{Char: 1, Offset: 1}}, err: "unescaped \\"},

		{s: `<`, tok: &token.Delim{Value: "<", Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `|`, tok: &token.Delim{Value: "|", Pos: token.Pos{Char: 1, Offset: 1}}},
		{s: `5`, tok: &token.Delim{Value: "5", Pos: token.Pos{Char: 1, Offset: 1}}},
	}

	for i, tt := range tests {
		s := scanner.New(strings.NewReader(tt.s))
		tok := s.Scan()

		assert.Equal(t, tt.tok, tok, "%d. <%q>", i, tt.s)
		if tt.err != "" {
			if assert.Len(t, s.Errors, 1, "%d. <%q>", i, tt.s) {
				assert.Equal(t, tt.err, s.Errors[0].Message, "%d. <%q>", i, tt.s)
			}
		} else {
			assert.Empty(t, s.Errors, "%d. <%q>", i, tt.s)
		}
	}
}

// Ensure that a single identifier can be consumed with a byte count.
func TestScanIdent(t *testing.T) {
	var tests = []struct {
		s     string
		value string
		n     int
		err   string
	}{
		{s: `foo`, value: `foo`, n: 3},
		{s: `foo <length>`, value: `foo`, n: 3},
		{s: `foo+`, value: `foo`, n: 3},
		{s: `foo#`, value: `foo`, n: 3},
		{s: `foo|bar`, value: `foo`, n: 3},
		{s: `_a-b_2 x`, value: `_a-b_2`, n: 6},
		{s: `héllo`, value: `héllo`, n: 6},
		{s: `\66oo`, value: `foo`, n: 5},
		{s: `\66 oo bar`, value: `foo`, n: 6},
		{s: "\\66\r\noo", value: `foo`, n: 7},
		{s: `a\+b+`, value: `a+b`, n: 4},
		{s: "\xffz", value: "\uFFFDz", n: 2},
		{s: `u+ff`, value: `u`, n: 1},
		{s: `unicode-range`, value: `unicode-range`, n: 13},

		{s: ``, err: `expected ident, got EOF`},
		{s: `<length>`, err: `expected ident, got "<"`},
		{s: `foo(`, err: `expected ident, got function "foo"`},
		{s: "\\\nfoo", err: `expected ident, got "\\"`},
	}

	for i, tt := range tests {
		value, n, err := scanner.ScanIdent(tt.s)
		if tt.err != "" {
			require.EqualError(t, err, tt.err, "%d. <%q>", i, tt.s)
			continue
		}
		require.NoError(t, err, "%d. <%q>", i, tt.s)
		assert.Equal(t, tt.value, value, "%d. <%q>", i, tt.s)
		assert.Equal(t, tt.n, n, "%d. <%q>", i, tt.s)
	}
}

// Ensure that line and character positions track newline preprocessing.
func TestScanner_Pos(t *testing.T) {
	s := scanner.New(strings.NewReader("a\r\n\fb"))

	tok := s.Scan()
	require.IsType(t, &token.Ident{}, tok)
	assert.Equal(t, token.Pos{Char: 1, Line: 0, Offset: 1}, tok.Position())

	tok = s.Scan()
	require.IsType(t, &token.Whitespace{}, tok)
	assert.Equal(t, "\n\n", tok.(*token.Whitespace).Value)

	tok = s.Scan()
	require.IsType(t, &token.Ident{}, tok)
	assert.Equal(t, token.Pos{Char: 1, Line: 2, Offset: 5}, tok.Position())
}
