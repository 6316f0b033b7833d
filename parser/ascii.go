package parser

// TrimSpace returns b without leading and trailing ASCII whitespace
// (space, tab, newline, form feed and carriage return). The result shares
// b's storage.
func TrimSpace(b []byte) []byte {
	start, end := trimBounds(b)
	return b[start:end]
}

// trimBounds returns the bounds of s with ASCII whitespace trimmed from
// both ends. start == end if s is empty or all whitespace.
func trimBounds[T ~string | ~[]byte](s T) (start, end int) {
	end = len(s)
	for start < end && isASCIISpace(s[start]) {
		start++
	}
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return start, end
}

// isASCIISpace matches the WHATWG ASCII whitespace set.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// EqualFoldASCII reports whether a and b are equal when ASCII letters are
// compared case-insensitively. Non-ASCII bytes must match exactly.
func EqualFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toLowerASCII(a[i]) != toLowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
