package metaiivm

import "regexp"

// inputCursor is an immutable source string with a monotonically
// non-decreasing cursor, plus the four longest-prefix recognizers that
// scan out of it.
type inputCursor struct {
	text string
	pos  int
}

func (in *inputCursor) remaining() string { return in.text[in.pos:] }

func (in *inputCursor) skipSpace() {
	for in.pos < len(in.text) && isSpace(in.text[in.pos]) {
		in.pos++
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// tst matches a literal, byte for byte, after skipping whitespace.
func (in *inputCursor) tst(lit string) bool {
	in.skipSpace()
	rest := in.remaining()
	if len(rest) < len(lit) || rest[:len(lit)] != lit {
		return false
	}
	in.pos += len(lit)
	return true
}

// identRE requires a letter followed by at least one word character --
// the minimum-length-2 rule inherited from the original implementation;
// single-letter identifiers do not match ID on purpose, not by oversight.
var identRE = regexp.MustCompile(`^[A-Za-z]\w+`)

func (in *inputCursor) id() (string, bool) {
	in.skipSpace()
	m := identRE.FindString(in.remaining())
	if m == "" {
		return "", false
	}
	in.pos += len(m)
	return m, true
}

var numRE = regexp.MustCompile(`^[0-9]+`)

func (in *inputCursor) num() (string, bool) {
	in.skipSpace()
	m := numRE.FindString(in.remaining())
	if m == "" {
		return "", false
	}
	in.pos += len(m)
	return m, true
}

// sr matches a single-quoted string, returning it WITH its enclosing
// quotes. Interior '' as an escaped quote is not supported: a documented
// limitation carried over unimplemented from the original source, which
// left it as a TODO.
var stringRE = regexp.MustCompile(`^'[^']*'`)

func (in *inputCursor) sr() (string, bool) {
	in.skipSpace()
	m := stringRE.FindString(in.remaining())
	if m == "" {
		return "", false
	}
	in.pos += len(m)
	return m, true
}
