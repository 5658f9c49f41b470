// Package fileinput provides line-oriented reading with source location
// tracking, so that a diagnostic can name the "file:line" a problem came
// from -- used by the masm program loader to report malformed lines.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line within a named source (a file, or any name a caller
// chooses to give an in-memory string).
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Reader scans a named source one line at a time, tracking the Location of
// the most recently read line so that callers can attach it to any error
// they raise about that line's content.
type Reader struct {
	loc Location
	sc  *bufio.Scanner
}

// NewReader returns a Reader over r, attributing every line it yields to name.
func NewReader(r io.Reader, name string) *Reader {
	return &Reader{loc: Location{Name: name}, sc: bufio.NewScanner(r)}
}

// Next advances to the next line, returning its text without a trailing
// newline. ok is false once the source is exhausted; Err reports any
// underlying read error.
func (in *Reader) Next() (text string, ok bool) {
	if !in.sc.Scan() {
		return "", false
	}
	in.loc.Line++
	return in.sc.Text(), true
}

// Loc returns the Location of the line most recently returned by Next.
func (in *Reader) Loc() Location { return in.loc }

// Err returns the first non-EOF error encountered by Next.
func (in *Reader) Err() error { return in.sc.Err() }

// NameOf returns r's Name() if it implements one, else a placeholder built
// from its dynamic type -- used when the caller only has an io.Reader and
// wants a reasonable label for diagnostics.
func NameOf(r io.Reader) string {
	if nom, ok := r.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", r)
}
