package metaiivm

import (
	"io"
	"strings"

	"github.com/go-meta2/metaiivm/internal/flushio"
)

// outputAssembler holds the pending output line and the column discipline.
// Emitted lines are a pure function of the CL/CI/GNx calls between OUTs and
// the LB state at flush time.
type outputAssembler struct {
	line []string
	col  int

	out flushio.WriteFlusher
}

const (
	instructionColumn = 8
	labelColumn       = 0
)

func newOutputAssembler(w io.Writer) outputAssembler {
	return outputAssembler{col: instructionColumn, out: flushio.NewWriteFlusher(w)}
}

func (a *outputAssembler) cl(s string) { a.line = append(a.line, s) }
func (a *outputAssembler) ci(token string) { a.line = append(a.line, token) }

// lb sets the column to 0 for exactly the following flush.
func (a *outputAssembler) lb() { a.col = labelColumn }

// flush writes col spaces, the concatenated fragments, and a newline, flushes
// the underlying writer, then resets the line and restores the instruction
// column.
func (a *outputAssembler) flush() error {
	if a.col > 0 {
		if _, err := io.WriteString(a.out, strings.Repeat(" ", a.col)); err != nil {
			return err
		}
	}
	for _, frag := range a.line {
		if _, err := io.WriteString(a.out, frag); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(a.out, "\n"); err != nil {
		return err
	}
	if err := a.out.Flush(); err != nil {
		return err
	}
	a.line = a.line[:0]
	a.col = instructionColumn
	return nil
}
