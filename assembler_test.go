package metaiivm

import (
	"bytes"
	"testing"
)

func TestOutputAssemblerDefaultColumn(t *testing.T) {
	var buf bytes.Buffer
	a := newOutputAssembler(&buf)
	a.cl("MOVE")
	if err := a.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := "        MOVE\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestOutputAssemblerLabelColumn(t *testing.T) {
	var buf bytes.Buffer
	a := newOutputAssembler(&buf)
	a.lb()
	a.cl("START")
	if err := a.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := "START\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestOutputAssemblerLabelColumnOneShot(t *testing.T) {
	var buf bytes.Buffer
	a := newOutputAssembler(&buf)
	a.lb()
	a.cl("START")
	if err := a.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	a.cl("MOVE")
	if err := a.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := "START\n        MOVE\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestOutputAssemblerConcatenatesFragments(t *testing.T) {
	var buf bytes.Buffer
	a := newOutputAssembler(&buf)
	a.cl("GOTO ")
	a.ci("L0")
	if err := a.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := "        GOTO L0\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestOutputAssemblerFlushClearsState(t *testing.T) {
	var buf bytes.Buffer
	a := newOutputAssembler(&buf)
	a.cl("A")
	if err := a.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if len(a.line) != 0 {
		t.Errorf("line not cleared after flush: %v", a.line)
	}
	if a.col != instructionColumn {
		t.Errorf("col = %d after flush, want reset to %d", a.col, instructionColumn)
	}
	// a second, empty flush should just emit a blank line at the default column
	if err := a.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := "        A\n        \n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
