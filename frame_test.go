package metaiivm

import "testing"

func TestActivationStackBottomSentinel(t *testing.T) {
	s := newActivationStack(42, 0)
	if s.depth() != 0 {
		t.Fatalf("depth() = %d, want 0 for a fresh stack", s.depth())
	}
	if _, ok := s.pop(); ok {
		t.Fatal("pop() below the bottom sentinel should report ok=false")
	}
}

func TestActivationStackGenLabelStableBeforeAnyCall(t *testing.T) {
	s := newActivationStack(0, 0)
	n := 0
	gen := func() string { n++; return "L0" }
	first := s.genLabel1(gen)
	second := s.genLabel1(gen)
	if first != second {
		t.Errorf("genLabel1 at the bottom frame should be stable: %q != %q", first, second)
	}
	if n != 1 {
		t.Errorf("gen called %d times, want exactly 1", n)
	}
}

func TestActivationStackGenLabel1And2Independent(t *testing.T) {
	s := newActivationStack(0, 0)
	labels := []string{"L0", "L1"}
	i := 0
	gen := func() string { v := labels[i]; i++; return v }
	l1 := s.genLabel1(gen)
	l2 := s.genLabel2(gen)
	if l1 == l2 {
		t.Errorf("genLabel1 and genLabel2 share the same cell: both returned %q", l1)
	}
}

func TestActivationStackPushPopRoundTrip(t *testing.T) {
	s := newActivationStack(100, 0)
	if err := s.push(7); err != nil {
		t.Fatalf("push: %v", err)
	}
	if s.depth() != 1 {
		t.Fatalf("depth() = %d, want 1 after one push", s.depth())
	}
	pc, ok := s.pop()
	if !ok || pc != 7 {
		t.Fatalf("pop() = (%d, %v), want (7, true)", pc, ok)
	}
	if s.depth() != 0 {
		t.Fatalf("depth() = %d, want 0 after matching pop", s.depth())
	}
}

func TestActivationStackLabelsDistinctAcrossActivations(t *testing.T) {
	s := newActivationStack(0, 0)
	n := 0
	gen := func() string { n++; return []string{"L0", "L1"}[n-1] }

	outer := s.genLabel1(gen)
	if err := s.push(0); err != nil {
		t.Fatalf("push: %v", err)
	}
	inner := s.genLabel1(gen)
	if outer == inner {
		t.Errorf("nested activation reused the outer frame's label cell: both %q", outer)
	}
	s.pop()
	again := s.genLabel1(gen)
	if again != outer {
		t.Errorf("returning to the outer frame lost its stable label: got %q, want %q", again, outer)
	}
}

func TestActivationStackMaxDepth(t *testing.T) {
	s := newActivationStack(0, 2)
	if err := s.push(1); err != nil {
		t.Fatalf("push 1: %v", err)
	}
	if err := s.push(2); err != nil {
		t.Fatalf("push 2: %v", err)
	}
	if err := s.push(3); err == nil {
		t.Fatal("push beyond maxDepth should error")
	}
}
