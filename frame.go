package metaiivm

// frame is a META II activation record: two blank-or-filled synthetic label
// cells plus the pc to resume at on return. Pushed by CLL, popped by R. The
// source keeps three parallel stacks (label1, label2, return-pc); this is
// the single stack-of-records the design notes call the correct model.
type frame struct {
	label1    string
	hasLabel1 bool
	label2    string
	hasLabel2 bool
	returnPC  int
}

// activationStack is the call stack of frames. frames[0] is a permanent
// bottom sentinel -- present from construction, never pushed or popped by
// CLL/R -- so that GN1/GN2 have somewhere to store labels even before any
// rule has been called, and so that R below the outermost call can be told
// apart from a normal return: its return_pc points at the end of the
// program.
type activationStack struct {
	frames   []frame
	maxDepth int // 0 means unbounded; counts frames beyond the sentinel
}

func newActivationStack(endPC, maxDepth int) activationStack {
	return activationStack{frames: []frame{{returnPC: endPC}}, maxDepth: maxDepth}
}

// depth is the number of activations beyond the bottom sentinel.
func (s *activationStack) depth() int { return len(s.frames) - 1 }

// push enters a new activation, returning to returnPC. It is the caller's
// job to then set pc to the called rule's entry.
func (s *activationStack) push(returnPC int) error {
	if s.maxDepth > 0 && s.depth() >= s.maxDepth {
		return errDepthExceeded(s.maxDepth)
	}
	s.frames = append(s.frames, frame{returnPC: returnPC})
	return nil
}

// pop removes the top activation and reports its return pc. ok is false
// when only the bottom sentinel remains, i.e. R below the sentinel halts.
func (s *activationStack) pop() (returnPC int, ok bool) {
	if s.depth() == 0 {
		return 0, false
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top.returnPC, true
}

func (s *activationStack) top() *frame {
	return &s.frames[len(s.frames)-1]
}

// genLabel1 implements GN1's "blank sentinel, fill on first use, stable
// thereafter" contract against the current frame.
func (s *activationStack) genLabel1(gen func() string) string {
	f := s.top()
	if !f.hasLabel1 {
		f.label1 = gen()
		f.hasLabel1 = true
	}
	return f.label1
}

func (s *activationStack) genLabel2(gen func() string) string {
	f := s.top()
	if !f.hasLabel2 {
		f.label2 = gen()
		f.hasLabel2 = true
	}
	return f.label2
}
