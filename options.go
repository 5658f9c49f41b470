package metaiivm

import (
	"context"
	"io"
)

// VMOption configures a VM at construction time (functional-options).
type VMOption interface{ apply(vm *VM) }

// VMOptions composes any number of options into one, flattening nested
// composites so that apply never recurses more than one level deep.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*VM) {}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

// WithOutput directs emitted lines (OUT) to w.
func WithOutput(w io.Writer) VMOption { return outputOption{w} }

type outputOption struct{ w io.Writer }

func (o outputOption) apply(vm *VM) { vm.out = newOutputAssembler(o.w) }

// WithTrace installs a per-step diagnostic logging function. Its format is
// unspecified and may change; it exists for human debugging, not parsing.
func WithTrace(logf func(mess string, args ...interface{})) VMOption { return traceOption{logf} }

type traceOption struct {
	logf func(mess string, args ...interface{})
}

func (o traceOption) apply(vm *VM) { vm.logfn = o.logf }

// WithMaxDepth bounds the activation stack so a left-recursive masm rule
// that never advances the input halts with a depth-limit error instead of
// growing the call stack without bound. 0 (the default) is unbounded.
func WithMaxDepth(max int) VMOption { return maxDepthOption(max) }

type maxDepthOption int

func (o maxDepthOption) apply(vm *VM) { vm.call.maxDepth = int(o) }

// WithContext lets a host bound a run's wall-clock time or cancel it early.
// The dispatcher checks ctx.Err() between instructions, never mid-instruction:
// a cooperative extension layered on top of the core fetch/execute contract.
func WithContext(ctx context.Context) VMOption { return contextOption{ctx} }

type contextOption struct{ ctx context.Context }

func (o contextOption) apply(vm *VM) { vm.ctx = o.ctx }
