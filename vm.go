package metaiivm

import (
	"context"
	"fmt"
	"io/ioutil"
)

// VM is one run's worth of META II virtual machine state. It is purely
// in-memory and is not safe for concurrent use by multiple goroutines, but
// independent VMs may run concurrently provided each owns its own sink.
type VM struct {
	input inputCursor
	token string

	sw bool // the match switch: the sole data channel from recognizers to branches

	out outputAssembler

	call         activationStack
	labelCounter int

	pc     int
	isErr  bool
	isDone bool
	errPC  int

	logfn func(mess string, args ...interface{})

	ctx context.Context
}

// New constructs a VM ready to run a Program against input, per opts. A VM
// with no WithOutput option discards its output.
func New(input string, opts ...VMOption) *VM {
	vm := &VM{
		input: inputCursor{text: input},
		out:   newOutputAssembler(ioutil.Discard),
		ctx:   context.Background(),
	}
	VMOptions(opts...).apply(vm)
	return vm
}

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	vm.logfn("%s", mess)
}


