package metaiivm

import (
	"errors"
	"fmt"

	"github.com/go-meta2/metaiivm/internal/panicerr"
)

// Run drives vm through prog to completion, in its own goroutine so that an
// unexpected panic deep in a handler (a host bug, not a masm bug) is
// recovered and reported as an error rather than taking down the caller.
//
// It returns nil on a clean halt (END, or R below the outermost activation),
// a *HaltError if a BE mandatory match failed, or another error if prog
// itself is structurally broken in a way only the dispatcher could catch.
func Run(vm *VM, prog *Program) error {
	err := panicerr.Recover("metaiivm", func() error {
		return vm.run(prog)
	})
	if err == nil {
		return nil
	}
	if panicerr.IsPanic(err) {
		return fmt.Errorf("metaiivm: internal error: %w", err)
	}
	var he *HaltError
	if errors.As(err, &he) {
		return he
	}
	return err
}
