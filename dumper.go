package metaiivm

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable snapshot of vm's state to w: program
// counter, activation-stack depth, current token, match switch, and the
// output line pending flush. It is a pure debugging convenience -- no VM
// semantics depend on it -- wired up by cmd/metaiivm's -dump flag.
func (vm *VM) Dump(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# VM dump\n")
	fmt.Fprintf(&b, "  pc: %d\n", vm.pc)
	fmt.Fprintf(&b, "  switch: %v\n", vm.sw)
	fmt.Fprintf(&b, "  token: %q\n", vm.token)
	fmt.Fprintf(&b, "  input remaining: %q\n", vm.input.remaining())
	fmt.Fprintf(&b, "  call depth: %d\n", vm.call.depth())
	fmt.Fprintf(&b, "  label counter: %d\n", vm.labelCounter)
	fmt.Fprintf(&b, "  pending output line (col=%d): %v\n", vm.out.col, vm.out.line)
	fmt.Fprintf(&b, "  halted: err=%v done=%v\n", vm.isErr, vm.isDone)
	_, err := io.WriteString(w, b.String())
	return err
}
