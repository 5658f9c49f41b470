package metaiivm

import "fmt"

// run is the program-counter fetch/execute loop: fetch,
// dispatch on opcode, repeat until is_err or is_done. There is no opcode
// registration table; the switch in exec is the whole dispatcher.
func (vm *VM) run(prog *Program) error {
	vm.call = newActivationStack(prog.End(), vm.call.maxDepth)
	vm.pc = 0
	vm.isErr = false
	vm.isDone = false

	for !vm.isErr && !vm.isDone {
		if vm.ctx != nil {
			if err := vm.ctx.Err(); err != nil {
				return err
			}
		}
		if vm.pc < 0 || vm.pc >= len(prog.Instructions) {
			return &StructuralError{PC: vm.pc, Msg: "program counter ran off the end of the program"}
		}
		instr := prog.Instructions[vm.pc]
		vm.trace(instr)
		if err := vm.exec(prog, instr); err != nil {
			return err
		}
	}
	if vm.isErr {
		return &HaltError{PC: vm.errPC}
	}
	return nil
}

func (vm *VM) trace(instr Instruction) {
	if vm.logfn == nil {
		return
	}
	vm.logf("@%-4d %-10v input=%q token=%q depth=%d out=%q",
		vm.pc, instr, vm.input.remaining(), vm.token, vm.call.depth(), vm.out.line)
}

func argLabelOf(prog *Program, instr Instruction) (pc int, err error) {
	lbl, ok := instr.Arg.(labelArg)
	if !ok {
		return 0, &StructuralError{Msg: fmt.Sprintf("%v requires a label argument", instr.Op)}
	}
	pc, ok = prog.PC(string(lbl))
	if !ok {
		return 0, &StructuralError{Msg: fmt.Sprintf("%v refers to unknown label %q", instr.Op, string(lbl))}
	}
	return pc, nil
}

func argStringOf(instr Instruction) (string, error) {
	s, ok := instr.Arg.(stringArg)
	if !ok {
		return "", &StructuralError{Msg: fmt.Sprintf("%v requires a string argument", instr.Op)}
	}
	return string(s), nil
}

// exec executes one instruction, handling pc advance/branch/halt per the
// contract each opcode carries: non-branching ops advance pc themselves,
// conditional branches set pc only when taken, ADR/B/CLL jump
// unconditionally, and BE/END/R-below-sentinel set the terminal flags.
func (vm *VM) exec(prog *Program, instr Instruction) error {
	switch instr.Op {

	case TST:
		lit, err := argStringOf(instr)
		if err != nil {
			return err
		}
		vm.sw = vm.input.tst(lit)
		vm.pc++

	case ID:
		tok, ok := vm.input.id()
		vm.sw = ok
		if ok {
			vm.token = tok
		}
		vm.pc++

	case NUM:
		tok, ok := vm.input.num()
		vm.sw = ok
		if ok {
			vm.token = tok
		}
		vm.pc++

	case SR:
		tok, ok := vm.input.sr()
		vm.sw = ok
		if ok {
			vm.token = tok
		}
		vm.pc++

	case CLL:
		target, err := argLabelOf(prog, instr)
		if err != nil {
			return err
		}
		if err := vm.call.push(vm.pc + 1); err != nil {
			return err
		}
		vm.pc = target

	case R:
		if returnPC, ok := vm.call.pop(); ok {
			vm.pc = returnPC
		} else {
			vm.isDone = true
		}

	case SET:
		vm.sw = true
		vm.pc++

	case B:
		target, err := argLabelOf(prog, instr)
		if err != nil {
			return err
		}
		vm.pc = target

	case BT:
		target, err := argLabelOf(prog, instr)
		if err != nil {
			return err
		}
		if vm.sw {
			vm.pc = target
		} else {
			vm.pc++
		}

	case BF:
		target, err := argLabelOf(prog, instr)
		if err != nil {
			return err
		}
		if !vm.sw {
			vm.pc = target
		} else {
			vm.pc++
		}

	case BE:
		if !vm.sw {
			vm.isErr = true
			vm.errPC = vm.pc
		} else {
			vm.pc++
		}

	case CL:
		lit, err := argStringOf(instr)
		if err != nil {
			return err
		}
		vm.out.cl(lit)
		vm.pc++

	case CI:
		vm.out.ci(vm.token)
		vm.pc++

	case GN1:
		vm.out.cl(vm.call.genLabel1(vm.genLabel))
		vm.pc++

	case GN2:
		vm.out.cl(vm.call.genLabel2(vm.genLabel))
		vm.pc++

	case LB:
		vm.out.lb()
		vm.pc++

	case OUT:
		if err := vm.out.flush(); err != nil {
			return err
		}
		vm.pc++

	case ADR:
		target, err := argLabelOf(prog, instr)
		if err != nil {
			return err
		}
		vm.pc = target

	case END:
		vm.isDone = true

	default:
		return &StructuralError{PC: vm.pc, Msg: fmt.Sprintf("unknown opcode %v", instr.Op)}
	}
	return nil
}

// genLabel produces the next synthetic label name, "L" + a counter that
// starts at 0 and increments after every use (Open Question resolved per
// original_source/metaiivm.py: self.label_counter = 0).
func (vm *VM) genLabel() string {
	label := fmt.Sprintf("L%d", vm.labelCounter)
	vm.labelCounter++
	return label
}
