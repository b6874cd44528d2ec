package cpu

// handler executes one instruction. Each handler advances or sets the PC
// itself.
type handler func(cpu *Cpu, a, b byte) error

// newDispatch builds the opcode to handler table.
func newDispatch() map[Code]handler {
	return map[Code]handler{
		OP_HLT:  (*Cpu).opHlt,
		OP_LDI:  (*Cpu).opLdi,
		OP_PRN:  (*Cpu).opPrn,
		OP_ADD:  (*Cpu).opAdd,
		OP_SUB:  (*Cpu).opSub,
		OP_MUL:  (*Cpu).opMul,
		OP_PUSH: (*Cpu).opPush,
		OP_POP:  (*Cpu).opPop,
		OP_CALL: (*Cpu).opCall,
		OP_RET:  (*Cpu).opRet,
	}
}

// Handles returns true if code has a handler in the dispatch table.
func (cpu *Cpu) Handles(code Code) bool {
	_, ok := cpu.dispatch[code]
	return ok
}

func (cpu *Cpu) opHlt(_, _ byte) (err error) {
	cpu.halt(HALT_HLT, OP_HLT, nil)
	return
}

func (cpu *Cpu) opLdi(a, b byte) (err error) {
	err = cpu.Register.Set(int(a), b)
	if err != nil {
		return
	}

	cpu.Pc += OP_LDI.Width()
	return
}

func (cpu *Cpu) opPrn(a, _ byte) (err error) {
	value, err := cpu.Register.Get(int(a))
	if err != nil {
		return
	}

	if cpu.Output != nil {
		err = cpu.Output.Print(value)
		if err != nil {
			return
		}
	}

	cpu.Pc += OP_PRN.Width()
	return
}

// aluStep runs an ALU instruction and advances past it.
func (cpu *Cpu) aluStep(code Code, op AluOp, a, b byte) (err error) {
	err = cpu.Alu(op, a, b)
	if err != nil {
		return
	}

	cpu.Pc += code.Width()
	return
}

func (cpu *Cpu) opAdd(a, b byte) error {
	return cpu.aluStep(OP_ADD, ALU_OP_ADD, a, b)
}

func (cpu *Cpu) opSub(a, b byte) error {
	return cpu.aluStep(OP_SUB, ALU_OP_SUB, a, b)
}

func (cpu *Cpu) opMul(a, b byte) error {
	return cpu.aluStep(OP_MUL, ALU_OP_MUL, a, b)
}

func (cpu *Cpu) opPush(a, _ byte) (err error) {
	value, err := cpu.Register.Get(int(a))
	if err != nil {
		return
	}

	err = cpu.Push(value)
	if err != nil {
		return
	}

	cpu.Pc += OP_PUSH.Width()
	return
}

func (cpu *Cpu) opPop(a, _ byte) (err error) {
	// Check the target before touching the stack.
	_, err = cpu.Register.Get(int(a))
	if err != nil {
		return
	}

	value, err := cpu.Pop()
	if err != nil {
		return
	}

	err = cpu.Register.Set(int(a), value)
	if err != nil {
		return
	}

	cpu.Pc += OP_POP.Width()
	return
}

func (cpu *Cpu) opCall(a, _ byte) (err error) {
	target, err := cpu.Register.Get(int(a))
	if err != nil {
		return
	}

	// Return address is truncated to the 8-bit address space.
	err = cpu.Push(byte(cpu.Pc + OP_CALL.Width()))
	if err != nil {
		return
	}

	cpu.Pc = int(target)
	return
}

func (cpu *Cpu) opRet(_, _ byte) (err error) {
	address, err := cpu.Pop()
	if err != nil {
		return
	}

	cpu.Pc = int(address)
	return
}
