package cpu

// Alu applies op to registers dst and src, and writes the result to dst.
// All arithmetic is 8-bit unsigned and wraps.
func (cpu *Cpu) Alu(op AluOp, dst, src byte) (err error) {
	input, err := cpu.Register.Get(int(dst))
	if err != nil {
		return
	}

	value, err := cpu.Register.Get(int(src))
	if err != nil {
		return
	}

	output, err := doAlu(op, input, value)
	if err != nil {
		return
	}

	return cpu.Register.Set(int(dst), output)
}

// doAlu performs the requested ALU action, and returns the output value.
func doAlu(op AluOp, input byte, value byte) (output byte, err error) {
	switch op {
	case ALU_OP_ADD: // add
		output = input + value
	case ALU_OP_SUB: // sub
		output = input + ((^value) + 1)
	case ALU_OP_MUL: // mul
		output = input * value
	default:
		err = ErrAluUnsupported
	}

	return
}
