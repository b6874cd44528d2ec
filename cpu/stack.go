package cpu

// Push decrements the stack pointer and stores value at the new top of
// stack. The stack pointer wraps from 0x00 to 0xff.
func (cpu *Cpu) Push(value byte) (err error) {
	sp := cpu.Sp() - 1
	err = cpu.Memory.Write(int(sp), value)
	if err != nil {
		return
	}

	cpu.setSp(sp)
	return
}

// Pop returns the top of stack and increments the stack pointer.
func (cpu *Cpu) Pop() (value byte, err error) {
	value, err = cpu.Peek()
	if err != nil {
		return
	}

	cpu.setSp(cpu.Sp() + 1)
	return
}

// Peek returns the top of stack.
func (cpu *Cpu) Peek() (value byte, err error) {
	return cpu.Memory.Read(int(cpu.Sp()))
}
