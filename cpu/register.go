package cpu

const (
	REGISTER_COUNT = 8    // General purpose registers.
	REGISTER_SP    = 7    // Register used as the stack pointer.
	SP_INIT        = 0xf4 // Initial stack pointer.
)

// Registers is the general purpose register file.
//
// REGISTER_SP is the stack pointer by convention only; the register file
// itself treats it like any other register.
type Registers [REGISTER_COUNT]byte

// Get returns the value of register index.
func (reg *Registers) Get(index int) (value byte, err error) {
	if index < 0 || index >= len(reg) {
		err = ErrRegister(index)
		return
	}

	value = reg[index]
	return
}

// Set sets register index to value.
func (reg *Registers) Set(index int, value byte) (err error) {
	if index < 0 || index >= len(reg) {
		err = ErrRegister(index)
		return
	}

	reg[index] = value
	return
}

// Reset zeros the registers and sets up the stack pointer.
func (reg *Registers) Reset() {
	clear(reg[:])
	reg[REGISTER_SP] = SP_INIT
}
