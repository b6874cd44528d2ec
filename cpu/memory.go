package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the flat byte-addressable RAM of the CPU.
type Memory [MEMORY_SIZE]byte

// Read returns the byte at address.
func (mem *Memory) Read(address int) (value byte, err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddress(address)
		return
	}

	value = mem[address]
	return
}

// Write stores value at address.
func (mem *Memory) Write(address int, value byte) (err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddress(address)
		return
	}

	mem[address] = value
	return
}

// Load copies data into memory starting at base.
// Nothing is written if the data does not fit.
func (mem *Memory) Load(base int, data []byte) (err error) {
	if base < 0 || base > len(mem) {
		err = ErrAddress(base)
		return
	}
	if base+len(data) > len(mem) {
		err = ErrAddress(base + len(data) - 1)
		return
	}

	copy(mem[base:], data)
	return
}

// Clear zeros all of memory.
func (mem *Memory) Clear() {
	clear(mem[:])
}
