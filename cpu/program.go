package cpu

import (
	"iter"
	"strings"
)

// Opcode represents a line of assembled code with its source location and
// generated bytes.
type Opcode struct {
	LineNo    int
	Address   int
	Words     []string
	Bytes     []byte
	LinkLabel string // Label whose address is patched into the last byte.
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the assembled line covering address.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if address >= op.Address && address < op.Address+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  address - op.Address,
			}
			break
		}
	}

	return
}

// Size returns the number of bytes spanned by the program.
func (prog *Program) Size() (size int) {
	for _, op := range prog.Opcodes {
		size = max(size, op.Address+len(op.Bytes))
	}

	return
}

// Bytes returns an iterator over the address and value of each assembled
// byte.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(address int, value byte) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Bytes {
				if !yield(op.Address+n, value) {
					return
				}
			}
		}
	}
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, prog.Size())
	for address, value := range prog.Bytes() {
		bins[address] = value
	}

	return
}

// Notes returns a per-byte listing comment for the image: the source
// words at the first byte of each line, empty elsewhere.
func (prog *Program) Notes() (notes []string) {
	notes = make([]string, prog.Size())
	for _, op := range prog.Opcodes {
		if len(op.Bytes) != 0 {
			notes[op.Address] = strings.Join(op.Words, " ")
		}
	}

	return
}

// Disassemble returns an iterator over the instructions in memory from
// start up to, but not including, end. Decoding stops at the first
// address outside memory.
func Disassemble(mem *Memory, start, end int) iter.Seq[Instruction] {
	return func(yield func(in Instruction) bool) {
		for address := start; address < end; {
			in, err := Decode(mem, address)
			if err != nil {
				return
			}
			if !yield(in) {
				return
			}
			address += in.Code.Width()
		}
	}
}
