package cpu

import (
	"fmt"
	"strings"
)

// Code is a single opcode byte.
type Code byte

//go:generate go tool stringer -linecomment -type=Code,AluOp
const (
	OP_HLT  = Code(0b00000001) // HLT
	OP_LDI  = Code(0b10000010) // LDI
	OP_PRN  = Code(0b01000111) // PRN
	OP_ADD  = Code(0b10100000) // ADD
	OP_SUB  = Code(0b10100001) // SUB
	OP_MUL  = Code(0b10100010) // MUL
	OP_PUSH = Code(0b01000101) // PUSH
	OP_POP  = Code(0b01000110) // POP
	OP_CALL = Code(0b01010000) // CALL
	OP_RET  = Code(0b00010001) // RET
)

// Opcode bit fields.
const (
	CODE_OPERANDS_SHIFT = 6           // Operand count in bits 7-6.
	CODE_ALU            = Code(1 << 5) // Set for ALU instructions.
)

// AluOp is an ALU operation type.
type AluOp int

const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_SUB = AluOp(1) // sub
	ALU_OP_MUL = AluOp(2) // mul
)

// Operands returns the number of operand bytes following the opcode.
func (code Code) Operands() int {
	return int(code >> CODE_OPERANDS_SHIFT)
}

// Width returns the instruction width in bytes, opcode included.
func (code Code) Width() int {
	return 1 + code.Operands()
}

// IsAlu returns true if the opcode is routed through the ALU.
func (code Code) IsAlu() bool {
	return code&CODE_ALU != 0
}

// mnemonicMap maps mnemonic names to opcodes.
var mnemonicMap = map[string]Code{
	"HLT":  OP_HLT,
	"LDI":  OP_LDI,
	"PRN":  OP_PRN,
	"ADD":  OP_ADD,
	"SUB":  OP_SUB,
	"MUL":  OP_MUL,
	"PUSH": OP_PUSH,
	"POP":  OP_POP,
	"CALL": OP_CALL,
	"RET":  OP_RET,
}

// LookupMnemonic returns the opcode for a case-insensitive mnemonic.
func LookupMnemonic(name string) (code Code, ok bool) {
	code, ok = mnemonicMap[strings.ToUpper(name)]
	return
}

// Instruction is a decoded instruction at an address.
type Instruction struct {
	Address  int
	Code     Code
	Operands [2]byte
}

// Decode decodes the instruction at address. Both operand bytes are
// always read; an operand past the end of memory decodes as 0.
func Decode(mem *Memory, address int) (in Instruction, err error) {
	opcode, err := mem.Read(address)
	if err != nil {
		return
	}

	in.Address = address
	in.Code = Code(opcode)
	for n := range in.Operands {
		if address+1+n < len(mem) {
			in.Operands[n] = mem[address+1+n]
		}
	}

	return
}

// String returns the assembly language representation of the instruction.
// Register operands are shown as Rn, immediates in hex. Two operand ALU
// instructions take two registers.
func (in Instruction) String() string {
	switch {
	case in.Code == OP_LDI:
		return fmt.Sprintf("%v R%d,0x%02x", in.Code, in.Operands[0], in.Operands[1])
	case in.Code.IsAlu() && in.Code.Operands() == 2:
		return fmt.Sprintf("%v R%d,R%d", in.Code, in.Operands[0], in.Operands[1])
	}

	switch in.Code.Operands() {
	case 1:
		return fmt.Sprintf("%v R%d", in.Code, in.Operands[0])
	case 2:
		return fmt.Sprintf("%v 0x%02x,0x%02x", in.Code, in.Operands[0], in.Operands[1])
	}

	return in.Code.String()
}
