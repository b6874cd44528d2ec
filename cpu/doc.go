// Package cpu implements the LS-8 8-bit processor and its assembler.
//
// The CPU has 256 bytes of memory, eight 8-bit registers (R7 doubles as
// the stack pointer), and a program counter. Each instruction is an opcode
// byte whose top two bits give the number of operand bytes that follow.
// The dispatch table maps opcodes to handlers; an opcode without a handler
// halts the CPU.
//
// The assembler turns LS-8 mnemonics into a Program, supporting macros,
// labels, equates, and compile-time expression evaluation.
package cpu
