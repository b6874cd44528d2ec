// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/ls8/io"
)

// State is the run state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State,HaltReason
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

// HaltReason records why the CPU entered STATE_HALTED.
type HaltReason int

const (
	HALT_NONE           = HaltReason(0) // none
	HALT_HLT            = HaltReason(1) // hlt
	HALT_UNKNOWN_OPCODE = HaltReason(2) // unknown opcode
	HALT_FAULT          = HaltReason(3) // fault
)

// Halt is the outcome of a run.
type Halt struct {
	Reason HaltReason // Why the CPU halted.
	Pc     int        // Address of the instruction that halted the CPU.
	Code   Code       // Opcode at Pc.
	Err    error      // Set for HALT_UNKNOWN_OPCODE and HALT_FAULT.
}

// String returns a human readable diagnostic for the halt.
func (h Halt) String() string {
	switch h.Reason {
	case HALT_HLT:
		return f("halted at 0x%02x", h.Pc)
	case HALT_UNKNOWN_OPCODE:
		return f("unknown opcode 0x%02x at 0x%02x", uint8(h.Code), h.Pc)
	case HALT_FAULT:
		return f("fault at 0x%02x: %v", h.Pc, h.Err)
	}

	return h.Reason.String()
}

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%d", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"SP_INIT":        fmt.Sprintf("%#x", SP_INIT),
}

// Cpu is the LS-8 fetch-decode-execute engine.
//
// A Cpu is not safe for concurrent use; at most one Run may be active at a
// time, and Memory and Register must not be changed while it runs.
type Cpu struct {
	Verbose bool // Set to log a trace line per instruction.

	Memory   Memory    // Program and stack memory.
	Register Registers // Register bank. Register[REGISTER_SP] is the stack pointer.
	Pc       int       // Program counter.
	State    State     // Current run state.
	Halt     Halt      // Outcome, once State is STATE_HALTED.
	Output   io.Output // PRN destination. Nil discards output.

	Ticks int // Instructions executed since reset.

	dispatch map[Code]handler
}

// NewCpu creates a reset CPU with zeroed memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		dispatch: newDispatch(),
	}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers, and sets the stack pointer to SP_INIT.
// - Sets the PC to 0.
// - Zeros the tick counter.
// Memory is left untouched so a loaded program survives.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.State = STATE_RUNNING
	cpu.Halt = Halt{}
	cpu.Ticks = 0
}

// Sp returns the stack pointer.
func (cpu *Cpu) Sp() byte {
	return cpu.Register[REGISTER_SP]
}

func (cpu *Cpu) setSp(sp byte) {
	cpu.Register[REGISTER_SP] = sp
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"state",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "state":
			strval = cpu.State.String()
			if cpu.State == STATE_HALTED {
				strval += " (" + cpu.Halt.String() + ")"
			}
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7":
			strval = fmt.Sprintf("%02X", cpu.Register[reg[1]-'0'])
		case "stack":
			val, err := cpu.Peek()
			if err != nil || cpu.Sp() == SP_INIT {
				strval = "--"
			} else {
				strval = fmt.Sprintf("%02X", val)
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Trace returns a single line dump of the PC, the bytes at the PC, and
// all registers.
func (cpu *Cpu) Trace() string {
	peek := func(address int) byte {
		value, _ := cpu.Memory.Read(address)
		return value
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "TRACE: %02X | %02X %02X %02X |",
		cpu.Pc, peek(cpu.Pc), peek(cpu.Pc+1), peek(cpu.Pc+2))
	for _, value := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", value)
	}

	return sb.String()
}

// Fetch decodes the instruction at the PC.
func (cpu *Cpu) Fetch() (in Instruction, err error) {
	return Decode(&cpu.Memory, cpu.Pc)
}

// halt moves the CPU to STATE_HALTED.
func (cpu *Cpu) halt(reason HaltReason, code Code, err error) {
	cpu.State = STATE_HALTED
	cpu.Halt = Halt{
		Reason: reason,
		Pc:     cpu.Pc,
		Code:   code,
		Err:    err,
	}
}

// Tick executes a single instruction.
//
// An unknown opcode halts the CPU and is not an error; the reason is
// recorded in Halt. Out of range register or memory accesses halt the CPU
// with HALT_FAULT and are returned.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State == STATE_HALTED {
		err = ErrHalted
		return
	}

	in, err := cpu.Fetch()
	if err != nil {
		cpu.halt(HALT_FAULT, 0, err)
		return
	}

	if cpu.Verbose {
		log.Print(cpu.Trace())
	}

	handle, ok := cpu.dispatch[in.Code]
	if !ok {
		cpu.halt(HALT_UNKNOWN_OPCODE, in.Code, errors.Join(ErrOpcodeUnknown, ErrOpcode(in.Code)))
		log.Printf("cpu: %v", cpu.Halt)
		return
	}

	err = handle(cpu, in.Operands[0], in.Operands[1])
	if err != nil {
		err = errors.Join(ErrOpcode(in.Code), err)
		cpu.halt(HALT_FAULT, in.Code, err)
		return
	}

	cpu.Ticks++

	return
}

// Run ticks the CPU until it halts, and returns the outcome.
// The error is only set for faults.
func (cpu *Cpu) Run() (halt Halt, err error) {
	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			break
		}
	}

	halt = cpu.Halt
	return
}
