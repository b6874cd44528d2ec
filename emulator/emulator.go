// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"
	"slices"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

const (
	HISTORY_SIZE = 16 // Printed values kept for post-mortem reports.
)

// Emulator state. CPU + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Assembled program, if any. Replaces the ROM image on Reset.

	Temporary io.Temporary // Most recently printed values.
	Tape      io.Tape      // PRN output.
	Rom       io.Rom       // Boot image.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	emu.Temporary.Capacity = HISTORY_SIZE
	emu.Cpu.Output = io.Tee{&emu.Tape, &emu.Temporary}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		emu.Temporary.Defines(),
		emu.Rom.Defines(),
	)
}

// Reset the emulator. Memory is cleared and reloaded from the program, or
// from the ROM image when there is no program.
func (emu *Emulator) Reset() (err error) {
	if emu.Program != nil {
		emu.Rom.Data = emu.Program.Binary()
		emu.Rom.Notes = emu.Program.Notes()
	}

	emu.Cpu.Memory.Clear()
	err = emu.Cpu.Memory.Load(0, emu.Rom.Data)
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.Tape.Rewind()
	emu.Temporary.Rewind()

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes", len(emu.Rom.Data))
	}

	return
}

// LineNo returns the current line number for the executing opcode, or 0
// if there is no source for it.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: pc, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.State == cpu.STATE_HALTED
	return
}

// Run ticks until the CPU halts.
func (emu *Emulator) Run() (halt cpu.Halt, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			break
		}
	}

	halt = emu.Cpu.Halt
	return
}

// History returns the most recently printed values, oldest first.
func (emu *Emulator) History() []byte {
	return slices.Collect(emu.Temporary.Values())
}

// Listing returns an iterator over the instructions in the loaded image,
// with the source note for each one when known.
func (emu *Emulator) Listing() iter.Seq2[cpu.Instruction, string] {
	return func(yield func(in cpu.Instruction, note string) bool) {
		for in := range cpu.Disassemble(&emu.Cpu.Memory, 0, len(emu.Rom.Data)) {
			var note string
			if in.Address < len(emu.Rom.Notes) {
				note = emu.Rom.Notes[in.Address]
			}
			if !yield(in, note) {
				return
			}
		}
	}
}
