// Package io provides the I/O side of the LS-8 emulator: the PRN output
// tape, and the ROM image that programs are loaded from.
package io

// Output receives the values printed by the CPU, in execution order.
type Output interface {
	// Print emits a single register value.
	Print(value byte) error
}

// Tee prints each value to every Output in turn, stopping at the first
// error.
type Tee []Output

var _ Output = Tee(nil)

func (tee Tee) Print(value byte) (err error) {
	for _, out := range tee {
		err = out.Print(value)
		if err != nil {
			return
		}
	}

	return
}
