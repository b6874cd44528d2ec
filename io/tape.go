package io

import (
	"fmt"
	"io"
)

// Tape is a line printer. Each printed value is written to Output as a
// decimal number on its own line.
type Tape struct {
	Output io.Writer

	Printed int // Values printed since the last rewind.
}

var _ Output = (*Tape)(nil)

// Rewind resets the printed counter.
func (tc *Tape) Rewind() {
	tc.Printed = 0
}

// Print writes value in decimal, followed by a newline.
func (tc *Tape) Print(value byte) (err error) {
	if tc.Output == nil {
		err = ErrTapeOutput
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.Printed++
	return
}
