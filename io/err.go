package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageSize  = errors.New(f("image exceeds rom size"))
	ErrTapeOutput = errors.New(f("tape has no output"))
)

// ErrImageSyntax is an unparseable line of an image.
type ErrImageSyntax struct {
	LineNo int
	Line   string
}

func (err ErrImageSyntax) Error() string {
	return f("line %d '%v' is not an 8-bit binary literal", err.LineNo, err.Line)
}
