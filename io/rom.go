package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"maps"
	"strconv"
	"strings"
)

const (
	ROM_SIZE      = 256 // Largest image that fits in memory.
	IMAGE_COMMENT = "#" // Starts a comment in an image file.
)

// Rom is a program image, in the line oriented format of .ls8 files:
//
//	10000010 # LDI R0,8
//	00000000
//	00001000
//
// One byte per line as an 8-digit binary literal. Text after '#' is a
// comment, and blank lines are ignored.
type Rom struct {
	Data  []byte
	Notes []string // Optional per-byte comments, written by WriteTo.
}

// Defines returns an iter of defines for the rom.
func (rc *Rom) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"ROM_SIZE": fmt.Sprintf("%d", ROM_SIZE),
	})
}

// Reset clears the image.
func (rc *Rom) Reset() {
	rc.Data = nil
	rc.Notes = nil
}

// Bytes returns an iterator over the address and value of each byte.
func (rc *Rom) Bytes() iter.Seq2[int, byte] {
	return func(yield func(address int, value byte) bool) {
		for address, value := range rc.Data {
			if !yield(address, value) {
				return
			}
		}
	}
}

// ReadFrom replaces the image with one parsed from r.
func (rc *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	rc.Reset()

	scanner := bufio.NewScanner(r)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		n += int64(len(text)) + 1
		lineno++

		line, _, _ := strings.Cut(text, IMAGE_COMMENT)
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if len(line) != 8 {
			err = ErrImageSyntax{LineNo: lineno, Line: text}
			return
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrImageSyntax{LineNo: lineno, Line: text}
			return
		}

		if len(rc.Data) == ROM_SIZE {
			err = ErrImageSize
			return
		}

		rc.Data = append(rc.Data, byte(value))
	}

	err = scanner.Err()
	return
}

// WriteTo writes the image in .ls8 format.
func (rc *Rom) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)

	for address, value := range rc.Bytes() {
		line := fmt.Sprintf("%08b", value)
		if address < len(rc.Notes) && len(rc.Notes[address]) != 0 {
			line += " " + IMAGE_COMMENT + " " + rc.Notes[address]
		}
		var wrote int
		wrote, err = fmt.Fprintln(bw, line)
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}
