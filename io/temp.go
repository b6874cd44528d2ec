package io

import (
	"fmt"
	"iter"
	"maps"
)

// Temporary is a ring buffer holding the most recently printed values.
// Once full, each Print overwrites the oldest value.
type Temporary struct {
	Capacity int // Capacity in values.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []byte
}

var _ Output = (*Temporary)(nil)

// Rewind empties the buffer.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
	temp.WriteIndex = 0
	temp.Size = 0
	temp.Data = make([]byte, temp.Capacity)
}

// Values returns an iterator over the buffered values, oldest first.
// The buffer is not consumed.
func (temp *Temporary) Values() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		index := temp.ReadIndex
		for range temp.Size {
			if !yield(temp.Data[index]) {
				return
			}
			index++
			if index == temp.Capacity {
				index = 0
			}
		}
	}
}

// Print stores value, dropping the oldest value when full.
func (temp *Temporary) Print(value byte) (err error) {
	if temp.Capacity == 0 {
		return
	}
	if len(temp.Data) != temp.Capacity {
		temp.Rewind()
	}

	temp.Data[temp.WriteIndex] = value

	temp.WriteIndex++
	if temp.WriteIndex == temp.Capacity {
		temp.WriteIndex = 0
	}

	if temp.Size == temp.Capacity {
		temp.ReadIndex = temp.WriteIndex
	} else {
		temp.Size++
	}

	return
}

// Defines returns an iter of defines for the buffer.
func (temp *Temporary) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"HISTORY_SIZE": fmt.Sprintf("%d", temp.Capacity),
	})
}
