// Package buffer provides a uniform byte-buffer contract over several
// physical memory layouts: plain heap slices, composite (segmented)
// storage, and mlocked off-GC-heap allocations. All layouts expose the
// same logical byte sequence; only addressing cost differs.
package buffer

import (
	"errors"
	"fmt"
)

// Processor consumes one byte per call during a scan.
// Return true to continue, false to stop at the current byte.
type Processor interface {
	Process(b byte) bool
}

// Buffer is the logical byte-sequence contract shared by all shapes.
// ForEachByte returns the index at which the processor stopped, or -1
// if it consumed the whole buffer. Release must be called exactly once
// per buffer on every exit path; extra calls are no-ops.
type Buffer interface {
	Len() int
	ByteAt(i int) byte
	ForEachByte(p Processor) int
	Release()
}

// ErrReleased is the panic value when a released buffer is scanned.
var ErrReleased = errors.New("buffer: use after release")

// Shape selects the physical layout a raw byte sequence is wrapped into.
type Shape int

const (
	// Heap wraps the raw bytes in place, one contiguous span.
	Heap Shape = iota
	// Composite splits the raw bytes into 8 contiguous segments with
	// transparent logical addressing across the gaps.
	Composite
	// Mlocked copies the raw bytes into a page-locked allocation
	// outside the Go heap; requires explicit release.
	Mlocked
)

// compositeSegments is the fixed segment count for the Composite shape.
const compositeSegments = 8

func (s Shape) String() string {
	switch s {
	case Heap:
		return "heap"
	case Composite:
		return "composite"
	case Mlocked:
		return "mlocked"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Shapes enumerates every supported shape.
func Shapes() []Shape {
	return []Shape{Heap, Composite, Mlocked}
}

// Wrap builds a buffer of the given shape over raw. The raw slice is
// never mutated; for the Heap and Composite shapes it backs the buffer
// directly, for Mlocked its content is copied out.
func Wrap(raw []byte, s Shape) (Buffer, error) {
	if len(raw) == 0 {
		return nil, errors.New("buffer: cannot wrap empty byte sequence")
	}
	switch s {
	case Heap:
		return NewHeap(raw), nil
	case Composite:
		return NewComposite(raw), nil
	case Mlocked:
		return NewMlocked(raw)
	default:
		return nil, fmt.Errorf("buffer: unknown shape %d", int(s))
	}
}

// heapBuffer is a single span over caller-owned bytes.
type heapBuffer struct {
	data     []byte
	released bool
}

// NewHeap wraps raw in place as one contiguous span.
func NewHeap(raw []byte) Buffer {
	acquire()
	return &heapBuffer{data: raw}
}

func (h *heapBuffer) Len() int { return len(h.data) }

func (h *heapBuffer) ByteAt(i int) byte {
	if h.released {
		panic(ErrReleased)
	}
	return h.data[i]
}

func (h *heapBuffer) ForEachByte(p Processor) int {
	if h.released {
		panic(ErrReleased)
	}
	for i, b := range h.data {
		if !p.Process(b) {
			return i
		}
	}
	return -1
}

func (h *heapBuffer) Release() {
	if h.released {
		return
	}
	h.released = true
	release()
}
