// Package search provides reusable matcher state for byte-sequence
// search. Each factory precomputes algorithm state from a needle once
// and hands out fresh single-use-per-scan processors compatible with
// the buffer package's per-byte scanning contract.
package search

import "errors"

var (
	// ErrEmptyNeedle is returned by every factory for a zero-length needle.
	ErrEmptyNeedle = errors.New("search: empty needle")
	// ErrNeedleTooLong is returned by NewBitmask for needles over 64 bytes.
	ErrNeedleTooLong = errors.New("search: needle exceeds 64 bytes")
	// ErrNoNeedles is returned by NewAhoCorasick when given no needles.
	ErrNoNeedles = errors.New("search: no needles")
)

// Processor scans one byte at a time. Process returns false to stop
// the scan at the final byte of the first match; Found then reports
// the 0-based offset of that match's first byte, or -1 if the scan
// was exhausted without one. A processor is single-use: one scan, then
// discard.
type Processor interface {
	Process(b byte) bool
	Found() int
}

// Factory builds fresh processors from precomputed needle state. The
// state is immutable after construction, so one factory may serve any
// number of sequential scans.
type Factory interface {
	NewProcessor() Processor
}
