package harness

import (
	"fmt"

	"github.com/bytelab/searchbench/buffer"
)

// Algorithm names one work unit. The set is closed and known at build
// time; selection is explicit dispatch, not discovery.
type Algorithm int

const (
	// AlgIndexOf is the buffer library's built-in finder, the
	// no-precomputation baseline.
	AlgIndexOf Algorithm = iota
	// AlgKMP is failure-function (partial-match table) search.
	AlgKMP
	// AlgBitmask is shifting-bitmask search for needles up to 64 bytes.
	AlgBitmask
	// AlgAhoCorasick is the multi-pattern automaton, run here with one
	// needle.
	AlgAhoCorasick
)

func (a Algorithm) String() string {
	switch a {
	case AlgIndexOf:
		return "indexof"
	case AlgKMP:
		return "kmp"
	case AlgBitmask:
		return "bitmask"
	case AlgAhoCorasick:
		return "ahocorasick"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Algorithms enumerates every work unit in benchmark order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgIndexOf, AlgKMP, AlgBitmask, AlgAhoCorasick}
}

// ParseAlgorithm resolves an algorithm by its String name.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

// ParseShape resolves a buffer shape by its String name.
func ParseShape(name string) (buffer.Shape, error) {
	for _, s := range buffer.Shapes() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Combination is one cell of the scenario x shape matrix.
type Combination struct {
	Scenario Scenario
	Shape    buffer.Shape
}

func (c Combination) String() string {
	return c.Scenario.String() + "/" + c.Shape.String()
}

// Combinations returns the full cross product, scenarios outermost.
func Combinations() []Combination {
	var combos []Combination
	for _, sc := range Scenarios() {
		for _, sh := range buffer.Shapes() {
			combos = append(combos, Combination{Scenario: sc, Shape: sh})
		}
	}
	return combos
}
