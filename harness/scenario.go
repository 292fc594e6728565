// Package harness is the measurement core: deterministic corpus
// generation, the scenario x buffer-shape case matrix, and the work
// units the benchmark driver invokes. All randomness flows from one
// fixed-seed source per case so that every run, and every algorithm
// within a run, sees bit-identical input.
package harness

import (
	"fmt"
	"math/rand"
)

// Seed is the fixed seed every case generates its corpus from.
const Seed = 123

// Scenario names one deterministic (needle, haystack) generator.
// Needle must be drawn before Haystack, from the same source, so the
// haystack bytes stay reproducible for scenarios whose needle also
// consumes the stream.
type Scenario int

const (
	// Random256 is a printable-range 256-byte haystack against a
	// short literal needle, generally absent: best-case rejection.
	Random256 Scenario = iota
	// Random2KB is the same needle against a 2 KiB printable-range haystack.
	Random2KB
	// Predictable uses an all-zero needle against a haystack that
	// never contains zero, so partial matches are rare: favors
	// skip-heavy strategies.
	Predictable
	// Unpredictable draws both needle and haystack from a binary
	// alphabet, maximizing partial-match frequency and stressing
	// failure-function backtracking.
	Unpredictable
	// WorstCase is the classic pathological input separating O(n)
	// from O(n*m): a run of one repeated byte with a differing tail,
	// scanned over a haystack of only the repeated byte.
	WorstCase
)

func (s Scenario) String() string {
	switch s {
	case Random256:
		return "random256"
	case Random2KB:
		return "random2kb"
	case Predictable:
		return "predictable"
	case Unpredictable:
		return "unpredictable"
	case WorstCase:
		return "worstcase"
	default:
		return fmt.Sprintf("scenario(%d)", int(s))
	}
}

// Scenarios enumerates every scenario in matrix order.
func Scenarios() []Scenario {
	return []Scenario{Random256, Random2KB, Predictable, Unpredictable, WorstCase}
}

// ParseScenario resolves a scenario by its String name.
func ParseScenario(name string) (Scenario, error) {
	for _, s := range Scenarios() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown scenario %q", name)
}

// Needle generates the scenario's needle bytes from rnd.
func (s Scenario) Needle(rnd *rand.Rand) []byte {
	switch s {
	case Random256, Random2KB:
		return []byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}
	case Predictable:
		return make([]byte, 64) // 00...00
	case Unpredictable:
		return randomBytes(rnd, 64, 0, 1)
	case WorstCase:
		needle := make([]byte, 64)
		for i := range needle {
			needle[i] = 'a'
		}
		needle[len(needle)-1] = 'b'
		return needle
	default:
		panic("harness: unknown scenario")
	}
}

// Haystack generates the scenario's haystack bytes from rnd.
func (s Scenario) Haystack(rnd *rand.Rand) []byte {
	switch s {
	case Random256:
		return randomBytes(rnd, 256, ' ', 127)
	case Random2KB:
		return randomBytes(rnd, 2048, ' ', 127)
	case Predictable:
		return randomBytes(rnd, 2048, 1, 255)
	case Unpredictable:
		return randomBytes(rnd, 2048, 0, 1)
	case WorstCase:
		haystack := make([]byte, 256)
		for i := range haystack {
			haystack[i] = 'a'
		}
		return haystack
	default:
		panic("harness: unknown scenario")
	}
}

// randomBytes fills size bytes with values in [from, to], inclusive.
func randomBytes(rnd *rand.Rand, size, from, to int) []byte {
	bytes := make([]byte, size)
	for i := range bytes {
		bytes[i] = byte(from + rnd.Intn(to-from+1))
	}
	return bytes
}
