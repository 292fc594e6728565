package harness

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/bytelab/searchbench/buffer"
	"github.com/bytelab/searchbench/search"
)

// Setup-phase failure classes. Each aborts the case before any work
// unit runs; no partial results are ever reported for a failed case.
var (
	ErrGeneration          = errors.New("harness: corpus generation failed")
	ErrBufferConstruction  = errors.New("harness: buffer construction failed")
	ErrMatcherConstruction = errors.New("harness: matcher construction failed")
)

type caseState int

const (
	stateNew caseState = iota
	stateReady
	stateReleased
)

// Case is one fully configured (scenario, shape) measurement unit. It
// exclusively owns its generated bytes, its buffers and its matcher
// factories; nothing is shared across cases. Lifecycle: NewCase ->
// Setup -> work units -> Teardown. Teardown is safe on every path,
// including after a failed Setup, and is idempotent.
type Case struct {
	Scenario Scenario
	Shape    buffer.Shape

	needleBytes   []byte
	haystackBytes []byte
	needle        buffer.Buffer
	haystack      buffer.Buffer

	kmp     *search.KMPFactory
	bitmask *search.BitmaskFactory
	aho     *search.AhoCorasickFactory

	state caseState
}

// NewCase pairs a scenario with a haystack shape. The needle buffer is
// always heap-shaped; only the haystack layout varies across the matrix.
func NewCase(scenario Scenario, shape buffer.Shape) *Case {
	return &Case{Scenario: scenario, Shape: shape}
}

// Setup generates the corpus from a fresh seeded source, wraps both
// buffers and builds one matcher per algorithm. On any failure it
// releases whatever was already acquired and returns an error wrapping
// the matching failure class.
func (c *Case) Setup() error {
	if c.state != stateNew {
		return fmt.Errorf("harness: setup of %s case", c.stateName())
	}

	rnd := rand.New(rand.NewSource(Seed))
	c.needleBytes = c.Scenario.Needle(rnd)
	c.haystackBytes = c.Scenario.Haystack(rnd)
	if len(c.needleBytes) == 0 || len(c.haystackBytes) == 0 {
		return fmt.Errorf("%w: scenario %s produced an empty sequence", ErrGeneration, c.Scenario)
	}

	var err error
	c.needle, err = buffer.Wrap(c.needleBytes, buffer.Heap)
	if err != nil {
		return fmt.Errorf("%w: needle: %v", ErrBufferConstruction, err)
	}
	c.haystack, err = buffer.Wrap(c.haystackBytes, c.Shape)
	if err != nil {
		c.releaseBuffers()
		return fmt.Errorf("%w: haystack shape %s: %v", ErrBufferConstruction, c.Shape, err)
	}

	if c.kmp, err = search.NewKMP(c.needleBytes); err == nil {
		if c.bitmask, err = search.NewBitmask(c.needleBytes); err == nil {
			c.aho, err = search.NewAhoCorasick(c.needleBytes)
		}
	}
	if err != nil {
		c.releaseBuffers()
		return fmt.Errorf("%w: %v", ErrMatcherConstruction, err)
	}

	c.state = stateReady
	return nil
}

// Teardown releases the case's buffer resources. Required on every
// exit path; extra calls are no-ops.
func (c *Case) Teardown() {
	if c.state == stateReleased {
		return
	}
	c.releaseBuffers()
	c.state = stateReleased
}

func (c *Case) releaseBuffers() {
	if c.needle != nil {
		c.needle.Release()
		c.needle = nil
	}
	if c.haystack != nil {
		c.haystack.Release()
		c.haystack = nil
	}
}

func (c *Case) stateName() string {
	switch c.state {
	case stateReady:
		return "ready"
	case stateReleased:
		return "released"
	default:
		return "uninitialized"
	}
}

// HaystackLen reports the haystack size, for throughput accounting.
func (c *Case) HaystackLen() int { return len(c.haystackBytes) }

// NeedleLen reports the needle size.
func (c *Case) NeedleLen() int { return len(c.needleBytes) }

func (c *Case) mustReady() {
	if c.state != stateReady {
		panic("harness: work unit invoked on " + c.stateName() + " case")
	}
}

// scan runs one full pass over the haystack through the buffer's
// per-byte contract and reports the first-match start offset, or -1.
func (c *Case) scan(f search.Factory) int {
	p := f.NewProcessor()
	if c.haystack.ForEachByte(p) < 0 {
		return -1
	}
	return p.Found()
}

// RunIndexOf is the baseline work unit: the buffer library's built-in
// finder, no precomputed matcher state.
func (c *Case) RunIndexOf() int {
	c.mustReady()
	return buffer.IndexOf(c.haystack, c.needle)
}

// RunKMP scans with the failure-function matcher.
func (c *Case) RunKMP() int {
	c.mustReady()
	return c.scan(c.kmp)
}

// RunBitmask scans with the shifting-bitmask matcher.
func (c *Case) RunBitmask() int {
	c.mustReady()
	return c.scan(c.bitmask)
}

// RunAhoCorasick scans with the multi-pattern automaton, here carrying
// a single needle.
func (c *Case) RunAhoCorasick() int {
	c.mustReady()
	return c.scan(c.aho)
}

// Run dispatches to the named algorithm's work unit.
func (c *Case) Run(alg Algorithm) int {
	switch alg {
	case AlgIndexOf:
		return c.RunIndexOf()
	case AlgKMP:
		return c.RunKMP()
	case AlgBitmask:
		return c.RunBitmask()
	case AlgAhoCorasick:
		return c.RunAhoCorasick()
	default:
		panic("harness: unknown algorithm")
	}
}
