package search

// KMPFactory holds the precomputed longest-proper-prefix table for the
// Knuth-Morris-Pratt algorithm: linear scan time, never re-reads input,
// so it behaves identically on segmented buffers.
type KMPFactory struct {
	needle []byte
	lps    []int
}

// NewKMP precomputes the partial-match table from needle. The needle
// bytes are copied; the caller's slice is not retained.
func NewKMP(needle []byte) (*KMPFactory, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyNeedle
	}
	n := make([]byte, len(needle))
	copy(n, needle)

	lps := make([]int, len(n))
	k := 0
	for i := 1; i < len(n); i++ {
		for k > 0 && n[k] != n[i] {
			k = lps[k-1]
		}
		if n[k] == n[i] {
			k++
		}
		lps[i] = k
	}
	return &KMPFactory{needle: n, lps: lps}, nil
}

func (f *KMPFactory) NewProcessor() Processor {
	return &kmpProcessor{f: f, found: -1}
}

type kmpProcessor struct {
	f     *KMPFactory
	state int
	pos   int
	found int
}

func (p *kmpProcessor) Process(b byte) bool {
	i := p.pos
	p.pos++
	for p.state > 0 && p.f.needle[p.state] != b {
		p.state = p.f.lps[p.state-1]
	}
	if p.f.needle[p.state] == b {
		p.state++
	}
	if p.state == len(p.f.needle) {
		p.found = i - len(p.f.needle) + 1
		return false
	}
	return true
}

func (p *kmpProcessor) Found() int { return p.found }
