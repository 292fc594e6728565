package search

// BitmaskFactory implements shifting-bitmask (bitap) search: one
// uint64 mask per byte value, one register of in-flight prefix states.
// Well suited to short needles; the whole state fits in a register, so
// per-byte cost is a shift, an or and two ands regardless of how many
// partial matches are alive.
type BitmaskFactory struct {
	masks   [256]uint64
	length  int
	success uint64
}

// NewBitmask precomputes per-byte-value masks. The needle must be
// 1..64 bytes, one bit of state per needle position.
func NewBitmask(needle []byte) (*BitmaskFactory, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyNeedle
	}
	if len(needle) > 64 {
		return nil, ErrNeedleTooLong
	}
	f := &BitmaskFactory{length: len(needle), success: 1 << (len(needle) - 1)}
	for i, b := range needle {
		f.masks[b] |= 1 << i
	}
	return f, nil
}

func (f *BitmaskFactory) NewProcessor() Processor {
	return &bitmaskProcessor{f: f, found: -1}
}

type bitmaskProcessor struct {
	f     *BitmaskFactory
	state uint64
	pos   int
	found int
}

func (p *bitmaskProcessor) Process(b byte) bool {
	i := p.pos
	p.pos++
	// bit k survives iff needle[0..k] matches the input ending here
	p.state = ((p.state << 1) | 1) & p.f.masks[b]
	if p.state&p.f.success != 0 {
		p.found = i - p.f.length + 1
		return false
	}
	return true
}

func (p *bitmaskProcessor) Found() int { return p.found }
