package buffer

// compositeBuffer presents several contiguous segments as one logical
// byte sequence. Segments reference the original raw bytes; nothing is
// copied, but nothing is addressable as a single span either, so every
// access goes through segment lookup.
type compositeBuffer struct {
	segs     [][]byte
	starts   []int // logical offset of each segment's first byte
	length   int
	released bool
}

// NewComposite splits raw into compositeSegments contiguous sub-spans
// (the last one absorbs the remainder) addressed as one logical
// sequence. Raw sequences shorter than the segment count degrade to
// fewer, single-byte segments.
func NewComposite(raw []byte) Buffer {
	segSize := len(raw) / compositeSegments
	if segSize == 0 {
		segSize = 1
	}
	var segs [][]byte
	var starts []int
	for off := 0; off < len(raw); {
		end := off + segSize
		// last segment takes the remainder
		if len(segs) == compositeSegments-1 || end > len(raw) {
			end = len(raw)
		}
		segs = append(segs, raw[off:end])
		starts = append(starts, off)
		off = end
	}
	acquire()
	return &compositeBuffer{segs: segs, starts: starts, length: len(raw)}
}

func (c *compositeBuffer) Len() int { return c.length }

func (c *compositeBuffer) ByteAt(i int) byte {
	if c.released {
		panic(ErrReleased)
	}
	if i < 0 || i >= c.length {
		panic("buffer: index out of range")
	}
	// Segments are near-uniform, so the starting guess lands on or
	// just before the right one.
	seg := i / len(c.segs[0])
	if seg >= len(c.segs) {
		seg = len(c.segs) - 1
	}
	for c.starts[seg] > i {
		seg--
	}
	for c.starts[seg]+len(c.segs[seg]) <= i {
		seg++
	}
	return c.segs[seg][i-c.starts[seg]]
}

func (c *compositeBuffer) ForEachByte(p Processor) int {
	if c.released {
		panic(ErrReleased)
	}
	idx := 0
	for _, seg := range c.segs {
		for _, b := range seg {
			if !p.Process(b) {
				return idx
			}
			idx++
		}
	}
	return -1
}

func (c *compositeBuffer) Release() {
	if c.released {
		return
	}
	c.released = true
	release()
}
