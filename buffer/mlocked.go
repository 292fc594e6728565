package buffer

import (
	"fmt"

	"github.com/awnumar/memguard"
)

// mlockedBuffer stores its content in a memguard LockedBuffer: page
// aligned, mlocked, outside the Go heap. Content is byte-identical to
// the wrapped raw sequence but reached through a different allocation
// path, and the pages must be destroyed explicitly.
type mlockedBuffer struct {
	lb       *memguard.LockedBuffer
	size     int
	released bool
}

// NewMlocked copies raw into a fresh page-locked allocation. The
// caller's slice is left untouched. Fails if the system's mlock limit
// is exhausted.
func NewMlocked(raw []byte) (Buffer, error) {
	lb := memguard.NewBuffer(len(raw))
	if !lb.IsAlive() {
		return nil, fmt.Errorf("buffer: mlocked allocation of %d bytes failed", len(raw))
	}
	copy(lb.Bytes(), raw)
	acquire()
	return &mlockedBuffer{lb: lb, size: len(raw)}, nil
}

func (m *mlockedBuffer) Len() int { return m.size }

func (m *mlockedBuffer) ByteAt(i int) byte {
	if m.released {
		panic(ErrReleased)
	}
	return m.lb.Bytes()[i]
}

func (m *mlockedBuffer) ForEachByte(p Processor) int {
	if m.released {
		panic(ErrReleased)
	}
	for i, b := range m.lb.Bytes() {
		if !p.Process(b) {
			return i
		}
	}
	return -1
}

// Release wipes and unmaps the locked pages. Idempotent.
func (m *mlockedBuffer) Release() {
	if m.released {
		return
	}
	m.released = true
	m.lb.Destroy()
	release()
}
