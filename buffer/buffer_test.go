package buffer

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector gathers every scanned byte, for transparency checks.
type collector struct {
	got []byte
}

func (c *collector) Process(b byte) bool {
	c.got = append(c.got, b)
	return true
}

// stopAt stops the scan after n bytes.
type stopAt struct {
	n    int
	seen int
}

func (s *stopAt) Process(byte) bool {
	s.seen++
	return s.seen < s.n
}

func randomRaw(t *testing.T, size int) []byte {
	t.Helper()
	raw := make([]byte, size)
	rnd := rand.New(rand.NewSource(42))
	for i := range raw {
		raw[i] = byte(rnd.Intn(256))
	}
	return raw
}

func TestShapeTransparency(t *testing.T) {
	for _, size := range []int{1, 7, 8, 9, 256, 2048, 2051} {
		raw := randomRaw(t, size)
		for _, shape := range Shapes() {
			buf, err := Wrap(raw, shape)
			require.NoError(t, err, "%s size %d", shape, size)

			assert.Equal(t, len(raw), buf.Len(), "%s size %d", shape, size)

			c := &collector{}
			assert.Equal(t, -1, buf.ForEachByte(c), "full scan must exhaust the buffer")
			assert.Equal(t, raw, c.got, "%s size %d: scan order must match logical order", shape, size)

			for i := range raw {
				require.Equal(t, raw[i], buf.ByteAt(i), "%s size %d index %d", shape, size, i)
			}
			buf.Release()
		}
	}
}

func TestWrapRejectsEmpty(t *testing.T) {
	for _, shape := range Shapes() {
		_, err := Wrap(nil, shape)
		assert.Error(t, err, "%s", shape)
	}
}

func TestWrapRejectsUnknownShape(t *testing.T) {
	_, err := Wrap([]byte{1}, Shape(99))
	assert.Error(t, err)
}

func TestWrapDoesNotMutateRaw(t *testing.T) {
	raw := randomRaw(t, 512)
	orig := append([]byte{}, raw...)
	for _, shape := range Shapes() {
		buf, err := Wrap(raw, shape)
		require.NoError(t, err)
		buf.Release()
		assert.Equal(t, orig, raw, "%s must leave the raw bytes untouched", shape)
	}
}

func TestForEachByteStopIndex(t *testing.T) {
	raw := randomRaw(t, 100)
	for _, shape := range Shapes() {
		buf, err := Wrap(raw, shape)
		require.NoError(t, err)
		// stop on the 13th byte: index 12
		assert.Equal(t, 12, buf.ForEachByte(&stopAt{n: 13}), "%s", shape)
		buf.Release()
	}
}

func TestReleaseAccounting(t *testing.T) {
	before := Live()
	var bufs []Buffer
	for _, shape := range Shapes() {
		buf, err := Wrap(randomRaw(t, 64), shape)
		require.NoError(t, err)
		bufs = append(bufs, buf)
	}
	assert.Equal(t, before+3, Live())

	for _, buf := range bufs {
		buf.Release()
	}
	assert.Equal(t, before, Live())

	// release is idempotent, never double-counts
	for _, buf := range bufs {
		buf.Release()
	}
	assert.Equal(t, before, Live())
}

func TestUseAfterReleasePanics(t *testing.T) {
	for _, shape := range Shapes() {
		buf, err := Wrap(randomRaw(t, 32), shape)
		require.NoError(t, err)
		buf.Release()
		assert.PanicsWithValue(t, ErrReleased, func() { buf.ForEachByte(&collector{}) }, "%s", shape)
		assert.PanicsWithValue(t, ErrReleased, func() { buf.ByteAt(0) }, "%s", shape)
	}
}

func TestIndexOfMatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		haystack := make([]byte, 200)
		for i := range haystack {
			haystack[i] = byte('a' + rnd.Intn(4))
		}
		needleLen := 1 + rnd.Intn(6)
		needle := make([]byte, needleLen)
		for i := range needle {
			needle[i] = byte('a' + rnd.Intn(4))
		}
		want := bytes.Index(haystack, needle)

		for _, shape := range Shapes() {
			h, err := Wrap(haystack, shape)
			require.NoError(t, err)
			n, err := Wrap(needle, Heap)
			require.NoError(t, err)
			assert.Equal(t, want, IndexOf(h, n), "shape %s needle %q", shape, needle)
			n.Release()
			h.Release()
		}
	}
}

func TestIndexOfNeedleLongerThanHaystack(t *testing.T) {
	h, err := Wrap([]byte("ab"), Heap)
	require.NoError(t, err)
	defer h.Release()
	n, err := Wrap([]byte("abc"), Heap)
	require.NoError(t, err)
	defer n.Release()
	assert.Equal(t, -1, IndexOf(h, n))
}

func TestCompositeSegmentation(t *testing.T) {
	// 2051 = 8 segments of 256 plus a 3-byte remainder folded into the last
	raw := randomRaw(t, 2051)
	buf := NewComposite(raw)
	defer buf.Release()
	require.Equal(t, 2051, buf.Len())
	assert.Equal(t, raw[2050], buf.ByteAt(2050))
	assert.Equal(t, raw[255], buf.ByteAt(255))
	assert.Equal(t, raw[256], buf.ByteAt(256))

	// shorter than the segment count: single-byte segments
	tiny := NewComposite([]byte{9, 8, 7})
	defer tiny.Release()
	require.Equal(t, 3, tiny.Len())
	assert.Equal(t, byte(7), tiny.ByteAt(2))
}
