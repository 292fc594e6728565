package buffer

// IndexOf is the library's built-in first-occurrence finder: a plain
// quadratic scan through the declared ByteAt contract, valid for every
// shape. It is the reference other search strategies are measured
// against, so it deliberately carries no precomputation.
// Returns the 0-based offset of the first match, or -1.
func IndexOf(haystack, needle Buffer) int {
	n := needle.Len()
	h := haystack.Len()
	if n == 0 {
		return 0
	}
	if n > h {
		return -1
	}
	first := needle.ByteAt(0)
	for i := 0; i <= h-n; i++ {
		if haystack.ByteAt(i) != first {
			continue
		}
		j := 1
		for j < n && haystack.ByteAt(i+j) == needle.ByteAt(j) {
			j++
		}
		if j == n {
			return i
		}
	}
	return -1
}
