package harness

import (
	"testing"

	"github.com/bytelab/searchbench/buffer"
)

// benchSink absorbs work-unit results so the compiler cannot elide the
// benchmarked scan.
var benchSink int

// BenchmarkSearch runs every algorithm over the full scenario x shape
// matrix. One case is set up per combination and reused across the
// algorithm sub-benchmarks, mirroring how the matchers are meant to be
// built once and scanned many times.
func BenchmarkSearch(b *testing.B) {
	for _, combo := range Combinations() {
		combo := combo
		b.Run(combo.String(), func(b *testing.B) {
			c := NewCase(combo.Scenario, combo.Shape)
			if err := c.Setup(); err != nil {
				b.Fatalf("setup %s: %v", combo, err)
			}
			defer c.Teardown()

			for _, alg := range Algorithms() {
				alg := alg
				b.Run(alg.String(), func(b *testing.B) {
					b.SetBytes(int64(c.HaystackLen()))
					b.ReportAllocs()
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						benchSink = c.Run(alg)
					}
				})
			}
		})
	}
}

// BenchmarkMatcherBuild measures per-algorithm matcher construction,
// the one-off cost each case pays at setup.
func BenchmarkMatcherBuild(b *testing.B) {
	for _, sc := range Scenarios() {
		sc := sc
		b.Run(sc.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				c := NewCase(sc, buffer.Heap)
				if err := c.Setup(); err != nil {
					b.Fatalf("setup: %v", err)
				}
				c.Teardown()
			}
		})
	}
}
