package buffer

import "sync/atomic"

// Global allocation accounting. Every wrap increments acquired, every
// first Release increments released, so Live reports outstanding
// handles. Tests use this to verify that teardown balances on every
// exit path, including failed setups.
var (
	acquired atomic.Int64
	released atomic.Int64
)

func acquire() { acquired.Add(1) }
func release() { released.Add(1) }

// Stats returns the cumulative acquired and released handle counts.
func Stats() (int64, int64) {
	return acquired.Load(), released.Load()
}

// Live returns the number of currently unreleased buffer handles.
func Live() int64 {
	return acquired.Load() - released.Load()
}
