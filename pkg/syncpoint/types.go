// Package syncpoint summarises host/device clock correspondence records.
//
// A sync point ties a host timestamp (nanoseconds) to a device cycle counter
// at a known sync index. The summary reports the observed extent of both
// clocks across a capture.
package syncpoint

import "math/big"

// DefaultFileName is the sync point file read from the working directory.
const DefaultFileName = "syncpoints.txt"

// NanosPerSecond converts host time ticks to seconds.
const NanosPerSecond = 1_000_000_000

// Sentinel is the minimum reported for a Range that observed nothing: 2^64,
// one above the largest value a Range can hold.
func Sentinel() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), 64)
}

// SyncPoint is one "index hostTime devCycle" record. The index takes no part
// in the summary and is kept at whatever width it was written.
type SyncPoint struct {
	Index    *big.Int `json:"index"`
	HostTime uint64   `json:"host_time"`
	DevCycle uint64   `json:"dev_cycle"`
}

// Range tracks the minimum and maximum of a stream of values.
// The zero value is ready to use.
type Range struct {
	min   uint64
	max   uint64
	count int
}

// Observe folds v into the range.
func (r *Range) Observe(v uint64) {
	if r.count == 0 || v < r.min {
		r.min = v
	}
	if v > r.max {
		r.max = v
	}
	r.count++
}

// Count returns the number of observed values.
func (r Range) Count() int {
	return r.count
}

// Min returns the smallest observed value, or Sentinel when empty.
func (r Range) Min() *big.Int {
	if r.count == 0 {
		return Sentinel()
	}
	return new(big.Int).SetUint64(r.min)
}

// Max returns the largest observed value, or zero when empty.
func (r Range) Max() *big.Int {
	return new(big.Int).SetUint64(r.max)
}

// Span returns Max - Min. An empty range yields -2^64.
func (r Range) Span() *big.Int {
	return new(big.Int).Sub(r.Max(), r.Min())
}
