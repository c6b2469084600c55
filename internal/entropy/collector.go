// Package entropy gathers the raw randomness a decision is derived
// from. One sample is collected per decision and discarded after seed
// derivation.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"reflect"
	"time"
)

// #region errors

// UnavailableError reports that a system entropy source failed. This is
// fatal for the decision attempt; callers have no retry obligation.
type UnavailableError struct {
	Source string
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("entropy source %s unavailable: %v", e.Source, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// #endregion errors

// #region collector

// Collector produces one entropy sample per decision.
type Collector interface {
	Collect() (Sample, error)
}

// SystemCollector gathers entropy from the operating system: 32 CSPRNG
// bytes, the nanosecond clock, the process id, and the heap address of
// a fresh allocation (an address-space-layout-randomization analogue).
type SystemCollector struct{}

// NewSystemCollector returns the default collector.
func NewSystemCollector() *SystemCollector { return &SystemCollector{} }

// Collect gathers the four fragments in fixed order: csprng, clock,
// pid, addr. Integer fragments are serialized as 8 big-endian bytes.
func (c *SystemCollector) Collect() (Sample, error) {
	csprng := make([]byte, 32)
	if _, err := rand.Read(csprng); err != nil {
		return Sample{}, &UnavailableError{Source: "csprng", Err: err}
	}

	clock := make([]byte, 8)
	binary.BigEndian.PutUint64(clock, uint64(time.Now().UnixNano()))

	pid := make([]byte, 8)
	binary.BigEndian.PutUint64(pid, uint64(os.Getpid()))

	addr := make([]byte, 8)
	binary.BigEndian.PutUint64(addr, uint64(heapAddr()))

	return Sample{Fragments: []Fragment{
		{Kind: KindCSPRNG, Data: csprng},
		{Kind: KindClock, Data: clock},
		{Kind: KindPID, Data: pid},
		{Kind: KindAddr, Data: addr},
	}}, nil
}

// heapAddr allocates a throwaway object and returns its address. The
// value varies per process under address-space randomization; it is an
// entropy garnish, not a security boundary.
func heapAddr() uintptr {
	buf := new([16]byte)
	return reflect.ValueOf(buf).Pointer()
}

// #endregion collector

// #region fixed

// FixedCollector always returns the same sample, so the deterministic
// stages can be exercised with known entropy bytes.
type FixedCollector struct {
	sample Sample
}

// NewFixedCollector wraps a pre-built sample.
func NewFixedCollector(sample Sample) *FixedCollector {
	return &FixedCollector{sample: sample}
}

// Collect returns the fixed sample.
func (c *FixedCollector) Collect() (Sample, error) { return c.sample, nil }

// FixedSample builds a single-fragment sample from raw bytes.
func FixedSample(data []byte) Sample {
	return Sample{Fragments: []Fragment{{Kind: KindCSPRNG, Data: data}}}
}

// #endregion fixed
