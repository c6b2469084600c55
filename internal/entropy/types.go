package entropy

// #region fragment

// Kind identifies the source of an entropy fragment.
type Kind string

const (
	KindCSPRNG Kind = "csprng" // system cryptographic random source
	KindClock  Kind = "clock"  // nanosecond wall-clock timestamp
	KindPID    Kind = "pid"    // process identifier
	KindAddr   Kind = "addr"   // heap address of a fresh allocation
)

// Fragment is one tagged piece of raw entropy.
type Fragment struct {
	Kind Kind
	Data []byte
}

// #endregion fragment

// #region sample

// Sample is an ordered sequence of entropy fragments. Fragments are
// concatenated in slice order, so seed derivation is reproducible given
// identical fragment values.
type Sample struct {
	Fragments []Fragment
}

// Bytes concatenates all fragment data in order.
func (s Sample) Bytes() []byte {
	var n int
	for _, f := range s.Fragments {
		n += len(f.Data)
	}
	out := make([]byte, 0, n)
	for _, f := range s.Fragments {
		out = append(out, f.Data...)
	}
	return out
}

// Count returns the number of distinct fragments in the sample.
func (s Sample) Count() int {
	return len(s.Fragments)
}

// #endregion sample
