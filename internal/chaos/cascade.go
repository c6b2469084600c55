// Package chaos runs the seed through a fixed cycle of chaotic maps.
// The cascade is a pure function of (seed, iteration count); it
// reshapes the seed's distribution but adds no entropy.
package chaos

import "math"

// Map parameters. The logistic r sits at the edge-of-chaos value.
const (
	logisticR = 4.0
	tentMu    = 2.0
	henonA    = 1.4
	gaussEps  = 1e-9
)

// mapFn advances the state by one application of a single map.
type mapFn func(*MixState)

// maps is the fixed application order: one map per iteration,
// round-robin, wrapping.
var maps = []mapFn{
	logisticMap,
	tentMap,
	henonMap,
	sinusoidalMap,
	gaussMap,
	arnoldMap,
}

// #region cascade

// Cascade applies iterations rounds of the map cycle to the seed and
// returns the final state. The value is clamped into [0,1) after every
// map application.
func Cascade(seed float64, iterations int) MixState {
	s := MixState{Value: Mod1(seed)}
	for i := 0; i < iterations; i++ {
		maps[i%len(maps)](&s)
		s.Value = Mod1(s.Value)
		s.Iterations++
	}
	return s
}

// #endregion cascade

// #region maps

func logisticMap(s *MixState) {
	s.Value = logisticR * s.Value * (1 - s.Value)
}

func tentMap(s *MixState) {
	s.Value = tentMu * math.Min(s.Value, 1-s.Value)
}

// henonMap is the 1D-reduced form: the lag is refreshed to the current
// value first and then consumed, so one round collapses to 1 - a·x² + x.
func henonMap(s *MixState) {
	s.Lag = s.Value
	s.Value = 1 - henonA*s.Value*s.Value + s.Lag
}

// sinusoidalMap folds sin(π·x) back into the unit interval with the
// absolute value before the generic clamp.
func sinusoidalMap(s *MixState) {
	s.Value = math.Abs(math.Sin(math.Pi * s.Value))
}

// gaussMap substitutes a small epsilon when the value is exactly zero
// to avoid the 1/x² division fault.
func gaussMap(s *MixState) {
	x := s.Value
	if x == 0 {
		x = gaussEps
	}
	s.Value = math.Exp(-6.2/(x*x)) + x*x
}

// arnoldMap is the 2D cat map over (value, lag), both taken mod 1.
func arnoldMap(s *MixState) {
	x, y := s.Value, s.Lag
	s.Value = Mod1(2*x + y)
	s.Lag = Mod1(x + y)
}

// #endregion maps

// #region clamp

// Mod1 folds v into [0,1). Negative excursions wrap upward; a tiny
// negative remainder can round to exactly 1 after the wrap, which is
// folded back to 0 to keep the half-open interval.
func Mod1(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	if v == 1 {
		v = 0
	}
	return v
}

// #endregion clamp
