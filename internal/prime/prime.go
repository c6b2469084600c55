// Package prime folds prime-derived terms into the mix value.
package prime

import (
	"math"

	"github.com/danielpatrickdp/chaos-oracle/internal/chaos"
)

// #region sieve

// FirstN returns the first n primes in ascending order, found by trial
// division against the primes already collected.
func FirstN(n int) []int {
	primes := make([]int, 0, n)
	for candidate := 2; len(primes) < n; candidate++ {
		if isPrime(candidate, primes) {
			primes = append(primes, candidate)
		}
	}
	return primes
}

func isPrime(candidate int, smaller []int) bool {
	for _, p := range smaller {
		if p*p > candidate {
			break
		}
		if candidate%p == 0 {
			return false
		}
	}
	return true
}

// #endregion sieve

// #region harmonic

// HarmonicSum computes Σ sin(x·pₙ)/pₙ over the given primes.
func HarmonicSum(x float64, primes []int) float64 {
	var sum float64
	for _, p := range primes {
		sum += math.Sin(x*float64(p)) / float64(p)
	}
	return sum
}

// SpiralIndex maps x to a valid position over n primes: ⌊x·n⌋ clamped
// to [0, n-1]. This is the indexed-lookup reading of Ulam spiral
// selection.
func SpiralIndex(x float64, n int) int {
	idx := int(math.Floor(x * float64(n)))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// #endregion harmonic

// #region mix

// Mix combines x with the prime harmonic sum and the spiral-selected
// prime: frac(x + Σ sin(x·pₙ)/pₙ + p_sel/1000). This formula is the
// authoritative combination rule for cross-checking implementations.
func Mix(x float64, terms int) float64 {
	primes := FirstN(terms)
	harmonic := HarmonicSum(x, primes)
	selected := primes[SpiralIndex(x, terms)]
	return chaos.Mod1(x + harmonic + float64(selected)/1000.0)
}

// #endregion mix
