// Package transcend folds transcendental-function evaluations into the
// mix value.
package transcend

import (
	"math"

	"github.com/danielpatrickdp/chaos-oracle/internal/chaos"
)

// Weights for the zeta and gamma terms in the fold. Together with the
// formula in Mix they are the authoritative combination rule.
const (
	zetaWeight  = 0.1
	gammaWeight = 0.1
)

// #region zeta

// ZetaPartial computes the Riemann zeta partial sum Σ 1/n^s for
// n = 1..terms.
func ZetaPartial(s float64, terms int) float64 {
	var sum float64
	for n := 1; n <= terms; n++ {
		sum += 1 / math.Pow(float64(n), s)
	}
	return sum
}

// #endregion zeta

// #region trig

// TrigCombo evaluates sin(x·π)·cos(x·e)·tanh(x·φ).
func TrigCombo(x float64) float64 {
	return math.Sin(x*math.Pi) * math.Cos(x*math.E) * math.Tanh(x*math.Phi)
}

// #endregion trig

// #region mix

// Mix folds the three sub-values into x:
// frac(x + 0.1·ζ(2+x) + 0.1·Γ(1+x) + trig). Evaluating zeta at
// s = 2 + x keeps the sum convergent and x-dependent; Γ(1+x) uses the
// stdlib Lanczos approximation, exact over the (0,2] argument range
// produced by x in [0,1).
func Mix(x float64, zetaTerms int) float64 {
	zeta := ZetaPartial(2+x, zetaTerms)
	gamma := math.Gamma(1 + x)
	trig := TrigCombo(x)
	return chaos.Mod1(x + zetaWeight*zeta + gammaWeight*gamma + trig)
}

// #endregion mix
