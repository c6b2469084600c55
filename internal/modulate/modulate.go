// Package modulate applies the nine-constant deterministic mixing
// pass. The pass reshapes the value; it introduces no entropy.
package modulate

import "github.com/danielpatrickdp/chaos-oracle/internal/chaos"

// The nine constants in application order. The uniform rule is
// multiplicative: v = frac(v·c) for each constant.
var constants = []struct {
	name  string
	value float64
}{
	{"phi", 1.618033988749895},       // golden ratio
	{"e", 2.718281828459045},         // Euler's number
	{"pi", 3.141592653589793},        // circle constant
	{"gamma", 0.5772156649015329},    // Euler-Mascheroni constant
	{"rho", 1.3247179572447460},      // plastic number
	{"delta", 4.669201609102990},     // Feigenbaum bifurcation velocity
	{"alpha", 2.502907875095893},     // Feigenbaum reduction parameter
	{"khinchin", 2.6854520010653064}, // Khinchin's constant
	{"silver", 2.414213562373095},    // silver ratio
}

// #region apply

// Apply folds every constant into v in order.
func Apply(v float64) float64 {
	for _, c := range constants {
		v = chaos.Mod1(v * c.value)
	}
	return v
}

// Names lists the constants in application order.
func Names() []string {
	names := make([]string, len(constants))
	for i, c := range constants {
		names[i] = c.name
	}
	return names
}

// #endregion apply
