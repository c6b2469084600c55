package oracle

import "fmt"

// #region config

// Config bounds the three loop stages. Treated as immutable once
// validated.
type Config struct {
	ChaosIterations int // chaos-cascade rounds, >= 1
	PrimeTerms      int // primes in the harmonic sum, >= 1
	ZetaTerms       int // terms in the zeta partial sum, >= 1
}

// DefaultConfig returns the standard bounds.
func DefaultConfig() Config {
	return Config{
		ChaosIterations: 100,
		PrimeTerms:      20,
		ZetaTerms:       50,
	}
}

// Validate rejects non-positive bounds. It runs before any entropy is
// drawn, never mid-pipeline.
func (c Config) Validate() error {
	if c.ChaosIterations < 1 {
		return &ConfigError{Field: "chaos_iterations", Value: c.ChaosIterations}
	}
	if c.PrimeTerms < 1 {
		return &ConfigError{Field: "prime_terms", Value: c.PrimeTerms}
	}
	if c.ZetaTerms < 1 {
		return &ConfigError{Field: "zeta_terms", Value: c.ZetaTerms}
	}
	return nil
}

// #endregion config

// #region config-error

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field %s must be >= 1, got %d", e.Field, e.Value)
}

// #endregion config-error
