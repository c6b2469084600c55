// Package replay verifies decision reproducibility from recorded
// entropy. A fixture pins entropy bytes and configuration; the
// expected outcome is filled in by a reference run and then verified
// bit-for-bit against later runs and other implementations.
package replay

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/chaos-oracle/internal/oracle"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	EntropyHex  string        `json:"entropy_hex"`
	Config      FixtureConfig `json:"config"`
	Expected    *Expected     `json:"expected,omitempty"`
}

// FixtureConfig mirrors oracle.Config with JSON tags.
type FixtureConfig struct {
	ChaosIterations int `json:"chaos_iterations"`
	PrimeTerms      int `json:"prime_terms"`
	ZetaTerms       int `json:"zeta_terms"`
}

// Expected captures the reference outcome for the fixture.
type Expected struct {
	RawValue float64 `json:"raw_value"`
	Decision int     `json:"decision"`
	Answer   string  `json:"answer"`
}

// #endregion fixture-types

// #region load-save

// Load reads and decodes a fixture file.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	if _, err := hex.DecodeString(f.EntropyHex); err != nil {
		return Fixture{}, fmt.Errorf("decode entropy hex: %w", err)
	}
	return f, nil
}

// Save writes a fixture as indented JSON.
func Save(path string, f Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}

// #endregion load-save

// toConfig converts the JSON mirror into the runtime config.
func (fc FixtureConfig) toConfig() oracle.Config {
	return oracle.Config{
		ChaosIterations: fc.ChaosIterations,
		PrimeTerms:      fc.PrimeTerms,
		ZetaTerms:       fc.ZetaTerms,
	}
}
