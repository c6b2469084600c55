package replay

import (
	"encoding/hex"
	"fmt"

	"github.com/danielpatrickdp/chaos-oracle/internal/entropy"
	"github.com/danielpatrickdp/chaos-oracle/internal/oracle"
)

// #region harness

// Harness runs fixtures through the pipeline with pinned entropy.
type Harness struct{}

// NewHarness creates a replay harness.
func NewHarness() *Harness { return &Harness{} }

// run decides once from the fixture's entropy bytes.
func (h *Harness) run(f Fixture) (oracle.Result, error) {
	raw, err := hex.DecodeString(f.EntropyHex)
	if err != nil {
		return oracle.Result{}, fmt.Errorf("decode entropy hex: %w", err)
	}
	o := oracle.NewWithCollector(entropy.NewFixedCollector(entropy.FixedSample(raw)))
	return o.Decide(f.Config.toConfig())
}

// Record runs the fixture and fills in its expected outcome.
func (h *Harness) Record(f Fixture) (Fixture, error) {
	res, err := h.run(f)
	if err != nil {
		return Fixture{}, err
	}
	f.Expected = &Expected{
		RawValue: res.RawValue,
		Decision: res.Decision,
		Answer:   res.Answer,
	}
	return f, nil
}

// Verify re-runs the fixture and requires a bit-identical outcome.
func (h *Harness) Verify(f Fixture) error {
	if f.Expected == nil {
		return fmt.Errorf("fixture %q has no expected outcome; record it first", f.Description)
	}
	res, err := h.run(f)
	if err != nil {
		return err
	}
	if res.RawValue != f.Expected.RawValue {
		return fmt.Errorf("raw value mismatch: got %v, want %v", res.RawValue, f.Expected.RawValue)
	}
	if res.Decision != f.Expected.Decision {
		return fmt.Errorf("decision mismatch: got %d, want %d", res.Decision, f.Expected.Decision)
	}
	if res.Answer != f.Expected.Answer {
		return fmt.Errorf("answer mismatch: got %q, want %q", res.Answer, f.Expected.Answer)
	}
	return nil
}

// #endregion harness
