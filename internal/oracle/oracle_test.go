package oracle

import (
	"bytes"
	"errors"
	"testing"

	"github.com/danielpatrickdp/chaos-oracle/internal/entropy"
)

// countingCollector records how often entropy was drawn and can be
// made to fail.
type countingCollector struct {
	calls int
	fail  bool
}

func (c *countingCollector) Collect() (entropy.Sample, error) {
	c.calls++
	if c.fail {
		return entropy.Sample{}, &entropy.UnavailableError{Source: "csprng", Err: errors.New("exhausted")}
	}
	return entropy.FixedSample(bytes.Repeat([]byte{0}, 32)), nil
}

func zeroOracle() *Oracle {
	return NewWithCollector(entropy.NewFixedCollector(entropy.FixedSample(bytes.Repeat([]byte{0}, 32))))
}

func TestDecideWithFixedEntropyDeterministic(t *testing.T) {
	o := zeroOracle()
	cfg := DefaultConfig()

	a, err := o.Decide(cfg)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	b, err := o.Decide(cfg)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if a != b {
		t.Fatalf("identical entropy and config diverged: %+v vs %+v", a, b)
	}

	if a.Decision != 0 && a.Decision != 1 {
		t.Fatalf("decision %d not a bit", a.Decision)
	}
	if a.RawValue < 0 || a.RawValue >= 1 {
		t.Fatalf("raw value %v out of [0,1)", a.RawValue)
	}
	if a.EntropySources != 1 {
		t.Fatalf("expected 1 entropy fragment, got %d", a.EntropySources)
	}
	if a.ChaosIterations != cfg.ChaosIterations {
		t.Fatalf("expected %d chaos iterations echoed, got %d", cfg.ChaosIterations, a.ChaosIterations)
	}
}

func TestAnswerMirrorsDecision(t *testing.T) {
	o := New()
	for i := 0; i < 50; i++ {
		res, err := o.Decide(DefaultConfig())
		if err != nil {
			t.Fatalf("decide: %v", err)
		}
		switch res.Decision {
		case 1:
			if res.Answer != "Yes" {
				t.Fatalf("decision 1 with answer %q", res.Answer)
			}
		case 0:
			if res.Answer != "No" {
				t.Fatalf("decision 0 with answer %q", res.Answer)
			}
		default:
			t.Fatalf("decision %d not a bit", res.Decision)
		}
	}
}

func TestAskMatchesDecide(t *testing.T) {
	o := zeroOracle()
	cfg := DefaultConfig()

	res, err := o.Decide(cfg)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	d, err := o.Ask(cfg)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if d != res.Decision {
		t.Fatalf("ask returned %d, decide returned %d", d, res.Decision)
	}
}

func TestIsYesIsNoComplementary(t *testing.T) {
	o := zeroOracle()
	cfg := DefaultConfig()

	yes, err := o.IsYes(cfg)
	if err != nil {
		t.Fatalf("isYes: %v", err)
	}
	no, err := o.IsNo(cfg)
	if err != nil {
		t.Fatalf("isNo: %v", err)
	}
	if yes == no {
		t.Fatalf("IsYes and IsNo agree (%v) on fixed entropy", yes)
	}
}

func TestConfigValidationBeforeEntropy(t *testing.T) {
	bad := []Config{
		{ChaosIterations: 0, PrimeTerms: 20, ZetaTerms: 50},
		{ChaosIterations: -1, PrimeTerms: 20, ZetaTerms: 50},
		{ChaosIterations: 100, PrimeTerms: 0, ZetaTerms: 50},
		{ChaosIterations: 100, PrimeTerms: 20, ZetaTerms: -3},
	}
	for _, cfg := range bad {
		c := &countingCollector{}
		o := NewWithCollector(c)
		_, err := o.Decide(cfg)
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("config %+v: expected *ConfigError, got %v", cfg, err)
		}
		if c.calls != 0 {
			t.Fatalf("config %+v: entropy drawn %d times before validation failure", cfg, c.calls)
		}
	}
}

func TestBoundaryConfig(t *testing.T) {
	o := zeroOracle()
	res, err := o.Decide(Config{ChaosIterations: 1, PrimeTerms: 1, ZetaTerms: 1})
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if res.RawValue < 0 || res.RawValue >= 1 {
		t.Fatalf("raw value %v out of [0,1)", res.RawValue)
	}
}

func TestStageOrder(t *testing.T) {
	want := []string{"chaos_cascade", "prime_mixer", "transcendental_mixer", "constant_modulator"}
	got := New().StageNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stage %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ChaosIterations != 100 || cfg.PrimeTerms != 20 || cfg.ZetaTerms != 50 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEntropyFailurePropagates(t *testing.T) {
	o := NewWithCollector(&countingCollector{fail: true})
	_, err := o.Decide(DefaultConfig())
	var uerr *entropy.UnavailableError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *entropy.UnavailableError, got %v", err)
	}
	if uerr.Source != "csprng" {
		t.Fatalf("expected csprng source, got %s", uerr.Source)
	}
}

// TestDecisionDistribution is statistical: over 10000 fresh-entropy
// decisions the yes fraction should land in [0.4, 0.6]. The chance of
// a false failure with a fair bit is far below 1e-80.
func TestDecisionDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10k-decision distribution check in short mode")
	}
	o := New()
	cfg := Config{ChaosIterations: 10, PrimeTerms: 5, ZetaTerms: 5}
	yes := 0
	const runs = 10000
	for i := 0; i < runs; i++ {
		d, err := o.Ask(cfg)
		if err != nil {
			t.Fatalf("ask %d: %v", i, err)
		}
		yes += d
	}
	fraction := float64(yes) / float64(runs)
	if fraction < 0.4 || fraction > 0.6 {
		t.Fatalf("yes fraction %v outside [0.4, 0.6]", fraction)
	}
}
