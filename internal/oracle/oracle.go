// Package oracle runs the entropy-to-decision pipeline: collected
// entropy is hashed into a seed, mixed through the chaotic, prime,
// transcendental and constant stages, then collapsed to one bit
// against the 0.5 threshold. The mixing stages are deterministic; they
// reshape the input randomness, they do not strengthen it. This is a
// novelty decision generator, not a security primitive.
package oracle

import (
	"github.com/danielpatrickdp/chaos-oracle/internal/chaos"
	"github.com/danielpatrickdp/chaos-oracle/internal/digest"
	"github.com/danielpatrickdp/chaos-oracle/internal/entropy"
	"github.com/danielpatrickdp/chaos-oracle/internal/modulate"
	"github.com/danielpatrickdp/chaos-oracle/internal/prime"
	"github.com/danielpatrickdp/chaos-oracle/internal/transcend"
)

// #region stages

// stage is one deterministic mixing step between seed derivation and
// collapse. Stage order is part of the pipeline contract: two
// implementations agree bit-for-bit only when they run the same stages
// in the same order on the same entropy.
type stage struct {
	name string
	fn   func(cfg Config, x float64) float64
}

// stages lists the mixing steps in execution order.
func stages() []stage {
	return []stage{
		{"chaos_cascade", func(cfg Config, x float64) float64 {
			return chaos.Cascade(x, cfg.ChaosIterations).Value
		}},
		{"prime_mixer", func(cfg Config, x float64) float64 {
			return prime.Mix(x, cfg.PrimeTerms)
		}},
		{"transcendental_mixer", func(cfg Config, x float64) float64 {
			return transcend.Mix(x, cfg.ZetaTerms)
		}},
		{"constant_modulator", func(cfg Config, x float64) float64 {
			return modulate.Apply(x)
		}},
	}
}

// #endregion stages

// #region oracle-struct

// Oracle wires an entropy collector to the mixing pipeline. Decisions
// share no mutable state, so one Oracle may serve concurrent callers.
type Oracle struct {
	collector entropy.Collector
	stages    []stage
}

// New returns an oracle backed by the system entropy collector.
func New() *Oracle {
	return NewWithCollector(entropy.NewSystemCollector())
}

// NewWithCollector injects a collector. A fixed collector makes the
// deterministic stages testable independently of entropy.
func NewWithCollector(c entropy.Collector) *Oracle {
	return &Oracle{collector: c, stages: stages()}
}

// StageNames lists the mixing stages in execution order.
func (o *Oracle) StageNames() []string {
	names := make([]string, len(o.stages))
	for i, st := range o.stages {
		names[i] = st.name
	}
	return names
}

// #endregion oracle-struct

// #region decide

// Decide runs the full pipeline once. Callers receive either a
// complete Result or a typed failure (*ConfigError,
// *entropy.UnavailableError); there is no partial mode.
func (o *Oracle) Decide(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	sample, err := o.collector.Collect()
	if err != nil {
		return Result{}, err
	}

	x := digest.Seed(sample.Bytes())
	for _, st := range o.stages {
		x = st.fn(cfg, x)
	}

	raw, decision := digest.Collapse(x)

	answer := "No"
	if decision == 1 {
		answer = "Yes"
	}

	return Result{
		Decision:        decision,
		Answer:          answer,
		RawValue:        raw,
		EntropySources:  sample.Count(),
		ChaosIterations: cfg.ChaosIterations,
	}, nil
}

// Ask returns only the decision bit.
func (o *Oracle) Ask(cfg Config) (int, error) {
	res, err := o.Decide(cfg)
	if err != nil {
		return 0, err
	}
	return res.Decision, nil
}

// IsYes reports whether a fresh decision came up 1.
func (o *Oracle) IsYes(cfg Config) (bool, error) {
	d, err := o.Ask(cfg)
	if err != nil {
		return false, err
	}
	return d == 1, nil
}

// IsNo reports whether a fresh decision came up 0.
func (o *Oracle) IsNo(cfg Config) (bool, error) {
	d, err := o.Ask(cfg)
	if err != nil {
		return false, err
	}
	return d == 0, nil
}

// #endregion decide
