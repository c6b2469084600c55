// Package config loads CLI settings from ORACLE_* environment
// variables. Flags override these values; both funnel through
// oracle.Config.Validate before any decision runs.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/danielpatrickdp/chaos-oracle/internal/oracle"
)

// #region env

// Env is the environment-derived configuration.
type Env struct {
	DBPath          string `env:"ORACLE_DB" envDefault:"oracle_history.db"`
	ChaosIterations int    `env:"ORACLE_CHAOS_ITERATIONS" envDefault:"100"`
	PrimeTerms      int    `env:"ORACLE_PRIME_TERMS" envDefault:"20"`
	ZetaTerms       int    `env:"ORACLE_ZETA_TERMS" envDefault:"50"`
	NoColor         bool   `env:"ORACLE_NO_COLOR" envDefault:"false"`
}

// Load parses the environment.
func Load() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// OracleConfig converts the env values into a pipeline config.
func (e Env) OracleConfig() oracle.Config {
	return oracle.Config{
		ChaosIterations: e.ChaosIterations,
		PrimeTerms:      e.PrimeTerms,
		ZetaTerms:       e.ZetaTerms,
	}
}

// #endregion env
