package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielpatrickdp/chaos-oracle/internal/oracle"
)

func TestLoadDefaults(t *testing.T) {
	e, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "oracle_history.db", e.DBPath)
	assert.Equal(t, oracle.DefaultConfig(), e.OracleConfig())
	assert.False(t, e.NoColor)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ORACLE_DB", "/tmp/other.db")
	t.Setenv("ORACLE_CHAOS_ITERATIONS", "7")
	t.Setenv("ORACLE_PRIME_TERMS", "3")
	t.Setenv("ORACLE_ZETA_TERMS", "9")
	t.Setenv("ORACLE_NO_COLOR", "true")

	e, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", e.DBPath)
	assert.Equal(t, oracle.Config{ChaosIterations: 7, PrimeTerms: 3, ZetaTerms: 9}, e.OracleConfig())
	assert.True(t, e.NoColor)
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Setenv("ORACLE_CHAOS_ITERATIONS", "lots")

	_, err := Load()
	require.Error(t, err)
}

func TestInvalidEnvValuesFailValidation(t *testing.T) {
	t.Setenv("ORACLE_CHAOS_ITERATIONS", "0")

	e, err := Load()
	require.NoError(t, err)
	assert.Error(t, e.OracleConfig().Validate())
}
