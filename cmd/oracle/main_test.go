package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielpatrickdp/chaos-oracle/internal/replay"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// Replay runs on the fixture's embedded config, so pipeline settings
// from the environment must not be able to fail it.
func TestReplayIgnoresPipelineEnv(t *testing.T) {
	t.Setenv("ORACLE_CHAOS_ITERATIONS", "0")

	f := replay.Fixture{
		Description: "env independence",
		EntropyHex:  strings.Repeat("00", 32),
		Config:      replay.FixtureConfig{ChaosIterations: 5, PrimeTerms: 5, ZetaTerms: 5},
	}
	recorded, err := replay.NewHarness().Record(f)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := replay.Save(path, recorded); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := execute(t, "replay", path)
	if err != nil {
		t.Fatalf("replay with out-of-range pipeline env: %v", err)
	}
	if !strings.Contains(out, "fixture verified") {
		t.Fatalf("unexpected replay output %q", out)
	}
}

func TestAskRejectsInvalidEnv(t *testing.T) {
	t.Setenv("ORACLE_CHAOS_ITERATIONS", "0")
	if _, err := execute(t, "ask", "--no-store"); err == nil {
		t.Fatal("ask accepted a zero chaos iteration count")
	}
}
