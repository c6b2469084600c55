package replay

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestCheckedInFixtureVerifies replays the shipped fixture against its
// committed reference outcome. Any change to the pipeline's combination
// rules or constants shows up here as a bit-level mismatch.
func TestCheckedInFixtureVerifies(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "zero_entropy.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Expected == nil {
		t.Fatal("checked-in fixture lost its expected outcome")
	}
	if f.Expected.RawValue != 0.3826655324585154 {
		t.Fatalf("checked-in raw value drifted: %v", f.Expected.RawValue)
	}
	if err := NewHarness().Verify(f); err != nil {
		t.Fatalf("verify checked-in fixture: %v", err)
	}
}

func TestRecordThenVerify(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "zero_entropy.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f.Expected = nil

	h := NewHarness()
	recorded, err := h.Record(f)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if recorded.Expected == nil {
		t.Fatal("record did not fill in the expected outcome")
	}
	if recorded.Expected.RawValue < 0 || recorded.Expected.RawValue >= 1 {
		t.Fatalf("recorded raw value %v out of [0,1)", recorded.Expected.RawValue)
	}

	if err := h.Verify(recorded); err != nil {
		t.Fatalf("verify after record: %v", err)
	}
}

func TestFixtureRoundTrip(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "zero_entropy.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	h := NewHarness()
	recorded, err := h.Record(f)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := Save(path, recorded); err != nil {
		t.Fatalf("save: %v", err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	// JSON float encoding round-trips float64 exactly, so the reloaded
	// fixture must still verify bit-for-bit.
	if err := h.Verify(reloaded); err != nil {
		t.Fatalf("verify after round trip: %v", err)
	}
	if reloaded.Expected.RawValue != recorded.Expected.RawValue {
		t.Fatalf("raw value changed in round trip: %v vs %v",
			reloaded.Expected.RawValue, recorded.Expected.RawValue)
	}
}

func TestVerifyWithoutExpected(t *testing.T) {
	f := Fixture{Description: "bare", EntropyHex: "00"}
	err := NewHarness().Verify(f)
	if err == nil || !strings.Contains(err.Error(), "no expected outcome") {
		t.Fatalf("expected missing-outcome error, got %v", err)
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "zero_entropy.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	recorded, err := NewHarness().Record(f)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	recorded.Expected.Decision = 1 - recorded.Expected.Decision
	recorded.Expected.RawValue = 1 - recorded.Expected.RawValue
	if err := NewHarness().Verify(recorded); err == nil {
		t.Fatal("verify accepted a corrupted expectation")
	}
}

func TestLoadRejectsBadHex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := Save(path, Fixture{EntropyHex: "not-hex"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("load accepted invalid entropy hex")
	}
}
