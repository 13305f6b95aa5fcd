package models

import (
	"strings"
	"testing"
)

func TestPresetsValidate(t *testing.T) {
	for name, rec := range Presets {
		if err := rec.Validate(); err != nil {
			t.Fatalf("preset %q should be valid, got: %v", name, err)
		}
	}
	if len(Presets) != 4 {
		t.Fatalf("expected the four fixed presets, got %d", len(Presets))
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	rec := Presets["medium"]
	rec.OxygenSaturation = 150
	err := rec.Validate()
	if err == nil {
		t.Fatalf("expected validation error for SpO2 150")
	}
	if !strings.Contains(err.Error(), "oxygen saturation") {
		t.Fatalf("error should name the field, got: %v", err)
	}

	rec = Presets["medium"]
	rec.PainLevel = 11
	if err := rec.Validate(); err == nil || !strings.Contains(err.Error(), "pain level") {
		t.Fatalf("expected pain level violation, got: %v", err)
	}

	rec = Presets["medium"]
	rec.Age = -1
	if err := rec.Validate(); err == nil || !strings.Contains(err.Error(), "age") {
		t.Fatalf("expected age violation, got: %v", err)
	}
}

func TestKnownAlgorithm(t *testing.T) {
	for _, alg := range AlgorithmOrder {
		if !KnownAlgorithm(alg) {
			t.Fatalf("%q should be known", alg)
		}
	}
	if KnownAlgorithm("lottery") {
		t.Fatalf("unexpected algorithm accepted")
	}
}
