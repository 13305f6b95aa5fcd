package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// VitalRecord is one operator-entered set of vital signs submitted for
// scoring. It is sent once per submission and never mutated after send.
type VitalRecord struct {
	Age                    int     `json:"age" validate:"gte=0,lte=130"`
	HeartRate              int     `json:"heart_rate" validate:"gte=0,lte=300"`
	BloodPressureSystolic  float64 `json:"blood_pressure_systolic" validate:"gte=0,lte=400"`
	BloodPressureDiastolic float64 `json:"blood_pressure_diastolic" validate:"gte=0,lte=400"`
	Temperature            float64 `json:"temperature" validate:"gte=20,lte=45"`
	RespiratoryRate        int     `json:"respiratory_rate" validate:"gte=0,lte=100"`
	OxygenSaturation       int     `json:"oxygen_saturation" validate:"gte=0,lte=100"`
	PainLevel              int     `json:"pain_level" validate:"gte=0,lte=10"`
	ChestPain              int     `json:"chest_pain" validate:"gte=0,lte=5"`
	BreathingDifficulty    int     `json:"breathing_difficulty" validate:"gte=0,lte=5"`
	ConsciousnessLevel     int     `json:"consciousness_level" validate:"gte=0,lte=5"`
	BleedingSeverity       int     `json:"bleeding_severity" validate:"gte=0,lte=5"`
}

var vitalsValidator = validator.New()

// fieldLabels maps struct field names to the operator-facing labels used in
// validation messages.
var fieldLabels = map[string]string{
	"Age":                    "age",
	"HeartRate":              "heart rate",
	"BloodPressureSystolic":  "systolic blood pressure",
	"BloodPressureDiastolic": "diastolic blood pressure",
	"Temperature":            "temperature",
	"RespiratoryRate":        "respiratory rate",
	"OxygenSaturation":       "oxygen saturation",
	"PainLevel":              "pain level",
	"ChestPain":              "chest pain severity",
	"BreathingDifficulty":    "breathing difficulty",
	"ConsciousnessLevel":     "consciousness level",
	"BleedingSeverity":       "bleeding severity",
}

// Validate range-checks every field and returns an operator-displayable error
// for the first set of violations found.
func (v VitalRecord) Validate() error {
	err := vitalsValidator.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label := fieldLabels[fe.StructField()]
		if label == "" {
			label = strings.ToLower(fe.StructField())
		}
		switch fe.Tag() {
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", label, fe.Param()))
		case "lte":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", label, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", label))
		}
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

// Presets hold the canned demonstration vitals behind the example buttons.
// Keys match the button labels: critical, high, medium, low.
var Presets = map[string]VitalRecord{
	"critical": {
		Age: 65, HeartRate: 130, BloodPressureSystolic: 190, BloodPressureDiastolic: 110,
		Temperature: 39.5, RespiratoryRate: 30, OxygenSaturation: 85, PainLevel: 9,
		ChestPain: 5, BreathingDifficulty: 4, ConsciousnessLevel: 2, BleedingSeverity: 3,
	},
	"high": {
		Age: 45, HeartRate: 110, BloodPressureSystolic: 160, BloodPressureDiastolic: 95,
		Temperature: 38.5, RespiratoryRate: 25, OxygenSaturation: 92, PainLevel: 7,
		ChestPain: 3, BreathingDifficulty: 3, ConsciousnessLevel: 4, BleedingSeverity: 2,
	},
	"medium": {
		Age: 35, HeartRate: 90, BloodPressureSystolic: 130, BloodPressureDiastolic: 85,
		Temperature: 37.2, RespiratoryRate: 20, OxygenSaturation: 96, PainLevel: 5,
		ChestPain: 2, BreathingDifficulty: 1, ConsciousnessLevel: 5, BleedingSeverity: 1,
	},
	"low": {
		Age: 28, HeartRate: 75, BloodPressureSystolic: 120, BloodPressureDiastolic: 80,
		Temperature: 36.8, RespiratoryRate: 16, OxygenSaturation: 98, PainLevel: 3,
		ChestPain: 1, BreathingDifficulty: 0, ConsciousnessLevel: 5, BleedingSeverity: 0,
	},
}
