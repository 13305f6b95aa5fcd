package controller

import (
	"fmt"
	"strconv"
	"strings"

	"triageboard/internal/models"
)

// FormInput carries the raw operator-entered field values exactly as read
// from the entry form. Parsing and range checks happen before any network
// call; unparseable values never reach the gateway.
type FormInput struct {
	Age                    string `form:"age" json:"age"`
	HeartRate              string `form:"heart_rate" json:"heart_rate"`
	BloodPressureSystolic  string `form:"blood_pressure_systolic" json:"blood_pressure_systolic"`
	BloodPressureDiastolic string `form:"blood_pressure_diastolic" json:"blood_pressure_diastolic"`
	Temperature            string `form:"temperature" json:"temperature"`
	RespiratoryRate        string `form:"respiratory_rate" json:"respiratory_rate"`
	OxygenSaturation       string `form:"oxygen_saturation" json:"oxygen_saturation"`
	PainLevel              string `form:"pain_level" json:"pain_level"`
	ChestPain              string `form:"chest_pain" json:"chest_pain"`
	BreathingDifficulty    string `form:"breathing_difficulty" json:"breathing_difficulty"`
	ConsciousnessLevel     string `form:"consciousness_level" json:"consciousness_level"`
	BleedingSeverity       string `form:"bleeding_severity" json:"bleeding_severity"`
}

func parseVitals(in FormInput) (models.VitalRecord, error) {
	var rec models.VitalRecord
	var err error
	if rec.Age, err = parseIntField("age", in.Age); err != nil {
		return rec, err
	}
	if rec.HeartRate, err = parseIntField("heart rate", in.HeartRate); err != nil {
		return rec, err
	}
	if rec.BloodPressureSystolic, err = parseFloatField("systolic blood pressure", in.BloodPressureSystolic); err != nil {
		return rec, err
	}
	if rec.BloodPressureDiastolic, err = parseFloatField("diastolic blood pressure", in.BloodPressureDiastolic); err != nil {
		return rec, err
	}
	if rec.Temperature, err = parseFloatField("temperature", in.Temperature); err != nil {
		return rec, err
	}
	if rec.RespiratoryRate, err = parseIntField("respiratory rate", in.RespiratoryRate); err != nil {
		return rec, err
	}
	if rec.OxygenSaturation, err = parseIntField("oxygen saturation", in.OxygenSaturation); err != nil {
		return rec, err
	}
	if rec.PainLevel, err = parseIntField("pain level", in.PainLevel); err != nil {
		return rec, err
	}
	if rec.ChestPain, err = parseIntField("chest pain severity", in.ChestPain); err != nil {
		return rec, err
	}
	if rec.BreathingDifficulty, err = parseIntField("breathing difficulty", in.BreathingDifficulty); err != nil {
		return rec, err
	}
	if rec.ConsciousnessLevel, err = parseIntField("consciousness level", in.ConsciousnessLevel); err != nil {
		return rec, err
	}
	if rec.BleedingSeverity, err = parseIntField("bleeding severity", in.BleedingSeverity); err != nil {
		return rec, err
	}
	if err := rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}

func parseIntField(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	return v, nil
}

func parseFloatField(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}
