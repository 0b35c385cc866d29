package zplane

import (
	"math"
	"testing"
)

func TestDefaultCalibration_Valid(t *testing.T) {
	if err := DefaultCalibration().Validate(); err != nil {
		t.Fatalf("default calibration rejected: %v", err)
	}
}

func TestCalibration_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Calibration)
	}{
		{"negative intensity", func(c *Calibration) { c.Intensity = -0.1 }},
		{"NaN drive", func(c *Calibration) { c.Drive = math.NaN() }},
		{"infinite drive scale", func(c *Calibration) { c.DriveScale = math.Inf(1) }},
		{"negative saturation", func(c *Calibration) { c.Saturation = -1 }},
		{"pole radius at unity", func(c *Calibration) { c.MaxPoleRadius = 1 }},
		{"pole radius above unity", func(c *Calibration) { c.MaxPoleRadius = 1.2 }},
		{"zero placement above one", func(c *Calibration) { c.ZeroPlacement = 1.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := DefaultCalibration()
			tt.mutate(&cal)

			if err := cal.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
