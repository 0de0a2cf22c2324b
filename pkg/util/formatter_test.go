package util

import "testing"

func TestFormatValueFactor(t *testing.T) {
	tests := []struct {
		value    float64
		unit     string
		expected string
	}{
		{-12, "V", "-12.000 V"},
		{20e-9, "m", "20.000 nm"},
		{40e-15, "F", "40.000 fF"},
		{0, "V", "0.000 V"},
		{1e-20, "F", "1.000e-20 F"},
	}
	for _, tt := range tests {
		if got := FormatValueFactor(tt.value, tt.unit); got != tt.expected {
			t.Errorf("FormatValueFactor(%g, %q) = %q, expected %q", tt.value, tt.unit, got, tt.expected)
		}
	}
}

func TestFormatViabilityRow(t *testing.T) {
	marks := []string{
		FormatThreshold("Max thickness", 7.909, "nm", true),
		FormatThreshold("Min voltage", 0, "V", false),
		FormatThreshold("Min capacitance ratio", 2.0, "", true),
	}
	expected := "E=0.3eV: Max thickness=7.9nm | Min voltage=N/A | Min capacitance ratio=2.0"
	if got := FormatViabilityRow(0.3, marks); got != expected {
		t.Errorf("got %q\nexpected %q", got, expected)
	}
}

func TestFormatCoefficient(t *testing.T) {
	if got := FormatCoefficient(1e-300); got != "1.000e-300" {
		t.Errorf("FormatCoefficient(1e-300) = %q", got)
	}
	if got := FormatCoefficient(0.5); got != "5.000e-01" {
		t.Errorf("FormatCoefficient(0.5) = %q", got)
	}
}
