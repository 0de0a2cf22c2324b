package util

import (
	"fmt"
	"math"
	"strings"
)

const NotAvailable = "N/A"

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue == 0:
		return fmt.Sprintf("0.000 %s", unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	case absValue >= 1e-15:
		return fmt.Sprintf("%.3f f%s", value*1e15, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatCoefficient prints a transmission coefficient, e.g. "1.234e-08".
func FormatCoefficient(t float64) string {
	return fmt.Sprintf("%9.3e", t)
}

// FormatThreshold prints one threshold mark, e.g. "Max thickness=7.9nm".
func FormatThreshold(label string, value float64, unit string, found bool) string {
	if !found {
		return fmt.Sprintf("%s=%s", label, NotAvailable)
	}
	return fmt.Sprintf("%s=%.1f%s", label, value, unit)
}

// FormatViabilityRow joins the marks of one energy level:
// "E=0.3eV: Max thickness=7.9nm | Min voltage=N/A".
func FormatViabilityRow(energy float64, marks []string) string {
	return fmt.Sprintf("E=%geV: %s", energy, strings.Join(marks, " | "))
}

func FormatSweepValue(value float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%8.3f", value)
	}
	return fmt.Sprintf("%8.3f %s", value, unit)
}
