package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/toy-tunnel/pkg/device"
)

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?$`)

// ParseValue reads a number with an optional SPICE scale suffix: "7n", "40f", "-12", "1e-8".
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	// factor
	if matches[2] != "" {
		multiplier, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unknown scale suffix %q in %s", matches[2], val)
		}
		num *= multiplier
	}

	return num, nil
}

// Model units: lengths in nm, capacitances in fF, the rest as written.
const (
	nanometer  = 1e9
	femtofarad = 1e15
)

func paramScale(p device.Param) float64 {
	switch p {
	case device.ParamTunnelOxide, device.ParamControlOxide, device.ParamFloatingGate:
		return nanometer
	}
	return 1
}

func parseScaled(name, val string, scale float64) (float64, error) {
	v, err := ParseValue(val)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v * scale, nil
}
