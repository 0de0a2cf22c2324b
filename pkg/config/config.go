package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/edp1096/toy-tunnel/pkg/analysis"
	"github.com/edp1096/toy-tunnel/pkg/device"
)

// Config describes every study the CLI can run. Lengths and capacitances are
// written in SI with an optional scale suffix ("20n", "40f").
type Config struct {
	Stack     StackConfig     `toml:"stack"`
	Erase     RegimeConfig    `toml:"erase"`
	Program   RegimeConfig    `toml:"program"`
	Retention RegimeConfig    `toml:"retention"`
	Reference ReferenceConfig `toml:"reference"`
	Output    OutputConfig    `toml:"output"`
}

type StackConfig struct {
	TunnelOxide   string `toml:"tox"`
	ControlOxide  string `toml:"tcox"`
	FloatingGate  string `toml:"tfg"`
	ControlCap    string `toml:"cc"`
	TunnelCap     string `toml:"ct"`
	BarrierHeight string `toml:"phib"` // eV
	MassRatio     string `toml:"mratio"`
}

type RegimeConfig struct {
	Voltage   string        `toml:"voltage"`
	Energies  []float64     `toml:"energies"` // eV
	Threshold float64       `toml:"threshold"`
	Sweeps    []SweepConfig `toml:"sweep"`
}

type SweepConfig struct {
	Param     string `toml:"param"`
	Start     string `toml:"start"`
	Stop      string `toml:"stop"`
	Points    int    `toml:"points"`
	Direction string `toml:"direction"` // "first" or "last"
}

// ReferenceConfig sets up the finite-difference cross-check of the retention model.
type ReferenceConfig struct {
	Lead string `toml:"lead"` // lead material kept on each side
	Step string `toml:"step"` // grid step
}

type OutputConfig struct {
	XLSX string `toml:"xlsx"` // "" disables the writer
	TSV  string `toml:"tsv"`
	PNG  string `toml:"png"`
	HTML string `toml:"html"`
}

func DefaultConfig() Config {
	return Config{
		Stack: StackConfig{
			TunnelOxide:   "20n",
			ControlOxide:  "40n",
			FloatingGate:  "10n",
			ControlCap:    "40f",
			TunnelCap:     "20f",
			BarrierHeight: "3.2",
			MassRatio:     "0.42",
		},
		Erase: RegimeConfig{
			Voltage:   "-12",
			Energies:  []float64{0, 0.3, 0.6},
			Threshold: 1e-8,
			Sweeps: []SweepConfig{
				{Param: "tox", Start: "7n", Stop: "25n", Points: 100, Direction: "last"},
				{Param: "vg", Start: "-5", Stop: "-25", Points: 100, Direction: "first"},
				{Param: "cratio", Start: "2", Stop: "8", Points: 100, Direction: "first"},
			},
		},
		Program: RegimeConfig{
			Voltage:   "12",
			Energies:  []float64{0, 0.3, 0.6},
			Threshold: 1e-6,
			Sweeps: []SweepConfig{
				{Param: "tox", Start: "7n", Stop: "25n", Points: 100, Direction: "last"},
				{Param: "vg", Start: "5", Stop: "25", Points: 100, Direction: "first"},
				{Param: "cratio", Start: "2", Stop: "8", Points: 100, Direction: "first"},
			},
		},
		Retention: RegimeConfig{
			Voltage:   "0",
			Energies:  []float64{1.0},
			Threshold: 1e-8,
			Sweeps: []SweepConfig{
				{Param: "tox", Start: "7n", Stop: "25n", Points: 200, Direction: "last"},
				{Param: "energy", Start: "0.1", Stop: "3.04", Points: 200, Direction: "first"},
				{Param: "tfg", Start: "5n", Stop: "30n", Points: 200, Direction: "first"},
			},
		},
		Reference: ReferenceConfig{
			Lead: "1n",
			Step: "0.01n",
		},
	}
}

// Load decodes a TOML file. Keys missing from the file keep their defaults;
// unknown keys are an error.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults(DefaultConfig())
	return cfg, nil
}

func (c *Config) applyDefaults(def Config) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Stack.TunnelOxide, def.Stack.TunnelOxide)
	fill(&c.Stack.ControlOxide, def.Stack.ControlOxide)
	fill(&c.Stack.FloatingGate, def.Stack.FloatingGate)
	fill(&c.Stack.ControlCap, def.Stack.ControlCap)
	fill(&c.Stack.TunnelCap, def.Stack.TunnelCap)
	fill(&c.Stack.BarrierHeight, def.Stack.BarrierHeight)
	fill(&c.Stack.MassRatio, def.Stack.MassRatio)

	regimes := []struct{ dst, src *RegimeConfig }{
		{&c.Erase, &def.Erase},
		{&c.Program, &def.Program},
		{&c.Retention, &def.Retention},
	}
	for _, r := range regimes {
		fill(&r.dst.Voltage, r.src.Voltage)
		if len(r.dst.Energies) == 0 {
			r.dst.Energies = r.src.Energies
		}
		if r.dst.Threshold == 0 {
			r.dst.Threshold = r.src.Threshold
		}
		if len(r.dst.Sweeps) == 0 {
			r.dst.Sweeps = r.src.Sweeps
		}
	}

	fill(&c.Reference.Lead, def.Reference.Lead)
	fill(&c.Reference.Step, def.Reference.Step)
}

// BaseStack converts the stack section to model units.
func (c Config) BaseStack() (device.Stack, error) {
	sc := c.Stack

	var s device.Stack
	var err error
	if s.TunnelOxide, err = parseScaled("stack.tox", sc.TunnelOxide, nanometer); err != nil {
		return s, err
	}
	if s.ControlOxide, err = parseScaled("stack.tcox", sc.ControlOxide, nanometer); err != nil {
		return s, err
	}
	if s.FloatingGate, err = parseScaled("stack.tfg", sc.FloatingGate, nanometer); err != nil {
		return s, err
	}
	if s.ControlCap, err = parseScaled("stack.cc", sc.ControlCap, femtofarad); err != nil {
		return s, err
	}
	if s.TunnelCap, err = parseScaled("stack.ct", sc.TunnelCap, femtofarad); err != nil {
		return s, err
	}
	if s.BarrierHeight, err = parseScaled("stack.phib", sc.BarrierHeight, 1); err != nil {
		return s, err
	}
	if s.MassRatio, err = parseScaled("stack.mratio", sc.MassRatio, 1); err != nil {
		return s, err
	}

	return s, s.Validate()
}

// Study builds the sweep sequence of one regime.
func (c Config) Study(regime analysis.Regime) (*analysis.Study, error) {
	var rc RegimeConfig
	switch regime {
	case analysis.RegimeErase:
		rc = c.Erase
	case analysis.RegimeProgram:
		rc = c.Program
	case analysis.RegimeRetention:
		rc = c.Retention
	default:
		return nil, fmt.Errorf("unknown regime: %s", regime)
	}

	base, err := c.BaseStack()
	if err != nil {
		return nil, err
	}
	if base.Voltage, err = parseScaled(string(regime)+".voltage", rc.Voltage, 1); err != nil {
		return nil, err
	}
	if len(rc.Energies) > 0 {
		base.ElectronEnergy = rc.Energies[0]
	}

	st := &analysis.Study{
		Regime:    regime,
		Base:      base,
		Energies:  rc.Energies,
		Threshold: rc.Threshold,
	}
	for i, sc := range rc.Sweeps {
		spec, err := sc.spec()
		if err != nil {
			return nil, fmt.Errorf("%s sweep %d: %w", regime, i+1, err)
		}
		st.Sweeps = append(st.Sweeps, spec)
	}

	return st, nil
}

// Studies returns the studies for the named regimes, or all three when none are given.
func (c Config) Studies(regimes ...analysis.Regime) ([]*analysis.Study, error) {
	if len(regimes) == 0 {
		regimes = []analysis.Regime{analysis.RegimeErase, analysis.RegimeProgram, analysis.RegimeRetention}
	}

	studies := make([]*analysis.Study, 0, len(regimes))
	for _, r := range regimes {
		st, err := c.Study(r)
		if err != nil {
			return nil, err
		}
		studies = append(studies, st)
	}
	return studies, nil
}

// Grid returns the reference solver's lead thickness and grid step in nm.
func (r ReferenceConfig) Grid() (lead, dx float64, err error) {
	if lead, err = parseScaled("reference.lead", r.Lead, nanometer); err != nil {
		return 0, 0, err
	}
	if dx, err = parseScaled("reference.step", r.Step, nanometer); err != nil {
		return 0, 0, err
	}
	if !(dx > 0) || lead < 0 {
		return 0, 0, fmt.Errorf("reference grid needs a positive step and non-negative lead (lead=%g nm, step=%g nm)", lead, dx)
	}
	return lead, dx, nil
}

func (sc SweepConfig) spec() (analysis.SweepSpec, error) {
	p, err := device.ParseParam(sc.Param)
	if err != nil {
		return analysis.SweepSpec{}, err
	}
	if sc.Points <= 0 {
		return analysis.SweepSpec{}, fmt.Errorf("%s: points must be positive, got %d", p, sc.Points)
	}

	scale := paramScale(p)
	start, err := parseScaled(string(p)+".start", sc.Start, scale)
	if err != nil {
		return analysis.SweepSpec{}, err
	}
	stop, err := parseScaled(string(p)+".stop", sc.Stop, scale)
	if err != nil {
		return analysis.SweepSpec{}, err
	}

	dir := analysis.FirstAbove
	if sc.Direction != "" {
		if dir, err = analysis.ParseDirection(sc.Direction); err != nil {
			return analysis.SweepSpec{}, err
		}
	}

	return analysis.SweepSpec{
		Param:     p,
		Values:    analysis.Linspace(start, stop, sc.Points),
		Direction: dir,
	}, nil
}
