package main // import "tunnel"

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/edp1096/toy-tunnel/pkg/analysis"
	"github.com/edp1096/toy-tunnel/pkg/config"
	"github.com/edp1096/toy-tunnel/pkg/export"
	"github.com/edp1096/toy-tunnel/pkg/solver"
	"github.com/edp1096/toy-tunnel/pkg/util"
)

func parseRegimes(name string) ([]analysis.Regime, error) {
	if name == "all" {
		return nil, nil
	}

	var regimes []analysis.Regime
	for _, n := range strings.Split(name, ",") {
		r, err := analysis.ParseRegime(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		regimes = append(regimes, r)
	}
	return regimes, nil
}

func printCurves(res *analysis.StudyResult) {
	for _, curves := range res.Curves {
		if len(curves) == 0 {
			continue
		}
		param := curves[0].Param

		fmt.Printf("\n%s sweep of %s (%d points):\n", res.Regime, param.Label(), len(curves[0].Samples))
		fmt.Println("------------------------------------------------")

		for i, s := range curves[0].Samples {
			fmt.Printf("%s=%s  ", param, util.FormatSweepValue(s.Value, param.Unit()))
			for j, c := range curves {
				fmt.Printf("T(E=%geV)=%s  ", res.Energies[j], util.FormatCoefficient(c.Samples[i].Coefficient))
			}
			fmt.Println()
		}
	}
}

func printReport(st *analysis.Study, res *analysis.StudyResult) {
	fmt.Printf("\n[%s] Key parameter threshold analysis (T > %g):\n", res.Regime, res.Threshold)
	for _, row := range res.Rows {
		marks := make([]string, len(row.Marks))
		for i, m := range row.Marks {
			marks[i] = util.FormatThreshold(m.Label(), m.Sample.Value, m.Param.Unit(), m.Found)
		}
		fmt.Println(util.FormatViabilityRow(row.Energy, marks))
	}

	t, err := st.EffectiveModel().Transmission(st.Base)
	if err != nil {
		log.Printf("Default coefficient unavailable: %v", err)
		return
	}
	fmt.Printf("Default Transmission Coefficient: %s\n", util.FormatCoefficient(t))
}

// printReference compares the closed-form retention model with the
// finite-difference solution of the same stack.
func printReference(cfg config.Config) {
	st, err := cfg.Study(analysis.RegimeRetention)
	if err != nil {
		log.Fatalf("Error creating reference stack: %v", err)
	}
	lead, dx, err := cfg.Reference.Grid()
	if err != nil {
		log.Fatalf("Error reading reference grid: %v", err)
	}

	model := st.Regime.NewModel()
	profile := solver.ProfileFromStack(st.Base, lead)

	fmt.Printf("\nReference solver (lead=%g nm, dx=%g nm, %d sites):\n", lead, dx, len(profile.Grid(dx))+2)
	fmt.Println("------------------------------------------------")
	for _, e := range st.Energies {
		base := st.Base
		base.ElectronEnergy = e

		closed, err := model.Transmission(base)
		if err != nil {
			log.Printf("E=%geV: %v", e, err)
			continue
		}
		numeric, err := solver.Transmission(profile, e, base.MassRatio, dx)
		if err != nil {
			log.Printf("E=%geV: %v", e, err)
			continue
		}
		fmt.Printf("E=%geV: resonant=%s  finite-difference=%s\n", e, util.FormatCoefficient(closed), util.FormatCoefficient(numeric))
	}
}

// perRegime turns "out.png" into "out-erase.png" when several studies share one name.
func perRegime(filename string, regime analysis.Regime, n int) string {
	if filename == "" || n <= 1 {
		return filename
	}
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s-%s%s", strings.TrimSuffix(filename, ext), regime, ext)
}

func main() {
	configFile := flag.String("config", "", "TOML configuration file (built-in defaults when empty)")
	regime := flag.String("regime", "all", "erase, program, retention or all (comma separated)")
	xlsxFile := flag.String("xlsx", "", "write the results to an Excel workbook")
	tsvFile := flag.String("tsv", "", "write the results to a tab separated file")
	pngFile := flag.String("png", "", "draw the sweep figures to a PNG file")
	htmlFile := flag.String("html", "", "render interactive charts to an HTML file")
	reference := flag.Bool("reference", false, "cross-check the retention model with the finite-difference solver")
	quiet := flag.Bool("quiet", false, "print only the threshold report")
	flag.Parse()

	// 1. Configuration
	cfg := config.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			log.Fatalf("Error reading config: %v", err)
		}
	}
	override := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	override(&cfg.Output.XLSX, *xlsxFile)
	override(&cfg.Output.TSV, *tsvFile)
	override(&cfg.Output.PNG, *pngFile)
	override(&cfg.Output.HTML, *htmlFile)

	regimes, err := parseRegimes(*regime)
	if err != nil {
		log.Fatalf("Error parsing regime: %v", err)
	}
	studies, err := cfg.Studies(regimes...)
	if err != nil {
		log.Fatalf("Error creating studies: %v", err)
	}

	// 2. Run studies
	var results []*analysis.StudyResult
	for _, st := range studies {
		res, err := st.Run()
		if err != nil {
			log.Fatalf("Analysis execution failed: %v", err)
		}
		results = append(results, res)

		if !*quiet {
			printCurves(res)
		}
		printReport(st, res)
	}

	if *reference {
		printReference(cfg)
	}

	// 3. Save results
	if err := export.SaveXLSX(cfg.Output.XLSX, results); err != nil {
		log.Fatalf("Error saving workbook: %v", err)
	}
	if err := export.SaveTSV(cfg.Output.TSV, results); err != nil {
		log.Fatalf("Error saving table: %v", err)
	}
	if err := export.SaveHTML(cfg.Output.HTML, results); err != nil {
		log.Fatalf("Error saving charts: %v", err)
	}
	for _, res := range results {
		if err := export.SavePNG(perRegime(cfg.Output.PNG, res.Regime, len(results)), res); err != nil {
			log.Fatalf("Error saving figure: %v", err)
		}
	}
}
