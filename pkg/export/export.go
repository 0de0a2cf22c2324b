// Package export writes study results to files: TSV tables, an Excel
// workbook, PNG figures and an interactive HTML page.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/edp1096/toy-tunnel/pkg/analysis"
	"github.com/edp1096/toy-tunnel/pkg/device"
)

// axisLabel is "Tunnel Oxide Thickness (nm)".
func axisLabel(p device.Param) string {
	if p.Unit() == "" {
		return p.Label()
	}
	return fmt.Sprintf("%s (%s)", p.Label(), p.Unit())
}

func energyLabel(e float64) string {
	return fmt.Sprintf("E=%geV", e)
}

func sweepName(regime analysis.Regime, p device.Param) string {
	return fmt.Sprintf("%s-%s", regime, p)
}

// saveFile creates filename and hands it to write. An empty filename is a no-op.
func saveFile(filename string, write func(io.Writer) error) error {
	if filename == "" {
		return nil
	}

	fp, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := write(fp); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return fp.Close()
}
