package export

import (
	"fmt"
	"io"

	"github.com/edp1096/toy-tunnel/pkg/analysis"
	"github.com/edp1096/toy-tunnel/pkg/util"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// WriteXLSX builds a workbook with a threshold summary and one sheet per sweep.
// Sheet "erase-tox" holds the swept values in column A and one coefficient
// column per energy level.
func WriteXLSX(w io.Writer, results []*analysis.StudyResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	setRow := func(sheet string, row int, values ...any) error {
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	// Summary
	if err := setRow(summarySheet, 1, "Regime", "Threshold", "Energy (eV)", "Criterion", "Value", "Unit"); err != nil {
		return err
	}
	row := 2
	for _, res := range results {
		for _, vr := range res.Rows {
			for _, m := range vr.Marks {
				var value any = util.NotAvailable
				if m.Found {
					value = m.Sample.Value
				}
				if err := setRow(summarySheet, row, string(res.Regime), res.Threshold, vr.Energy, m.Label(), value, m.Param.Unit()); err != nil {
					return err
				}
				row++
			}
		}
	}

	// Sweeps
	used := map[string]int{}
	for _, res := range results {
		for _, curves := range res.Curves {
			if len(curves) == 0 {
				continue
			}
			sheet := sweepName(res.Regime, curves[0].Param)
			if used[sheet]++; used[sheet] > 1 {
				sheet = fmt.Sprintf("%s-%d", sheet, used[sheet])
			}
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}

			header := []any{axisLabel(curves[0].Param)}
			for _, e := range res.Energies {
				header = append(header, "T("+energyLabel(e)+")")
			}
			if err := setRow(sheet, 1, header...); err != nil {
				return err
			}

			for i, s := range curves[0].Samples {
				values := []any{s.Value}
				for _, c := range curves {
					values = append(values, c.Samples[i].Coefficient)
				}
				if err := setRow(sheet, i+2, values...); err != nil {
					return err
				}
			}
		}
	}

	return f.Write(w)
}

func SaveXLSX(filename string, results []*analysis.StudyResult) error {
	return saveFile(filename, func(w io.Writer) error {
		return WriteXLSX(w, results)
	})
}
