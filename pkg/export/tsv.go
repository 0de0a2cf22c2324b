package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/edp1096/toy-tunnel/pkg/analysis"
)

var tsvHeader = []string{"regime", "param", "energy", "value", "coefficient"}

// WriteTSV writes every sample of every curve as one tab separated row.
func WriteTSV(w io.Writer, results []*analysis.StudyResult) error {
	tw := csv.NewWriter(w)
	tw.Comma = '\t'

	if err := tw.Write(tsvHeader); err != nil {
		return err
	}

	for _, res := range results {
		for _, curves := range res.Curves {
			for j, c := range curves {
				energy := strconv.FormatFloat(res.Energies[j], 'g', -1, 64)
				for _, s := range c.Samples {
					row := []string{
						string(res.Regime),
						string(c.Param),
						energy,
						strconv.FormatFloat(s.Value, 'g', 10, 64),
						strconv.FormatFloat(s.Coefficient, 'e', 6, 64),
					}
					if err := tw.Write(row); err != nil {
						return err
					}
				}
			}
		}
	}

	tw.Flush()
	return tw.Error()
}

func SaveTSV(filename string, results []*analysis.StudyResult) error {
	return saveFile(filename, func(w io.Writer) error {
		return WriteTSV(w, results)
	})
}
