package output

import (
	"bytes"
	"encoding/csv"

	"github.com/laborcalc/benefits-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per request, in request order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.BatchReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Index", "Name", "Kind", "Status", "Period", "Regime", "Total", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, o := range report.Outcomes {
		total := ""
		if !o.Failed() {
			total = outcomeTotal(o).StringFixed(2)
		}
		row := []string{
			intToString(o.Index + 1),
			o.Name,
			string(o.Kind),
			outcomeStatus(o),
			outcomePeriod(o),
			outcomeRegime(o),
			total,
			o.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
