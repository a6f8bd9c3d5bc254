package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "AnnualReturnPercent", "Years", "FinalAsset", "FinalMonthlyIncome", "TotalInvested", "TotalGains"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios.Ordered() {
		if sc.Key == "" {
			continue
		}
		var invested string
		if n := len(sc.Timeline); n > 0 {
			invested = sc.Timeline[n-1].TotalInvested.StringFixed(0)
		}
		row := []string{
			sc.Key,
			sc.AnnualReturnPercent.String(),
			intToString(report.Years),
			sc.FinalAsset.StringFixed(0),
			sc.FinalMonthlyIncome.StringFixed(0),
			invested,
			sc.TotalGains.StringFixed(0),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
