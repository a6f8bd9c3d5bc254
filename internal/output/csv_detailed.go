package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// CSVDetailedExporter provides the yearly timeline of the plan and of each scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Asset", "TotalInvested", "Gains", "MonthlyIncome", "AnnualIncome", "IsFinal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	write := func(name string, timeline []domain.YearSnapshot) error {
		for i, yr := range timeline {
			row := []string{
				name,
				intToString(yr.Year),
				yr.Asset.StringFixed(0),
				yr.TotalInvested.StringFixed(0),
				yr.Gains.StringFixed(0),
				yr.MonthlyIncome.StringFixed(0),
				yr.AnnualIncome.StringFixed(0),
				boolToString(i == len(timeline)-1),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := write("plan", report.Projection); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios.Ordered() {
		if sc.Key == "" {
			continue
		}
		if err := write(sc.Key, sc.Timeline); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
