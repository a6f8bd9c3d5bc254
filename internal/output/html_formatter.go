package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline chart of the scenarios.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"add":  func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type chartSeries struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

func (h HTMLFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	rec := AnalyzeScenarios(report)

	var series []chartSeries
	for _, sc := range report.Scenarios.Ordered() {
		if sc.Key == "" {
			continue
		}
		s := chartSeries{Label: sc.Label}
		for _, y := range sc.Timeline {
			s.Values = append(s.Values, y.Asset.StringFixed(0))
		}
		series = append(series, s)
	}

	data := struct {
		*domain.PlanReport
		Recommendation Recommendation
		Assumptions    []string
		Ordered        []domain.Scenario
		Chart          []chartSeries
	}{report, rec, assumptionsOf(report.Assumptions), report.Scenarios.Ordered(), series}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
