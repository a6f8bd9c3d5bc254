package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// GenerateReport writes the report in the named format to dir and returns the written paths.
// The pseudo-format "all" writes the verbose console report and the detailed CSV.
func GenerateReport(report *domain.PlanReport, format, dir string) ([]string, error) {
	if report == nil {
		return nil, fmt.Errorf("report is required")
	}
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			path, err := WriteFormatted(f, report, dir)
			if err != nil {
				return paths, fmt.Errorf("%s: %w", f.Name(), err)
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s, all (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}
