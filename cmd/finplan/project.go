package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/internal/output"
)

const markdownWrap = 100

func (a *app) projectCmd() *cobra.Command {
	var (
		save  bool
		plain bool
		debug bool
	)
	cmd := &cobra.Command{
		Use:   "project <plan.yaml>",
		Short: "Run the full projection for a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			report, err := a.engine(debug).RunPlan(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			format := output.NormalizeFormatName(a.v.GetString("format"))
			if save || format == "all" {
				paths, err := output.GenerateReport(report, format, a.v.GetString("output_dir"))
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
			}
			data, err := f.Format(report)
			if err != nil {
				return err
			}
			if f.Name() == "markdown" && !plain {
				rendered, err := renderMarkdown(data)
				if err != nil {
					a.logger.Warn("markdown rendering failed, printing source", zap.Error(err))
				} else {
					data = []byte(rendered)
				}
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the report to --output-dir instead of stdout")
	cmd.Flags().BoolVar(&plain, "plain", false, "print markdown without terminal styling")
	cmd.Flags().BoolVar(&debug, "debug", false, "log the year-by-year breakdown")
	return cmd
}

func renderMarkdown(md []byte) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(string(md))
}

func (a *app) pensionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pension <plan.yaml>",
		Short: "Project national and private pensions at retirement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			summary, err := calculation.SummarizePension(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, summary)
			}

			fmt.Fprintf(out, "Retirement at %d: %s per month\n", summary.Retirement.RetirementAge, output.FormatCurrency(summary.Retirement.TotalMonthlyIncome))
			fmt.Fprintf(out, "  %-16s %14s  from age %d\n", "National", output.FormatCurrency(summary.National.MonthlyAmount), summary.National.StartAge)
			accounts := []struct {
				label string
				proj  domain.PensionAccountProjection
			}{
				{"DC", summary.DC},
				{"IRP", summary.IRP},
				{"Pension savings", summary.PensionSavings},
			}
			for _, acct := range accounts {
				fmt.Fprintf(out, "  %-16s %14s  from age %d\n", acct.label, output.FormatCurrency(acct.proj.MonthlyPension), acct.proj.StartAge)
			}
			fmt.Fprintf(out, "Diagnosis score: %d/100\n", summary.Diagnosis.OverallScore)
			for _, r := range summary.Diagnosis.Recommendations {
				fmt.Fprintf(out, "  - %s\n", r)
			}
			fmt.Fprintf(out, "At the tax credit limits: %s per month (%s more saved monthly)\n",
				output.FormatCurrency(summary.Optimized.TotalMonthlyPension),
				output.FormatCurrency(summary.Optimized.MonthlyContributionChange))
			return nil
		},
	}
}

func (a *app) initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "finplan.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), path); err != nil {
				return err
			}
			a.logger.Info("example plan written", zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (a *app) formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Formats: %s, all\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			return nil
		},
	}
}

func (a *app) jsonOutput() bool {
	return output.NormalizeFormatName(a.v.GetString("format")) == "json"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
