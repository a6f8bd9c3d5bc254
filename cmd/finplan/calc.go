package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/internal/output"
)

func (a *app) scenariosCmd() *cobra.Command {
	var base domain.ScenarioBase
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Compare 5%, 10% and 15% return scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := calculation.CompareScenarios(base)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, set)
			}

			fmt.Fprintf(out, "%-14s %7s %18s %16s %18s\n", "Scenario", "Return", "Final Asset", "Monthly Income", "Gains")
			for _, s := range set.Ordered() {
				marker := ""
				if s.Key == set.Insight.BestScenario {
					marker = " *"
				}
				fmt.Fprintf(out, "%-14s %7s %18s %16s %18s%s\n", s.Label,
					output.FormatPercentage(s.AnnualReturnPercent),
					output.FormatCurrency(s.FinalAsset),
					output.FormatCurrency(s.FinalMonthlyIncome),
					output.FormatCurrency(s.TotalGains), marker)
			}
			fmt.Fprintf(out, "Spread: %s in assets, %s in monthly income (%s)\n",
				output.FormatCurrency(set.Insight.AssetSpread),
				output.FormatCurrency(set.Insight.IncomeSpread),
				output.FormatPercentage(set.Insight.SpreadPercent))
			for _, c := range set.Insight.KeyConsiderations {
				fmt.Fprintf(out, "  - %s\n", c)
			}
			return nil
		},
	}
	decimalVar(cmd, &base.CurrentAsset, "asset", decimal.Zero, "current asset")
	decimalVar(cmd, &base.MonthlyContribution, "contribution", decimal.Zero, "monthly contribution")
	decimalVar(cmd, &base.AnnualYieldPercent, "yield", decimal.NewFromFloat(4.5), "annual dividend yield in percent")
	cmd.Flags().IntVar(&base.Years, "years", 10, "simulation horizon in years")
	return cmd
}

func (a *app) goalCmd() *cobra.Command {
	var (
		params       domain.GoalParameters
		contribution decimal.Decimal
		maxYears     int
	)
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Solve the monthly contribution needed to reach a target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			required, err := calculation.RequiredMonthlyContribution(params)
			if err != nil {
				return err
			}

			var achievement *domain.GoalAchievementResult
			if contribution.IsPositive() {
				res, err := calculation.GoalAchievement(domain.GoalSearch{
					CurrentAsset:        params.CurrentAsset,
					TargetAsset:         params.TargetAsset,
					MonthlyContribution: contribution,
					AnnualReturnPercent: params.AnnualReturnPercent,
					MaxYears:            maxYears,
				})
				if err != nil {
					return err
				}
				achievement = &res
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, struct {
					RequiredMonthlyContribution decimal.Decimal               `json:"required_monthly_contribution"`
					Achievement                 *domain.GoalAchievementResult `json:"achievement,omitempty"`
				}{required, achievement})
			}

			fmt.Fprintf(out, "Required monthly contribution: %s over %d years at %s\n",
				output.FormatCurrency(required), params.Years, output.FormatPercentage(params.AnnualReturnPercent))
			if achievement != nil {
				fmt.Fprintf(out, "Saving %s per month: %s\n", output.FormatCurrency(contribution), achievement.Summary())
			}
			return nil
		},
	}
	decimalVar(cmd, &params.CurrentAsset, "current", decimal.Zero, "current asset")
	decimalVar(cmd, &params.TargetAsset, "target", decimal.Zero, "target asset")
	decimalVar(cmd, &params.AnnualReturnPercent, "return", decimal.NewFromInt(10), "annual return in percent")
	cmd.Flags().IntVar(&params.Years, "years", 10, "years to reach the target")
	decimalVar(cmd, &contribution, "contribution", decimal.Zero, "monthly contribution to test against the target")
	cmd.Flags().IntVar(&maxYears, "max-years", domain.DefaultSearchYears, "search horizon for --contribution")
	return cmd
}

func (a *app) taxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Withholding tax and pension tax credit calculators",
	}
	cmd.AddCommand(a.withholdingCmd(), a.creditCmd())
	return cmd
}

func (a *app) withholdingCmd() *cobra.Command {
	var gross, rate decimal.Decimal
	cmd := &cobra.Command{
		Use:   "withholding",
		Short: "Apply a flat withholding tax to a gross amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := domain.RequireNonNegative("amount", gross); err != nil {
				return err
			}
			var res domain.TaxResult
			if cmd.Flags().Changed("rate") {
				res = calculation.ApplyFlatTax(gross, rate)
			} else {
				res = calculation.DividendTax(gross)
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, res)
			}
			fmt.Fprintf(out, "Gross %s, tax %s at %s, net %s\n",
				output.FormatCurrency(res.GrossAmount),
				output.FormatCurrency(res.TaxAmount),
				output.FormatPercentage(res.TaxRatePercent),
				output.FormatCurrency(res.NetAmount))
			return nil
		},
	}
	decimalVar(cmd, &gross, "amount", decimal.Zero, "gross amount")
	decimalVar(cmd, &rate, "rate", domain.DividendTaxRatePercent, "tax rate in percent")
	return cmd
}

func (a *app) creditCmd() *cobra.Command {
	var (
		in       domain.DeductionInput
		planPath string
	)
	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Pension contribution tax credit for a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := domain.DefaultDeductionRules()
			if planPath != "" {
				cfg, err := loadPlan(planPath)
				if err != nil {
					return err
				}
				rules = cfg.Rules()
			}
			res, err := calculation.NewPensionDeductionCalculatorWithRules(rules).Calculate(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, res)
			}
			fmt.Fprintf(out, "Credit rate: %s\n", output.FormatPercentage(res.RatePercent))
			fmt.Fprintf(out, "  Pension savings: %s deductible, %s credit\n", output.FormatCurrency(res.PensionSavingsDeductible), output.FormatCurrency(res.PensionSavingsCredit))
			fmt.Fprintf(out, "  IRP:             %s deductible, %s credit\n", output.FormatCurrency(res.IRPDeductible), output.FormatCurrency(res.IRPCredit))
			fmt.Fprintf(out, "Total credit %s of %s possible, %s of limit unused\n",
				output.FormatCurrency(res.TotalCredit),
				output.FormatCurrency(res.MaxCredit),
				output.FormatCurrency(res.RemainingLimit))
			return nil
		},
	}
	decimalVar(cmd, &in.AnnualIncome, "income", decimal.Zero, "annual income")
	decimalVar(cmd, &in.PensionSavingsContribution, "pension-savings", decimal.Zero, "annual pension savings contribution")
	decimalVar(cmd, &in.IRPContribution, "irp", decimal.Zero, "annual IRP contribution")
	cmd.Flags().StringVar(&planPath, "plan", "", "take tax rules from this plan")
	return cmd
}

func (a *app) whatIfCmd() *cobra.Command {
	var (
		base                                 domain.GrowthParameters
		newAsset, newContribution, newReturn decimal.Decimal
		newYears                             int
	)
	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Compare a projection against changed inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var changes domain.WhatIfChanges
			flags := cmd.Flags()
			if flags.Changed("new-asset") {
				changes.CurrentAsset = &newAsset
			}
			if flags.Changed("new-contribution") {
				changes.MonthlyContribution = &newContribution
			}
			if flags.Changed("new-return") {
				changes.AnnualReturnPercent = &newReturn
			}
			if flags.Changed("new-years") {
				changes.Years = &newYears
			}

			res, err := calculation.AnalyzeWhatIf(base, changes)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, res)
			}
			fmt.Fprintf(out, "Base:    %s\n", output.FormatCurrency(res.BaseResult))
			fmt.Fprintf(out, "Changed: %s\n", output.FormatCurrency(res.ChangedResult))
			change := "n/a"
			if res.PercentageChange != nil {
				change = output.FormatPercentage(*res.PercentageChange)
			}
			fmt.Fprintf(out, "Difference: %s (%s)\n", output.FormatCurrency(res.Difference), change)
			fmt.Fprintln(out, res.Description)
			return nil
		},
	}
	decimalVar(cmd, &base.CurrentAsset, "asset", decimal.Zero, "current asset")
	decimalVar(cmd, &base.MonthlyContribution, "contribution", decimal.Zero, "monthly contribution")
	decimalVar(cmd, &base.AnnualReturnPercent, "return", decimal.NewFromInt(7), "annual return in percent")
	cmd.Flags().IntVar(&base.Years, "years", 10, "projection horizon in years")
	decimalVar(cmd, &newAsset, "new-asset", decimal.Zero, "changed current asset")
	decimalVar(cmd, &newContribution, "new-contribution", decimal.Zero, "changed monthly contribution")
	decimalVar(cmd, &newReturn, "new-return", decimal.Zero, "changed annual return in percent")
	cmd.Flags().IntVar(&newYears, "new-years", 0, "changed horizon in years")
	return cmd
}
