package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/internal/wizard"
)

// programRunner runs a bubbletea model to completion and returns the final model.
type programRunner func(m tea.Model, in io.Reader, out io.Writer) (tea.Model, error)

func runProgram(m tea.Model, in io.Reader, out io.Writer) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
}

func (a *app) wizardCmd() *cobra.Command {
	var (
		planPath string
		addTo    bool
		id       string
		title    string
	)
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Set a goal step by step in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addTo && planPath == "" {
				return errors.New("--add requires --plan")
			}

			var (
				cfg      *domain.Configuration
				holdings wizard.Holdings
			)
			if planPath != "" {
				var err error
				if cfg, err = loadPlan(planPath); err != nil {
					return err
				}
				holdings = wizard.HoldingsFromPlan(cfg)
			}

			run := a.runWizard
			if run == nil {
				run = runProgram
			}
			final, err := run(wizard.NewModel(wizard.New(holdings)), cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("wizard failed: %w", err)
			}
			m, ok := final.(wizard.Model)
			if !ok || !m.Confirmed() {
				fmt.Fprintln(cmd.OutOrStdout(), "Wizard cancelled")
				return nil
			}

			goal, err := m.Wizard().Goal(id, title, time.Now().UTC())
			if err != nil {
				return err
			}

			if addTo {
				cfg.Goals = append(cfg.Goals, goal)
				parser := config.NewInputParser()
				if err := parser.ValidateConfiguration(cfg); err != nil {
					return fmt.Errorf("goal not added: %w", err)
				}
				if err := parser.SaveConfiguration(cfg, planPath); err != nil {
					return err
				}
				a.logger.Info("goal added to plan", zap.String("id", goal.ID), zap.String("plan", planPath))
				fmt.Fprintf(cmd.OutOrStdout(), "Added goal %s to %s\n", goal.ID, planPath)
				return nil
			}

			data, err := yaml.Marshal(goal)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&planPath, "plan", "", "start from the holdings of this plan")
	cmd.Flags().BoolVar(&addTo, "add", false, "append the goal to --plan")
	cmd.Flags().StringVar(&id, "id", "wizard-goal", "id of the new goal")
	cmd.Flags().StringVar(&title, "title", "Wizard goal", "title of the new goal")
	return cmd
}
