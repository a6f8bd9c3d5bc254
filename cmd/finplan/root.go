package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/internal/store"
	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v            *viper.Viper
	settingsFile string
	settings     *config.Settings
	logger       *zap.Logger

	store     store.SnapshotStore
	ownsStore bool

	runWizard programRunner
}

func newApp() *app {
	return &app{v: config.NewViper(), logger: zap.NewNop()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "finplan",
		Short:        "Project wealth, passive income, goals and pension tax credits",
		Long:         "finplan projects a savings portfolio under fixed annual returns, compares conservative, moderate and aggressive scenarios, solves savings goals and estimates pension tax credits.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.settingsFile, "settings", "", "settings file (yaml)")
	pf.String("format", config.DefaultFormat, "output format (see 'finplan formats')")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.String("output-dir", config.DefaultOutputDir, "directory for written reports")
	for key, flag := range map[string]string{"format": "format", "log_level": "log-level", "output_dir": "output-dir"} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		a.projectCmd(),
		a.pensionCmd(),
		a.scenariosCmd(),
		a.goalCmd(),
		a.taxCmd(),
		a.whatIfCmd(),
		a.initCmd(),
		a.snapshotCmd(),
		a.wizardCmd(),
		a.formatsCmd(),
	)
	return root
}

func (a *app) setup() error {
	settings, err := config.LoadSettings(a.v, a.settingsFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(settings.LogLevel)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logger
	return nil
}

// execute runs cmd and tears down afterwards. Cobra skips post-run hooks when a
// command fails, so the store and logger are released here instead.
func (a *app) execute(cmd *cobra.Command) error {
	defer a.teardown()
	return cmd.Execute()
}

func (a *app) teardown() {
	if a.ownsStore && a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing snapshot store", zap.Error(err))
		}
		a.store = nil
		a.ownsStore = false
	}
	_ = a.logger.Sync()
}

// snapshotStore opens the configured store on first use.
func (a *app) snapshotStore(ctx context.Context) (store.SnapshotStore, error) {
	if a.store != nil {
		return a.store, nil
	}
	s, err := store.New(ctx, a.settings.Store, a.logger)
	if err != nil {
		return nil, err
	}
	a.store = s
	a.ownsStore = true
	return s, nil
}

// engine returns a projection engine that logs through zap.
func (a *app) engine(debug bool) *calculation.ProjectionEngine {
	eng := calculation.NewProjectionEngine()
	eng.SetLogger(a.logger.Sugar())
	eng.Debug = debug
	return eng
}

func loadPlan(path string) (*domain.Configuration, error) {
	return config.NewInputParser().LoadFromFile(path)
}

// decimalFlag lets a decimal be set from the command line. Thousands separators are accepted.
type decimalFlag struct{ d *decimal.Decimal }

func (f decimalFlag) String() string {
	if f.d == nil {
		return "0"
	}
	return f.d.String()
}

func (f decimalFlag) Set(s string) error {
	v, err := pkgdec.ParseAmount(s)
	if err != nil {
		return err
	}
	*f.d = v
	return nil
}

func (f decimalFlag) Type() string { return "decimal" }

func decimalVar(cmd *cobra.Command, p *decimal.Decimal, name string, value decimal.Decimal, usage string) {
	*p = value
	cmd.Flags().Var(decimalFlag{p}, name, usage)
}
