package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/store"
)

func (a *app) snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save and restore plans in the snapshot store",
	}

	save := &cobra.Command{
		Use:   "save <name> <plan.yaml>",
		Short: "Store a plan under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadPlan(args[1])
			if err != nil {
				return err
			}
			st, err := a.snapshotStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := st.Save(cmd.Context(), args[0], cfg); err != nil {
				return err
			}
			a.logger.Info("snapshot saved", zap.String("name", args[0]), zap.String("backend", a.settings.Store.Backend))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
			return nil
		},
	}

	var outPath string
	load := &cobra.Command{
		Use:   "load <name>",
		Short: "Print a stored plan or write it with --out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.snapshotStore(cmd.Context())
			if err != nil {
				return err
			}
			cfg, err := st.Load(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no snapshot named %q", args[0])
			}
			if err != nil {
				return err
			}
			if outPath != "" {
				if err := config.NewInputParser().SaveConfiguration(cfg, outPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %s to %s\n", args[0], outPath)
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	load.Flags().StringVarP(&outPath, "out", "o", "", "write the plan to this file")

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.snapshotStore(cmd.Context())
			if err != nil {
				return err
			}
			names, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.snapshotStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no snapshot named %q", args[0])
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(save, load, list, del)
	return cmd
}
