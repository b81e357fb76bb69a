package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"metaprobe/internal/scanlog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool
	var limit int

	cmd := &cobra.Command{
		Use:   "history [file]",
		Short: "Show recorded scan outcomes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("scan history is disabled; enable it in the config file")
			}

			store, err := scanlog.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			var entries []scanlog.Entry
			if len(args) == 1 {
				path, err := filepath.Abs(args[0])
				if err != nil {
					return fmt.Errorf("resolve %s: %w", args[0], err)
				}
				entries, err = store.ForPath(cmd.Context(), path)
				if err != nil {
					return err
				}
			} else {
				entries, err = store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if jsonFlag {
				return writeJSON(cmd.OutOrStdout(), entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No scans recorded")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), historyTable(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	return cmd
}
