package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type providerStatus struct {
	Name      string            `json:"name"`
	Available bool              `json:"available"`
	Version   map[string]string `json:"version,omitempty"`
}

func newProvidersCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List providers and their availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			profile, err := ctx.ensureProfile()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			registry, err := buildRegistry(cfg, profile, logger)
			if err != nil {
				return err
			}

			statuses := make([]providerStatus, 0)
			for _, p := range registry.Providers() {
				version := p.Version()
				statuses = append(statuses, providerStatus{
					Name:      p.Name(),
					Available: len(version) > 0,
					Version:   version,
				})
			}

			if jsonFlag {
				return writeJSON(cmd.OutOrStdout(), statuses)
			}

			fmt.Fprintln(cmd.OutOrStdout(), providersTable(statuses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")
	return cmd
}
