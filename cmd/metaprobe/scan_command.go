package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"metaprobe/internal/config"
	"metaprobe/internal/pipeline"
	"metaprobe/internal/provider"
	"metaprobe/internal/provider/ffprobe"
	"metaprobe/internal/provider/mediainfo"
	"metaprobe/internal/scanlog"
)

type scanReport struct {
	Path     string           `json:"path"`
	Result   *provider.Result `json:"result"`
	Warnings []string         `json:"warnings,omitempty"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool
	var providerFlag string
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "scan <file> [file...]",
		Short: "Scan media files and print normalized metadata",
		Args:  cobra.MinimumNArgs(1),
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

			var store *scanlog.Store
			if cfg.History.Enabled {
				store, err = scanlog.Open(cfg.History.Path)
				if err != nil {
					logger.Warn("scan history unavailable", slog.Any("error", err))
				} else {
					defer store.Close()
				}
			}

			failures := 0
			for _, arg := range args {
				path, err := filepath.Abs(arg)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", arg, err)
				}

				scan := pipeline.NewContext(path, logger)
				result, err := describe(cmd.Context(), registry, providerFlag, path, scan)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "scan %s: %v\n", path, err)
					failures++
					continue
				}

				if rawFlag && scan.DebugDump != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), scan.DebugDump())
				}
				if store != nil {
					recordScan(cmd.Context(), store, logger, scan, result)
				}

				if jsonFlag {
					report := scanReport{Path: path, Result: result}
					for _, warning := range scan.Warnings() {
						report.Warnings = append(report.Warnings, warning.String())
					}
					if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
						return err
					}
					continue
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, path)
				renderResult(out, result)
				renderWarnings(out, scan.Warnings())
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d scans failed", failures, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of tables")
	cmd.Flags().StringVar(&providerFlag, "provider", "", "Use a specific provider instead of the fallback order")
	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Dump the raw probe payload to stderr")
	return cmd
}

func buildRegistry(cfg *config.Config, profile *config.Profile, logger *slog.Logger) (*provider.Registry, error) {
	mi, err := mediainfo.New(cfg, profile, logger)
	if err != nil {
		return nil, err
	}
	fp, err := ffprobe.New(cfg, profile, logger)
	if err != nil {
		return nil, err
	}
	return provider.NewRegistry(logger, mi, fp)
}

func describe(ctx context.Context, registry *provider.Registry, name, path string, scan *pipeline.Context) (*provider.Result, error) {
	if strings.TrimSpace(name) == "" {
		return registry.Describe(ctx, path, scan)
	}
	p, ok := registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", name)
	}
	if !p.Accepts(path) {
		return nil, pipeline.ErrProviderUnavailable
	}
	return p.Describe(ctx, path, scan)
}

func recordScan(ctx context.Context, store *scanlog.Store, logger *slog.Logger, scan *pipeline.Context, result *provider.Result) {
	entry := scanlog.Entry{
		ScanID:         scan.ScanID,
		Path:           scan.Path,
		Provider:       result.Provider.Name,
		VideoTracks:    len(result.Video),
		AudioTracks:    len(result.Audio),
		SubtitleTracks: len(result.Subtitle),
		Warnings:       len(scan.Warnings()),
	}
	if err := store.Record(ctx, entry); err != nil {
		logger.Warn("record scan history", slog.Any("error", err))
	}
}
