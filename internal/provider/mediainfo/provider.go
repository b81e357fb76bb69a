package mediainfo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"metaprobe/internal/config"
	"metaprobe/internal/pipeline"
	"metaprobe/internal/provider"
)

// Name identifies this provider in results and the registry.
const Name = "mediainfo"

// Provider describes media files using the MediaInfo tool.
type Provider struct {
	executor *Executor
	schema   *pipeline.Schema
	logger   *slog.Logger
}

// New builds the provider. A missing mediainfo binary is not an error: the
// provider simply never accepts, and the registry moves on.
func New(cfg *config.Config, profile *config.Profile, logger *slog.Logger) (*Provider, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	schema, err := newSchema(profile)
	if err != nil {
		return nil, err
	}
	executor := NewExecutor(cfg.Tools.MediaInfoPath)
	if executor == nil {
		logger.Warn("mediainfo not found, provider disabled; visit https://mediaarea.net/ to install it")
	}
	return &Provider{executor: executor, schema: schema, logger: logger}, nil
}

// Name implements provider.Provider.
func (p *Provider) Name() string {
	return Name
}

// Accepts implements provider.Provider.
func (p *Provider) Accepts(path string) bool {
	return p.executor != nil && provider.IsVideo(path)
}

// Version implements provider.Provider.
func (p *Provider) Version() map[string]string {
	if p.executor == nil {
		return nil
	}
	return map[string]string{p.executor.Location(): p.executor.Version()}
}

// Describe implements provider.Provider: probe, classify by @type,
// normalize each track through the schema, assemble.
func (p *Provider) Describe(ctx context.Context, path string, scan *pipeline.Context) (*provider.Result, error) {
	if p.executor == nil {
		return nil, pipeline.ErrProviderUnavailable
	}

	tracks, rawPayload, err := p.executor.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	scan.DebugDump = func() string {
		var pretty map[string]any
		if err := json.Unmarshal(rawPayload, &pretty); err != nil {
			return string(rawPayload)
		}
		indented, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return string(rawPayload)
		}
		return string(indented)
	}

	return p.describeTracks(tracks, scan)
}

// describeTracks classifies raw tracks by @type and normalizes them.
// Unknown track types are dropped silently.
func (p *Provider) describeTracks(tracks []pipeline.RawTrack, scan *pipeline.Context) (*provider.Result, error) {
	var general pipeline.RawTrack
	var video, audio, subtitle []pipeline.RawTrack
	for _, track := range tracks {
		kind, _ := track["@type"].(string)
		switch kind {
		case "General":
			if general == nil {
				general = track
			}
		case "Video":
			video = append(video, track)
		case "Audio":
			audio = append(audio, track)
		case "Text":
			subtitle = append(subtitle, track)
		}
	}

	p.logger.Debug("mediainfo scan",
		slog.String("scan_id", scan.ScanID),
		slog.String("path", scan.Path),
		slog.Int("video", len(video)),
		slog.Int("audio", len(audio)),
		slog.Int("subtitle", len(subtitle)))

	info := provider.Info{Name: Name, Version: p.Version()}
	return provider.Assemble(p.schema, general, video, audio, subtitle, scan, info)
}
