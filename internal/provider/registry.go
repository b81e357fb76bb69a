package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"metaprobe/internal/pipeline"
)

// Registry holds providers in priority order and implements the caller-level
// fallback policy: each accepting provider is tried in turn until one
// succeeds.
type Registry struct {
	providers []Provider
	logger    *slog.Logger
}

// NewRegistry builds a registry. Order matters: earlier providers win.
func NewRegistry(logger *slog.Logger, providers ...Provider) (*Registry, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	seen := make(map[string]struct{}, len(providers))
	for _, p := range providers {
		if p == nil {
			return nil, errors.New("registry: nil provider")
		}
		name := strings.ToLower(strings.TrimSpace(p.Name()))
		if name == "" {
			return nil, errors.New("registry: provider with empty name")
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("registry: duplicate provider %q", name)
		}
		seen[name] = struct{}{}
	}
	return &Registry{providers: providers, logger: logger}, nil
}

// Get returns a provider by name.
func (r *Registry) Get(name string) (Provider, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range r.providers {
		if strings.ToLower(p.Name()) == name {
			return p, true
		}
	}
	return nil, false
}

// Providers returns the registered providers in priority order.
func (r *Registry) Providers() []Provider {
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Describe runs the first accepting provider against the path, falling back
// to later providers on failure. When no provider accepts the path at all
// the registry reports pipeline.ErrProviderUnavailable.
func (r *Registry) Describe(ctx context.Context, path string, scan *pipeline.Context) (*Result, error) {
	var lastErr error
	accepted := false
	for _, p := range r.providers {
		if !p.Accepts(path) {
			continue
		}
		accepted = true
		result, err := p.Describe(ctx, path, scan)
		if err == nil {
			return result, nil
		}
		lastErr = err
		r.logger.Debug("provider failed, trying next",
			slog.String("provider", p.Name()),
			slog.String("path", path),
			slog.Any("error", err))
	}
	if !accepted {
		return nil, pipeline.ErrProviderUnavailable
	}
	return nil, lastErr
}
