package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed mappings.toml
var defaultMappings []byte

// Table maps raw probe tokens (case-insensitive) to canonical names.
// Default, when declared, is used for unmapped tokens instead of reporting.
type Table struct {
	Values  map[string]string `toml:"values"`
	Default string            `toml:"default"`
}

// Lookup resolves a raw token. The second return value is false when the
// token is unmapped; callers decide between the table default and fallback.
func (t Table) Lookup(token string) (string, bool) {
	canonical, ok := t.Values[strings.ToLower(strings.TrimSpace(token))]
	return canonical, ok
}

// Profile is the immutable set of token mapping tables consumed by the
// normalization handlers, keyed by logical category ("video_codec",
// "audio_profile", ...).
type Profile struct {
	tables map[string]Table
}

// Table returns the mapping table for a category. Unknown categories yield
// an empty table, so every token falls back with a warning.
func (p *Profile) Table(category string) Table {
	if p == nil {
		return Table{}
	}
	return p.tables[category]
}

// Categories returns the declared category names.
func (p *Profile) Categories() []string {
	out := make([]string, 0, len(p.tables))
	for name := range p.tables {
		out = append(out, name)
	}
	return out
}

var defaultProfile = mustProfile(defaultMappings)

// DefaultProfile returns the embedded mapping profile.
func DefaultProfile() *Profile {
	return defaultProfile
}

// LoadProfile reads a user profile file and overlays its tables on the
// embedded defaults, table by table. An empty path returns the defaults.
func LoadProfile(path string) (*Profile, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultProfile(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	overlay, err := parseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	merged := make(map[string]Table, len(defaultProfile.tables))
	for name, table := range defaultProfile.tables {
		merged[name] = table
	}
	for name, table := range overlay.tables {
		merged[name] = table
	}
	return &Profile{tables: merged}, nil
}

func parseProfile(data []byte) (*Profile, error) {
	raw := make(map[string]Table)
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	tables := make(map[string]Table, len(raw))
	for name, table := range raw {
		values := make(map[string]string, len(table.Values))
		for token, canonical := range table.Values {
			values[strings.ToLower(strings.TrimSpace(token))] = canonical
		}
		tables[name] = Table{Values: values, Default: table.Default}
	}
	return &Profile{tables: tables}, nil
}

func mustProfile(data []byte) *Profile {
	profile, err := parseProfile(data)
	if err != nil {
		panic(fmt.Sprintf("config: embedded mapping profile is invalid: %v", err))
	}
	return profile
}
