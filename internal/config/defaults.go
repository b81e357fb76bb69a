package config

const (
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultHistoryPath = "~/.local/share/metaprobe/history.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
	}
}
