// Package config loads and validates metaprobe configuration.
//
// Two kinds of configuration live here. The TOML config file controls the
// program surface: probing tool locations, logging, and the scan history
// store. The mapping profile supplies the token lookup tables (raw codec or
// profile tokens -> canonical names) consumed by the normalization handlers;
// a default profile is embedded and a user profile file can override
// individual tables. Both are immutable once loaded.
package config
