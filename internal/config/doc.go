// Package config loads and merges ecmerge configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (ECMERGE_LIMIT, ECMERGE_FORMAT, ECMERGE_COLOR, ECMERGE_PREFER)
//  3. Config file ($XDG_CONFIG_HOME/ecmerge/config.toml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file,
// and [SetField] to update a single key.
package config
