package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/ecmerge/internal/config"
	"github.com/dshills/ecmerge/internal/editorconfig"
)

// Shared flags
var (
	flagLimit  int
	flagFormat string
	flagColor  string
	flagPrefer string
)

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagLimit > 0 {
		m["limit"] = fmt.Sprintf("%d", flagLimit)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagColor != "" {
		m["color"] = flagColor
	}
	if flagPrefer != "" {
		m["prefer"] = flagPrefer
	}
	return m
}

// loadConfig merges flags over the config file and environment and validates
// the result.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// readPair parses both inputs. Neither is used unless both read cleanly.
func readPair(cmd *cobra.Command, pathA, pathB string) (a, b []*editorconfig.Section, err error) {
	logf(cmd, "reading %s", pathA)
	a, err = editorconfig.ParseFile(pathA)
	if err != nil {
		return nil, nil, err
	}
	logf(cmd, "reading %s", pathB)
	b, err = editorconfig.ParseFile(pathB)
	if err != nil {
		return nil, nil, err
	}
	logf(cmd, "%s: %d sections, %s: %d sections", pathA, len(a), pathB, len(b))
	return a, b, nil
}
