// Package setup builds the selection pipeline from configuration
package setup

import (
	"github.com/baldierot/fjoin/internal/ignore"
	"github.com/baldierot/fjoin/internal/override"
	"github.com/baldierot/fjoin/internal/utils"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// SelectionConfig holds the parameters needed to build the ignore store and
// force-include set.
type SelectionConfig struct {
	WorkDir     string
	NoIgnore    bool
	IgnoreFiles []string
	Includes    []string
	Logger      utils.Logger
}

// BuildSelection loads ignore sources and resolves force-include patterns.
// A missing custom ignore file surfaces here as a fatal error; a missing
// repository ignore file does not.
func BuildSelection(cfg SelectionConfig, infoLog InfoLogger) (*ignore.Store, *override.Set, error) {
	store, err := ignore.New(cfg.WorkDir,
		ignore.WithLogger(cfg.Logger),
		ignore.WithDisabled(cfg.NoIgnore),
		ignore.WithCustomFiles(cfg.IgnoreFiles...),
	)
	if err != nil {
		return nil, nil, err
	}

	if cfg.NoIgnore {
		infoLog("Ignore files disabled; only binary and directory checks apply.")
	} else {
		infoLog("Loaded %d ignore pattern(s) from %d source(s).",
			store.PatternCount(), len(store.Sources()))
	}

	overrides := override.Resolve(cfg.WorkDir, cfg.Includes, cfg.Logger)
	if len(cfg.Includes) > 0 {
		infoLog("Force-include patterns resolved to %d file(s).", overrides.Len())
	}

	return store, overrides, nil
}
