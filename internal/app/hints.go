package app

import (
	"fmt"
	"os"
	"strings"

	"notebookctl/internal/types"
)

// defaultsHint pairs a flag name with a notebook.yaml key for hint
// messages.
type defaultsHint struct {
	FlagName  string
	ConfigKey string
}

// checkSyncDefaultsHints returns hints for sync flags that duplicate
// notebook.yaml settings. A hint is generated when the user explicitly
// provided a value that matches a non-empty config field.
func checkSyncDefaultsHints(req SyncRequest, cfg types.Config) []string {
	checks := []struct {
		hint       defaultsHint
		provided   bool
		hasDefault bool
	}{
		{
			hint:       defaultsHint{"--cache-dir", "cache_dir"},
			provided:   strings.TrimSpace(req.CacheDir) != "" && req.CacheDir == cfg.CacheDir,
			hasDefault: cfg.CacheDir != "",
		},
	}

	var hints []string
	for _, c := range checks {
		if c.provided && c.hasDefault {
			hints = append(hints, fmt.Sprintf(
				"hint: %s is also set in notebook.yaml (%s); you can omit the flag",
				c.hint.FlagName, c.hint.ConfigKey,
			))
		}
	}
	return hints
}

// emitHints writes hint messages to stderr.
func emitHints(hints []string) {
	for _, h := range hints {
		fmt.Fprintln(os.Stderr, h)
	}
}
