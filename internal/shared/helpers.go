// Package shared provides common utility functions used across multiple
// packages in the notebookctl codebase.
package shared

import (
	"fmt"
	"strings"
)

// NormalizePackageName lowercases a Typst package or namespace name and
// replaces underscores and spaces with hyphens, matching the directory
// naming of the package cache.
func NormalizePackageName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	replacer := strings.NewReplacer("_", "-", " ", "-")
	return replacer.Replace(lower)
}

// DependencyLine renders the import token for a pinned template package,
// e.g. "@local/notebookinator:1.2.3".
func DependencyLine(namespace, name, version string) string {
	return fmt.Sprintf("@%s/%s:%s", namespace, name, version)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
