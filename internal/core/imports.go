package core

import (
	"fmt"
	"regexp"

	"notebookctl/internal/shared"
)

// dependencyPattern matches the pinned import token of the template
// package inside the imports file, e.g. "@local/notebookinator:1.2.3".
func dependencyPattern(namespace, name string) *regexp.Regexp {
	prefix := regexp.QuoteMeta(fmt.Sprintf("@%s/%s:", namespace, name))
	return regexp.MustCompile(prefix + `(\d+\.\d+\.\d+)`)
}

// ImportsDocument renders a fresh imports file pinning the template
// package to version.
func ImportsDocument(namespace, name, version string) string {
	return fmt.Sprintf("#import \"%s\": *\n", shared.DependencyLine(namespace, name, version))
}

// PinnedVersion extracts the currently pinned version of the package
// from the imports file content.
func PinnedVersion(content string, namespace, name string) (string, bool) {
	match := dependencyPattern(namespace, name).FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// RewriteDependencyLine pins every import token of the package to
// version and returns the rewritten content together with the number of
// tokens that matched. Zero matches leaves the content untouched, so the
// caller can decide whether that is an error.
func RewriteDependencyLine(content string, namespace, name, version string) (string, int) {
	pattern := dependencyPattern(namespace, name)
	count := len(pattern.FindAllString(content, -1))
	if count == 0 {
		return content, 0
	}
	rewritten := pattern.ReplaceAllLiteralString(content, shared.DependencyLine(namespace, name, version))
	return rewritten, count
}
