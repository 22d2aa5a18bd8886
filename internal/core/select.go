package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"notebookctl/internal/types"
)

// SelectVersion picks the version sync pins from a package cache listing.
// The listing arrives in directory order, which is lexical, so the first
// strategy keeps the historical behavior of taking the lexically smallest
// entry. The latest strategy picks the highest version instead.
func SelectVersion(ref string, entries []string, strategy types.SelectStrategy) (string, error) {
	if len(entries) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no installed versions for %s", ref))
	}
	switch strategy {
	case types.SelectFirst, "":
		return entries[0], nil
	case types.SelectLatest:
		latest, _ := LatestVersion(entries)
		return latest, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported selection strategy %q", strategy))
	}
}
