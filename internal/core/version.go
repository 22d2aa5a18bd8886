package core

import (
	"sort"
	"strings"

	debversion "github.com/knqyf263/go-deb-version"
)

// versionCache memoizes parsed version objects to avoid repeated parsing
// while sorting cache listings.
type versionCache struct {
	deb map[string]debversion.Version
}

func newVersionCache() *versionCache {
	return &versionCache{deb: map[string]debversion.Version{}}
}

// debVersion returns a parsed version, caching the result. Typst version
// triplets parse cleanly as Debian upstream versions, which gives the
// numeric ordering lexical sorting lacks (1.9.0 < 1.10.0).
func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

// compare returns -1, 0, or 1 comparing two version strings. Values that
// do not parse fall back to lexical comparison so sorting stays
// deterministic for odd directory names.
func (c *versionCache) compare(a string, b string) int {
	v1, err1 := c.debVersion(a)
	v2, err2 := c.debVersion(b)
	if err1 != nil || err2 != nil {
		return strings.Compare(a, b)
	}
	return v1.Compare(v2)
}

// SortVersionsDesc returns the versions ordered highest first. The input
// slice is left untouched.
func SortVersionsDesc(versions []string) []string {
	out := make([]string, len(versions))
	copy(out, versions)
	cache := newVersionCache()
	sort.SliceStable(out, func(i, j int) bool {
		return cache.compare(out[i], out[j]) > 0
	})
	return out
}

// LatestVersion returns the highest version of the listing, or false for
// an empty listing.
func LatestVersion(versions []string) (string, bool) {
	if len(versions) == 0 {
		return "", false
	}
	return SortVersionsDesc(versions)[0], true
}
