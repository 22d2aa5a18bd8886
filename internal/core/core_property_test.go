//go:build property
// +build property

package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDependencyLineProperties tests the imports file rewrite machinery
func TestDependencyLineProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	packageName := gen.RegexMatch(`^[a-z][a-z0-9-]{0,8}$`)
	versionPart := gen.IntRange(0, 20)

	// Property: a fresh imports document pins the version it was built with
	properties.Property("imports document roundtrip", prop.ForAll(
		func(namespace, name string, major, minor, patch int) bool {
			version := fmt.Sprintf("%d.%d.%d", major, minor, patch)
			content := ImportsDocument(namespace, name, version)
			pinned, ok := PinnedVersion(content, namespace, name)
			return ok && pinned == version
		},
		packageName, packageName, versionPart, versionPart, versionPart,
	))

	// Property: rewriting pins the requested version with exactly one match
	properties.Property("rewrite pins requested version", prop.ForAll(
		func(namespace, name string, major, minor, patch int) bool {
			version := fmt.Sprintf("%d.%d.%d", major, minor, patch)
			content := ImportsDocument(namespace, name, "0.1.0")
			rewritten, count := RewriteDependencyLine(content, namespace, name, version)
			if count != 1 {
				return false
			}
			pinned, ok := PinnedVersion(rewritten, namespace, name)
			return ok && pinned == version
		},
		packageName, packageName, versionPart, versionPart, versionPart,
	))

	// Property: rewriting to the already pinned version is a fixpoint
	properties.Property("rewrite is idempotent", prop.ForAll(
		func(namespace, name string, major, minor, patch int) bool {
			version := fmt.Sprintf("%d.%d.%d", major, minor, patch)
			content := ImportsDocument(namespace, name, "0.1.0")
			once, _ := RewriteDependencyLine(content, namespace, name, version)
			twice, count := RewriteDependencyLine(once, namespace, name, version)
			return count == 1 && once == twice
		},
		packageName, packageName, versionPart, versionPart, versionPart,
	))

	// Property: content without a dependency line never changes
	properties.Property("rewrite leaves unrelated content alone", prop.ForAll(
		func(namespace, name string, major, minor, patch int) bool {
			version := fmt.Sprintf("%d.%d.%d", major, minor, patch)
			content := "#import \"@preview/cetz:0.2.2\": *\n"
			rewritten, count := RewriteDependencyLine(content, namespace, name, version)
			return count == 0 && rewritten == content
		},
		gen.RegexMatch(`^[a-z][a-z0-9-]{2,8}$`), gen.RegexMatch(`^[x-z][a-z0-9]{2,8}$`),
		versionPart, versionPart, versionPart,
	))

	properties.TestingRun(t)
}

// TestVersionOrderingProperties tests the version comparison helpers
func TestVersionOrderingProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	versionGen := gopter.CombineGens(gen.IntRange(0, 20), gen.IntRange(0, 20), gen.IntRange(0, 20)).
		Map(func(values []interface{}) string {
			return fmt.Sprintf("%d.%d.%d", values[0], values[1], values[2])
		})

	// Property: comparison is antisymmetric and reflexive
	properties.Property("compare antisymmetry", prop.ForAll(
		func(a, b string) bool {
			cache := newVersionCache()
			ab := cache.compare(a, b)
			ba := cache.compare(b, a)
			return ab == -ba && cache.compare(a, a) == 0
		},
		versionGen, versionGen,
	))

	// Property: descending sort keeps the elements and leads with the latest
	properties.Property("sort is a permutation with the latest first", prop.ForAll(
		func(versions []string) bool {
			if len(versions) == 0 {
				return true
			}
			sorted := SortVersionsDesc(versions)
			if len(sorted) != len(versions) {
				return false
			}
			counts := map[string]int{}
			for _, v := range versions {
				counts[v]++
			}
			for _, v := range sorted {
				counts[v]--
			}
			for _, n := range counts {
				if n != 0 {
					return false
				}
			}
			latest, ok := LatestVersion(versions)
			return ok && latest == sorted[0]
		},
		gen.SliceOfN(6, versionGen),
	))

	properties.TestingRun(t)
}

// TestSlugProperties tests the entry title slugger
func TestSlugProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	titleGen := gen.RegexMatch(`^[A-Za-z]+( [A-Za-z]+)*$`)

	// Property: slugs stay within the directory safe alphabet
	properties.Property("slug alphabet", prop.ForAll(
		func(title string) bool {
			slug, err := Slugify(title)
			if err != nil {
				return false
			}
			for _, r := range slug {
				ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '/'
				if !ok {
					return false
				}
			}
			return true
		},
		titleGen,
	))

	// Property: slugging a slug changes nothing
	properties.Property("slug idempotence", prop.ForAll(
		func(title string) bool {
			slug, err := Slugify(title)
			if err != nil {
				return false
			}
			again, err := Slugify(slug)
			return err == nil && again == slug
		},
		titleGen,
	))

	// Property: the slug leaf matches the slug of the title leaf
	properties.Property("slug leaf consistency", prop.ForAll(
		func(first, second string) bool {
			title := first + "/" + second
			slug, err := Slugify(title)
			if err != nil {
				return false
			}
			leaf, err := Slugify(TitleLeaf(title))
			if err != nil {
				return false
			}
			return SlugLeaf(slug) == leaf && !strings.Contains(leaf, "/")
		},
		titleGen, titleGen,
	))

	properties.TestingRun(t)
}
