package app

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"notebookctl/internal/core"
	"notebookctl/internal/types"
)

// Inspect summarizes the state of a project: the pinned template
// version, whether it is installed, the composition of the main
// document, and the entries grouped by section and type.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	project, err := s.loadProject(req.ProjectDir, req.ConfigPath, req.CacheDir)
	if err != nil {
		return InspectResult{}, err
	}
	cfg := project.Config
	result := InspectResult{
		Name:     cfg.Metadata.Name,
		Template: cfg.Template.Ref(),
		Theme:    cfg.Notebook.Theme,
	}

	if content, err := s.Documents.ReadDocument(project.document(cfg.Paths.Imports)); err == nil {
		if pinned, ok := core.PinnedVersion(content, cfg.Template.Namespace, cfg.Template.Name); ok {
			result.Pinned = pinned
			result.PinnedInstalled = s.Cache.VersionExists(project.versionDir(pinned))
		}
	}
	if versions, err := s.Cache.ListVersions(project.packageDir()); err == nil {
		result.InstalledVersions = len(versions)
	}
	if content, err := s.Documents.ReadDocument(project.document(cfg.Paths.Main)); err == nil {
		result.ComposedOK = core.VerifyIncludeOrder(content, cfg.Paths) == nil
	}

	indexContent, err := s.Documents.ReadDocument(project.document(cfg.Paths.Entries))
	if err != nil {
		return InspectResult{}, err
	}
	sectionCounts := map[types.Section]int{}
	typeCounts := map[string]int{}
	included := map[string]bool{}
	for _, include := range core.ParseIncludes(indexContent) {
		entryPath := project.document(strings.TrimPrefix(include, "/"))
		included[filepath.Clean(entryPath)] = true
		content, err := s.Documents.ReadDocument(entryPath)
		if err != nil {
			result.MissingIncludes = append(result.MissingIncludes, include)
			continue
		}
		entry, err := core.ParseEntry(content)
		if err != nil {
			result.MalformedEntries = append(result.MalformedEntries, include)
			continue
		}
		result.EntryCount++
		sectionCounts[entry.Section]++
		if entry.Type != "" {
			typeCounts[entry.Type]++
		}
	}
	for _, section := range types.Sections() {
		if count, ok := sectionCounts[section]; ok {
			result.Sections = append(result.Sections, SectionCount{Section: section, Count: count})
		}
	}
	for _, name := range sortedKeys(typeCounts) {
		result.Types = append(result.Types, EntryTypeCount{Type: name, Count: typeCounts[name]})
	}
	result.OrphanedEntries = s.orphanedEntries(project, included)
	return result, nil
}

// orphanedEntries lists entry documents that exist on disk but are not
// referenced by the entries index. The index itself does not count.
func (s Service) orphanedEntries(project projectContext, included map[string]bool) []string {
	if s.Locator == nil {
		return nil
	}
	indexPath := filepath.Clean(project.document(project.Config.Paths.Entries))
	docs, err := s.Locator.FindEntryDocuments(filepath.Dir(indexPath))
	if err != nil {
		return nil
	}
	var orphans []string
	for _, doc := range docs {
		cleaned := filepath.Clean(doc)
		if cleaned == indexPath || included[cleaned] {
			continue
		}
		rel, relErr := filepath.Rel(project.Dir, cleaned)
		if relErr != nil {
			rel = cleaned
		}
		orphans = append(orphans, "/"+filepath.ToSlash(rel))
	}
	return orphans
}

func sortedKeys[K comparable, V any](input map[K]V) []K {
	keys := make([]K, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}
