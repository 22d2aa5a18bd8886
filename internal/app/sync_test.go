package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const requireConfigYAML = `api_version: v1
kind: notebook
metadata:
  name: exothermic
template:
  namespace: local
  name: notebookinator
  require: ">=2.0"
notebook:
  team: Exothermic
  season: High Stakes
  year: 2025-2026
  theme: radial
`

func TestSyncPinsInstalledVersion(t *testing.T) {
	dir := t.TempDir()
	cache := t.TempDir()
	seedProject(t, dir)
	seedCacheVersions(t, cache, "1.2.3")

	service := NewService()
	result, err := service.Sync(t.Context(), SyncRequest{ProjectDir: dir, CacheDir: cache})
	require.NoError(t, err)
	assert.Equal(t, "local/notebookinator", result.Package)
	assert.Equal(t, "0.1.0", result.Previous)
	assert.Equal(t, "1.2.3", result.Selected)
	assert.Equal(t, 1, result.Replacements)
	assert.True(t, result.Changed)

	content, err := os.ReadFile(filepath.Join(dir, "packages.typ"))
	require.NoError(t, err)
	if diff := cmp.Diff("#import \"@local/notebookinator:1.2.3\": *\n", string(content)); diff != "" {
		t.Fatalf("unexpected imports content (-want +got):\n%s", diff)
	}
}

func TestSyncTakesFirstDirectoryEntry(t *testing.T) {
	dir := t.TempDir()
	cache := t.TempDir()
	seedProject(t, dir)
	seedCacheVersions(t, cache, "0.3.1", "1.2.3")

	service := NewService()
	result, err := service.Sync(t.Context(), SyncRequest{ProjectDir: dir, CacheDir: cache})
	require.NoError(t, err)
	assert.Equal(t, "0.3.1", result.Selected)
}

func TestSyncSelectLatest(t *testing.T) {
	dir := t.TempDir()
	cache := t.TempDir()
	seedProject(t, dir)
	seedCacheVersions(t, cache, "0.3.1", "1.2.3", "1.10.0")

	service := NewService()
	result, err := service.Sync(t.Context(), SyncRequest{ProjectDir: dir, CacheDir: cache, Strategy: "latest"})
	require.NoError(t, err)
	assert.Equal(t, "1.10.0", result.Selected)
}

func TestSyncSecondRunReportsNoChange(t *testing.T) {
	dir := t.TempDir()
	cache := t.TempDir()
	seedProject(t, dir)
	seedCacheVersions(t, cache, "1.2.3")

	service := NewService()
	first, err := service.Sync(t.Context(), SyncRequest{ProjectDir: dir, CacheDir: cache})
	require.NoError(t, err)
	require.True(t, first.Changed)

	second, err := service.Sync(t.Context(), SyncRequest{ProjectDir: dir, CacheDir: cache})
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", second.Previous)
	assert.Equal(t, "1.2.3", second.Selected)
	assert.Equal(t, 1, second.Replacements)
	assert.False(t, second.Changed)
}

func TestSyncDryRunLeavesDocumentAlone(t *testing.T) {
	dir := t.TempDir()
	cache := t.TempDir()
	seedProject(t, dir)
	seedCacheVersions(t, cache, "1.2.3")

	service := NewService()
	result, err := service.Sync(t.Context(), SyncRequest{ProjectDir: dir, CacheDir: cache, DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.True(t, result.Changed)

	content, err := os.ReadFile(filepath.Join(dir, "packages.typ"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "@local/notebookinator:0.1.0")
}

func TestSyncStrictRequireRejectsVersion(t *testing.T) {
	dir := t.TempDir()
	cache := t.TempDir()
	seedProject(t, dir)
	writeProjectFile(t, filepath.Join(dir, "notebook.yaml"), requireConfigYAML)
	seedCacheVersions(t, cache, "1.2.3")

	service := NewService()
	_, err := service.Sync(t.Context(), SyncRequest{ProjectDir: dir, CacheDir: cache, StrictRequire: true})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "version constraint not satisfied")
}

func TestSyncUnsatisfiedRequireWarnsWithoutStrict(t *testing.T) {
	dir := t.TempDir()
	cache := t.TempDir()
	seedProject(t, dir)
	writeProjectFile(t, filepath.Join(dir, "notebook.yaml"), requireConfigYAML)
	seedCacheVersions(t, cache, "1.2.3")

	service := NewService()
	result, err := service.Sync(t.Context(), SyncRequest{ProjectDir: dir, CacheDir: cache})
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", result.Selected)
	assert.True(t, result.Changed)
}

func TestSyncWithoutDependencyLine(t *testing.T) {
	dir := t.TempDir()
	cache := t.TempDir()
	seedProject(t, dir)
	writeProjectFile(t, filepath.Join(dir, "packages.typ"), "#import \"@preview/cetz:0.2.2\": *\n")
	seedCacheVersions(t, cache, "1.2.3")

	service := NewService()
	result, err := service.Sync(t.Context(), SyncRequest{ProjectDir: dir, CacheDir: cache})
	require.NoError(t, err)
	assert.Zero(t, result.Replacements)
	assert.False(t, result.Changed)

	content, err := os.ReadFile(filepath.Join(dir, "packages.typ"))
	require.NoError(t, err)
	assert.Equal(t, "#import \"@preview/cetz:0.2.2\": *\n", string(content))
}

func TestSyncMissingCacheDirectory(t *testing.T) {
	dir := t.TempDir()
	seedProject(t, dir)

	service := NewService()
	_, err := service.Sync(t.Context(), SyncRequest{ProjectDir: dir, CacheDir: filepath.Join(dir, "no-cache")})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "package cache directory not found")
}
