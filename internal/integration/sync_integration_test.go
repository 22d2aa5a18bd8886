package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"notebookctl/internal/adapters"
	"notebookctl/internal/core"
	"notebookctl/internal/types"
)

// TestSyncIntegration wires the adapters and core pieces of the sync
// pipeline directly, below the app service: load the fixture config,
// list a seeded cache, select a version, and rewrite the imports file.
func TestSyncIntegration(t *testing.T) {
	root := repoRoot(t)

	configAdapter := adapters.NewConfigFileAdapter()
	cfg, err := configAdapter.LoadConfig(filepath.Join(root, "fixtures", "notebook-sample", "notebook.yaml"))
	require.NoError(t, err)

	checker := core.NewConfigChecker()
	require.NoError(t, checker.ValidateConfig(t.Context(), cfg))

	cacheRoot := t.TempDir()
	for _, version := range []string{"0.3.1", "1.2.3"} {
		dir := filepath.Join(cacheRoot, cfg.Template.Namespace, cfg.Template.Name, version)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		manifest := "[package]\nname = \"" + cfg.Template.Name + "\"\nversion = \"" + version + "\"\nentrypoint = \"lib.typ\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "typst.toml"), []byte(manifest), 0o644))
	}

	cache := adapters.NewPackageCacheAdapter()
	versions, err := cache.ListVersions(filepath.Join(cacheRoot, cfg.Template.Namespace, cfg.Template.Name))
	require.NoError(t, err)
	require.Equal(t, []string{"0.3.1", "1.2.3"}, versions)

	selected, err := core.SelectVersion(cfg.Template.Ref(), versions, types.SelectFirst)
	require.NoError(t, err)
	require.Equal(t, "0.3.1", selected)

	documents := adapters.NewDocumentFileAdapter()
	projectDir := t.TempDir()
	importsPath := filepath.Join(projectDir, cfg.Paths.Imports)
	seed := core.ImportsDocument(cfg.Template.Namespace, cfg.Template.Name, "0.1.0")
	require.NoError(t, documents.WriteDocument(importsPath, seed))

	content, err := documents.ReadDocument(importsPath)
	require.NoError(t, err)
	rewritten, count := core.RewriteDependencyLine(content, cfg.Template.Namespace, cfg.Template.Name, selected)
	require.Equal(t, 1, count)
	require.NoError(t, documents.WriteDocument(importsPath, rewritten))

	updated, err := documents.ReadDocument(importsPath)
	require.NoError(t, err)
	pinned, ok := core.PinnedVersion(updated, cfg.Template.Namespace, cfg.Template.Name)
	require.True(t, ok)
	require.Equal(t, "0.3.1", pinned)

	composer := core.NewComposer()
	mainContent, err := composer.ComposeMain(t.Context(), cfg)
	require.NoError(t, err)
	require.NoError(t, core.VerifyIncludeOrder(mainContent, cfg.Paths))
}

func repoRoot(t *testing.T) string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}
