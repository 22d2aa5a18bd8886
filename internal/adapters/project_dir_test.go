package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDirAdapter_FindProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notebook.yaml"), []byte("kind: notebook"), 0644))
	nested := filepath.Join(root, "entries", "drive_train")
	require.NoError(t, os.MkdirAll(nested, 0755))

	adapter := NewProjectDirAdapter()
	found, err := adapter.FindProjectRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestProjectDirAdapter_FindProjectRootAtStart(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notebook.yaml"), []byte("kind: notebook"), 0644))

	adapter := NewProjectDirAdapter()
	found, err := adapter.FindProjectRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestProjectDirAdapter_FindProjectRootIgnoresDirectory(t *testing.T) {
	root := t.TempDir()
	// A directory named notebook.yaml is not a config file.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "notebook.yaml"), 0755))

	adapter := NewProjectDirAdapter()
	_, err := adapter.FindProjectRoot(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no notebook.yaml found")
}

func TestProjectDirAdapter_EmptyStartErrors(t *testing.T) {
	adapter := NewProjectDirAdapter()
	_, err := adapter.FindProjectRoot("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start directory is empty")
}

func TestProjectDirAdapter_FindEntryDocuments(t *testing.T) {
	root := t.TempDir()
	entries := filepath.Join(root, "entries")
	require.NoError(t, os.MkdirAll(filepath.Join(entries, "drive_train"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(entries, "entries.typ"), []byte("// index"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(entries, "drive_train", "drive_train.typ"), []byte("#show: create-entry.with()"), 0644))
	// Non-Typst files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(entries, "drive_train", "sketch.png"), []byte("png"), 0644))

	adapter := NewProjectDirAdapter()
	paths, err := adapter.FindEntryDocuments(entries)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
	assert.Contains(t, paths, filepath.Join(entries, "entries.typ"))
	assert.Contains(t, paths, filepath.Join(entries, "drive_train", "drive_train.typ"))
}

func TestProjectDirAdapter_SkipsToolDirs(t *testing.T) {
	root := t.TempDir()
	entries := filepath.Join(root, "entries")
	for _, dir := range []string{".git", ".typst-cache", "node_modules"} {
		ignored := filepath.Join(entries, dir)
		require.NoError(t, os.MkdirAll(ignored, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(ignored, "stray.typ"), []byte("x"), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(entries, "real.typ"), []byte("x"), 0644))

	adapter := NewProjectDirAdapter()
	paths, err := adapter.FindEntryDocuments(entries)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
	assert.Contains(t, paths[0], "real.typ")
}

func TestProjectDirAdapter_MissingEntriesDir(t *testing.T) {
	adapter := NewProjectDirAdapter()
	paths, err := adapter.FindEntryDocuments(filepath.Join(t.TempDir(), "entries"))
	require.NoError(t, err)
	assert.Nil(t, paths)
}

func TestProjectDirAdapter_EmptyEntriesDirErrors(t *testing.T) {
	adapter := NewProjectDirAdapter()
	_, err := adapter.FindEntryDocuments("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entries directory is empty")
}
