package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notebookctl/internal/core"
	"notebookctl/internal/types"
)

func TestEntryNewScaffoldsDocumentAndInclude(t *testing.T) {
	dir := t.TempDir()
	seedProject(t, dir)

	service := NewService()
	result, err := service.EntryNew(t.Context(), EntryNewRequest{
		ProjectDir: dir,
		Title:      "Drive Train",
		Type:       "build",
		Date:       "2026-01-15",
		Author:     "Alex Doe",
		Witness:    "Sam Lee",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "entries", "drive_train", "drive_train.typ"), result.EntryPath)
	assert.Equal(t, "/entries/drive_train/drive_train.typ", result.Include)
	assert.Equal(t, types.SectionBody, result.Section)
	assert.Equal(t, "build", result.Type)

	content, err := os.ReadFile(result.EntryPath)
	require.NoError(t, err)
	entry, err := core.ParseEntry(string(content))
	require.NoError(t, err)
	want := types.Entry{
		Section: types.SectionBody,
		Title:   "Drive Train",
		Type:    "build",
		Date:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Author:  "Alex Doe",
		Witness: "Sam Lee",
	}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Fatalf("unexpected entry (-want +got):\n%s", diff)
	}

	index, err := os.ReadFile(filepath.Join(dir, "entries", "entries.typ"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `#include "/entries/drive_train/drive_train.typ"`)
}

func TestEntryNewNestedTitle(t *testing.T) {
	dir := t.TempDir()
	seedProject(t, dir)

	service := NewService()
	result, err := service.EntryNew(t.Context(), EntryNewRequest{
		ProjectDir: dir,
		Title:      "Robot/Drive Train",
		Type:       "build",
		Author:     "Alex Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "entries", "robot", "drive_train", "drive_train.typ"), result.EntryPath)
	assert.Equal(t, "/entries/robot/drive_train/drive_train.typ", result.Include)

	content, err := os.ReadFile(result.EntryPath)
	require.NoError(t, err)
	entry, err := core.ParseEntry(string(content))
	require.NoError(t, err)
	assert.Equal(t, "Drive Train", entry.Title)
}

func TestEntryNewSecondRunAlreadyExists(t *testing.T) {
	dir := t.TempDir()
	seedProject(t, dir)

	service := NewService()
	req := EntryNewRequest{ProjectDir: dir, Title: "Kickoff", Type: "notebook", Author: "Alex Doe"}
	_, err := service.EntryNew(t.Context(), req)
	require.NoError(t, err)

	_, err = service.EntryNew(t.Context(), req)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "document already exists")
}

func TestEntryNewBodyRequiresType(t *testing.T) {
	dir := t.TempDir()
	seedProject(t, dir)

	service := NewService()
	_, err := service.EntryNew(t.Context(), EntryNewRequest{
		ProjectDir: dir,
		Title:      "Kickoff",
		Author:     "Alex Doe",
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "body entries require an entry type")
}

func TestEntryNewRejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	seedProject(t, dir)

	service := NewService()
	_, err := service.EntryNew(t.Context(), EntryNewRequest{
		ProjectDir: dir,
		Title:      "Kickoff",
		Type:       "paint",
		Author:     "Alex Doe",
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), `no entry type "paint"`)
}

func TestEntryNewFrontmatterNeedsNoType(t *testing.T) {
	dir := t.TempDir()
	seedProject(t, dir)

	service := NewService()
	result, err := service.EntryNew(t.Context(), EntryNewRequest{
		ProjectDir: dir,
		Title:      "Team Introduction",
		Section:    "frontmatter",
		Author:     "Alex Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, types.SectionFrontmatter, result.Section)
	assert.Empty(t, result.Type)
}

func TestEntryNewDefaultsDateToClock(t *testing.T) {
	dir := t.TempDir()
	seedProject(t, dir)

	service := NewService()
	service.Clock = func() time.Time {
		return time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	}
	result, err := service.EntryNew(t.Context(), EntryNewRequest{
		ProjectDir: dir,
		Title:      "Kickoff",
		Type:       "notebook",
		Author:     "Alex Doe",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(result.EntryPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "date: datetime(year: 2026, month: 02, day: 03),")
}

func TestEntryTypesForConfiguredTheme(t *testing.T) {
	dir := t.TempDir()
	seedProject(t, dir)

	service := NewService()
	result, err := service.EntryTypes(EntryTypesRequest{ProjectDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "radial", result.Requested)
	assert.Equal(t, "radial", result.Theme)
	assert.False(t, result.FellBack)
	require.NotEmpty(t, result.Types)
	assert.Equal(t, "identify", result.Types[0].Name)
}

func TestEntryTypesFallsBackForDefaultTheme(t *testing.T) {
	dir := t.TempDir()
	seedProject(t, dir)
	writeProjectFile(t, filepath.Join(dir, "notebook.yaml"),
		strings.Replace(sampleConfigYAML, "theme: radial", "theme: default", 1))

	service := NewService()
	result, err := service.EntryTypes(EntryTypesRequest{ProjectDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "default", result.Requested)
	assert.Equal(t, "radial", result.Theme)
	assert.True(t, result.FellBack)
}
