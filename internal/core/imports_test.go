package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportsDocument(t *testing.T) {
	content := ImportsDocument("local", "notebookinator", "0.1.0")
	if diff := cmp.Diff("#import \"@local/notebookinator:0.1.0\": *\n", content); diff != "" {
		t.Fatalf("unexpected imports document (-want +got):\n%s", diff)
	}
}

func TestPinnedVersion(t *testing.T) {
	content := "#import \"@local/notebookinator:1.2.3\": *\n"
	version, ok := PinnedVersion(content, "local", "notebookinator")
	require.True(t, ok)
	assert.Equal(t, "1.2.3", version)
}

func TestPinnedVersionNoMatch(t *testing.T) {
	_, ok := PinnedVersion("#import \"@preview/other:1.0.0\": *\n", "local", "notebookinator")
	assert.False(t, ok)
}

func TestPinnedVersionIgnoresOtherPackages(t *testing.T) {
	content := "#import \"@preview/cetz:0.2.0\": *\n#import \"@local/notebookinator:0.3.1\": *\n"
	version, ok := PinnedVersion(content, "local", "notebookinator")
	require.True(t, ok)
	assert.Equal(t, "0.3.1", version)
}

func TestRewriteDependencyLine(t *testing.T) {
	content := "#import \"@local/notebookinator:0.1.0\": *\n"
	rewritten, count := RewriteDependencyLine(content, "local", "notebookinator", "1.2.3")
	assert.Equal(t, 1, count)
	assert.Equal(t, "#import \"@local/notebookinator:1.2.3\": *\n", rewritten)
}

func TestRewriteDependencyLineMultipleTokens(t *testing.T) {
	content := "#import \"@local/notebookinator:0.1.0\": *\n" +
		"// pinned to @local/notebookinator:0.1.0\n"
	rewritten, count := RewriteDependencyLine(content, "local", "notebookinator", "1.2.3")
	assert.Equal(t, 2, count)
	assert.NotContains(t, rewritten, "0.1.0")
	assert.Contains(t, rewritten, "@local/notebookinator:1.2.3")
}

func TestRewriteDependencyLineNoMatch(t *testing.T) {
	content := "#import \"@preview/cetz:0.2.0\": *\n"
	rewritten, count := RewriteDependencyLine(content, "local", "notebookinator", "1.2.3")
	assert.Equal(t, 0, count)
	assert.Equal(t, content, rewritten)
}

func TestRewriteDependencyLineLeavesOtherPackagesAlone(t *testing.T) {
	content := "#import \"@preview/cetz:0.2.0\": *\n#import \"@local/notebookinator:0.1.0\": *\n"
	rewritten, count := RewriteDependencyLine(content, "local", "notebookinator", "1.2.3")
	assert.Equal(t, 1, count)
	assert.Contains(t, rewritten, "@preview/cetz:0.2.0")
	assert.Contains(t, rewritten, "@local/notebookinator:1.2.3")
}

func TestRewriteDependencyLineSameVersion(t *testing.T) {
	content := "#import \"@local/notebookinator:1.2.3\": *\n"
	rewritten, count := RewriteDependencyLine(content, "local", "notebookinator", "1.2.3")
	assert.Equal(t, 1, count)
	assert.Equal(t, content, rewritten)
}
