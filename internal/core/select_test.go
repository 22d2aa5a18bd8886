package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notebookctl/internal/types"
)

func TestSelectVersionFirstTakesDirectoryOrder(t *testing.T) {
	// Cache listings arrive lexically sorted, so first is the lexically
	// smallest entry even when a higher version is installed.
	selected, err := SelectVersion("local/notebookinator", []string{"0.3.1", "1.2.3"}, types.SelectFirst)
	require.NoError(t, err)
	assert.Equal(t, "0.3.1", selected)
}

func TestSelectVersionEmptyStrategyDefaultsToFirst(t *testing.T) {
	selected, err := SelectVersion("local/notebookinator", []string{"0.3.1", "1.2.3"}, "")
	require.NoError(t, err)
	assert.Equal(t, "0.3.1", selected)
}

func TestSelectVersionLatest(t *testing.T) {
	selected, err := SelectVersion("local/notebookinator", []string{"0.3.1", "1.2.3", "0.10.0"}, types.SelectLatest)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", selected)
}

func TestSelectVersionEmptyListing(t *testing.T) {
	_, err := SelectVersion("local/notebookinator", nil, types.SelectFirst)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "no installed versions for local/notebookinator")
}

func TestSelectVersionUnknownStrategy(t *testing.T) {
	_, err := SelectVersion("local/notebookinator", []string{"1.2.3"}, "newest")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
