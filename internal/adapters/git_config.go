package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"notebookctl/internal/ports"
	"notebookctl/internal/shared"
)

type GitConfigAdapter struct{}

func NewGitConfigAdapter() GitConfigAdapter {
	return GitConfigAdapter{}
}

// UserName returns the configured git user.name, the default author for
// new entries.
func (a GitConfigAdapter) UserName(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "config", "--get", "user.name")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("git user.name not configured").
			WithCause(shared.CommandError(output, err))
	}
	return strings.TrimSpace(string(output)), nil
}

var _ ports.GitConfigPort = GitConfigAdapter{}
