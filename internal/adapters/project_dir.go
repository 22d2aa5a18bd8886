package adapters

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"notebookctl/internal/ports"
)

type ProjectDirAdapter struct{}

func NewProjectDirAdapter() ProjectDirAdapter {
	return ProjectDirAdapter{}
}

// FindProjectRoot walks upward from start until it finds a directory
// containing notebook.yaml.
func (a ProjectDirAdapter) FindProjectRoot(start string) (string, error) {
	if start == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("start directory is empty")
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve start directory").
			WithCause(err)
	}
	for {
		candidate := filepath.Join(dir, "notebook.yaml")
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("no notebook.yaml found in " + start + " or any parent directory")
		}
		dir = parent
	}
}

func (a ProjectDirAdapter) FindEntryDocuments(dir string) ([]string, error) {
	var paths []string
	if dir == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("entries directory is empty")
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read entries directory").
			WithCause(err)
	}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if shouldSkipProjectDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".typ") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan entries directory").
			WithCause(err)
	}
	return paths, nil
}

func shouldSkipProjectDir(name string) bool {
	switch name {
	case ".git", ".typst-cache", "node_modules":
		return true
	default:
		return false
	}
}

var _ ports.ProjectLocatorPort = ProjectDirAdapter{}
