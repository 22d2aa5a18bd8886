package app

import (
	"path/filepath"
	"strings"

	"notebookctl/internal/adapters"
	"notebookctl/internal/types"
)

// projectContext carries the resolved locations of one invocation: the
// project directory, its loaded config, and the package cache root after
// applying the flag, config, and platform default in that order.
type projectContext struct {
	Dir        string
	ConfigPath string
	Config     types.Config
	CacheRoot  string
}

func (s Service) loadProject(projectDir string, configPath string, cacheDir string) (projectContext, error) {
	dir := strings.TrimSpace(projectDir)
	if dir == "" {
		dir = "."
		if s.Locator != nil {
			if root, err := s.Locator.FindProjectRoot("."); err == nil {
				dir = root
			}
		}
	}
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = filepath.Join(dir, "notebook.yaml")
	}
	cfg, err := s.Config.LoadConfig(path)
	if err != nil {
		return projectContext{}, err
	}
	root := strings.TrimSpace(cacheDir)
	if root == "" {
		root = cfg.CacheDir
	}
	if root == "" {
		root = adapters.DefaultCacheRoot()
	}
	return projectContext{Dir: dir, ConfigPath: path, Config: cfg, CacheRoot: root}, nil
}

// document resolves a project relative document path, which config files
// spell with forward slashes.
func (p projectContext) document(rel string) string {
	return filepath.Join(p.Dir, filepath.FromSlash(rel))
}

func (p projectContext) packageDir() string {
	return filepath.Join(p.CacheRoot, p.Config.Template.Namespace, p.Config.Template.Name)
}

func (p projectContext) versionDir(version string) string {
	return filepath.Join(p.packageDir(), version)
}
