package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"notebookctl/internal/core"
	"notebookctl/internal/scaffold"
	"notebookctl/internal/types"
)

// initialVersion is the placeholder pin written by init until the first
// sync against a populated package cache.
const initialVersion = "0.1.0"

// Init scaffolds a notebook project: config, imports file, the three
// section documents, and a composed main document. When the package
// cache already holds the template, the imports file is synced right
// away; otherwise the placeholder pin stays until the first sync.
func (s Service) Init(ctx context.Context, req InitRequest) (InitResult, error) {
	dir := strings.TrimSpace(req.Dir)
	if dir == "" {
		dir = "."
	}
	cfgPath := filepath.Join(dir, "notebook.yaml")
	if s.Documents.DocumentExists(cfgPath) && !req.Force {
		return InitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg("project already initialized: " + cfgPath)
	}

	cfg, err := s.buildInitConfig(ctx, dir, req)
	if err != nil {
		return InitResult{}, err
	}
	checker := core.NewConfigChecker()
	if err := checker.ValidateConfig(ctx, cfg); err != nil {
		return InitResult{}, err
	}

	paths := cfg.Paths.WithDefaults()
	if err := s.Documents.EnsureDir(dir); err != nil {
		return InitResult{}, err
	}
	if err := s.Config.WriteConfig(cfgPath, cfg); err != nil {
		return InitResult{}, err
	}
	imports := core.ImportsDocument(cfg.Template.Namespace, cfg.Template.Name, initialVersion)
	if err := s.seedDocument(filepath.Join(dir, filepath.FromSlash(paths.Imports)), imports, req.Force); err != nil {
		return InitResult{}, err
	}
	seeds := []struct {
		template string
		rel      string
	}{
		{scaffold.TemplateFrontmatter, paths.Frontmatter},
		{scaffold.TemplateEntries, paths.Entries},
		{scaffold.TemplateAppendix, paths.Appendix},
		{scaffold.TemplateGitignore, ".gitignore"},
	}
	for _, seed := range seeds {
		content, err := scaffold.Document(seed.template)
		if err != nil {
			return InitResult{}, err
		}
		path := filepath.Join(dir, filepath.FromSlash(seed.rel))
		if err := s.Documents.EnsureDir(filepath.Dir(path)); err != nil {
			return InitResult{}, err
		}
		if err := s.seedDocument(path, content, req.Force); err != nil {
			return InitResult{}, err
		}
	}

	composer := core.NewComposer()
	mainContent, err := composer.ComposeMain(ctx, cfg)
	if err != nil {
		return InitResult{}, err
	}
	if err := s.Documents.WriteDocument(filepath.Join(dir, filepath.FromSlash(paths.Main)), mainContent); err != nil {
		return InitResult{}, err
	}

	result := InitResult{Dir: dir, Name: cfg.Metadata.Name, Version: initialVersion}
	synced, err := s.Sync(ctx, SyncRequest{ProjectDir: dir, CacheDir: req.CacheDir})
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("initial sync skipped, keeping placeholder pin")
		return result, nil
	}
	result.Synced = true
	result.Version = synced.Selected
	return result, nil
}

// seedDocument writes scaffold content, leaving existing files alone
// unless force is set.
func (s Service) seedDocument(path string, content string, force bool) error {
	if s.Documents.DocumentExists(path) && !force {
		return nil
	}
	return s.Documents.WriteDocument(path, content)
}

func (s Service) buildInitConfig(ctx context.Context, dir string, req InitRequest) (types.Config, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return types.Config{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("cannot derive project name from directory").
				WithCause(err)
		}
		name = filepath.Base(abs)
	}
	year := strings.TrimSpace(req.Year)
	if year == "" {
		now := timeNow(s.Clock)
		year = fmt.Sprintf("%d-%d", now.Year(), now.Year()+1)
	}
	theme := strings.TrimSpace(req.Theme)
	if theme == "" {
		theme = "radial"
	}
	cfg := types.Config{
		APIVersion: "v1",
		Kind:       types.ConfigKindNotebook,
		Metadata:   types.Metadata{Name: name},
		Template:   types.TemplateRef{Namespace: "local", Name: "notebookinator"},
		Notebook: types.Notebook{
			Team:   strings.TrimSpace(req.Team),
			Season: strings.TrimSpace(req.Season),
			Year:   year,
			Theme:  theme,
		},
	}
	log.Ctx(ctx).Debug().Str("notebook", name).Str("theme", theme).Msg("init config built")
	return cfg, nil
}
