package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"

	"notebookctl/internal/core"
)

// Render compiles the notebook to PDF. Before invoking the compiler it
// collects every missing input into one aggregated error, so a broken
// project reports all problems in a single run.
func (s Service) Render(ctx context.Context, req RenderRequest) (RenderResult, error) {
	project, err := s.loadProject(req.ProjectDir, req.ConfigPath, req.CacheDir)
	if err != nil {
		return RenderResult{}, err
	}
	cfg := project.Config
	paths := cfg.Paths

	var merr *multierror.Error
	mainPath := project.document(paths.Main)
	if !s.Documents.DocumentExists(mainPath) {
		merr = multierror.Append(merr, fmt.Errorf("main document missing: %s", mainPath))
	} else if content, err := s.Documents.ReadDocument(mainPath); err != nil {
		merr = multierror.Append(merr, err)
	} else if err := core.VerifyIncludeOrder(content, paths); err != nil {
		merr = multierror.Append(merr, err)
	}
	for _, rel := range []string{paths.Frontmatter, paths.Entries, paths.Appendix} {
		path := project.document(rel)
		if !s.Documents.DocumentExists(path) {
			merr = multierror.Append(merr, fmt.Errorf("section document missing: %s", path))
		}
	}
	importsPath := project.document(paths.Imports)
	if content, err := s.Documents.ReadDocument(importsPath); err != nil {
		merr = multierror.Append(merr, err)
	} else if pinned, ok := core.PinnedVersion(content, cfg.Template.Namespace, cfg.Template.Name); !ok {
		merr = multierror.Append(merr, fmt.Errorf("imports file has no dependency line for %s", cfg.Template.Ref()))
	} else if !s.Cache.VersionExists(project.versionDir(pinned)) {
		merr = multierror.Append(merr, fmt.Errorf("pinned version %s of %s is not installed in the package cache", pinned, cfg.Template.Ref()))
	}
	if !s.Renderer.Available() {
		merr = multierror.Append(merr, fmt.Errorf("typst binary not found in PATH"))
	}
	if merr != nil {
		return RenderResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("missing render inputs").
			WithCause(merr)
	}

	output := strings.TrimSpace(req.OutputPath)
	if output == "" {
		output = strings.TrimSuffix(paths.Main, ".typ") + ".pdf"
	}
	if err := s.Renderer.Compile(ctx, project.Dir, paths.Main, output); err != nil {
		return RenderResult{}, err
	}
	log.Ctx(ctx).Debug().Str("output", output).Msg("notebook rendered")
	outputPath := output
	if !filepath.IsAbs(outputPath) {
		outputPath = project.document(output)
	}
	return RenderResult{OutputPath: outputPath}, nil
}
