package app

import (
	"context"

	"notebookctl/internal/core"
)

// Compose regenerates the main document from the notebook config. The
// main document is generated output; compose always overwrites it.
func (s Service) Compose(ctx context.Context, req ComposeRequest) (ComposeResult, error) {
	project, err := s.loadProject(req.ProjectDir, req.ConfigPath, "")
	if err != nil {
		return ComposeResult{}, err
	}
	checker := core.NewConfigChecker()
	if err := checker.ValidateConfig(ctx, project.Config); err != nil {
		return ComposeResult{}, err
	}
	composer := core.NewComposer()
	content, err := composer.ComposeMain(ctx, project.Config)
	if err != nil {
		return ComposeResult{}, err
	}
	mainPath := project.document(project.Config.Paths.Main)
	if err := s.Documents.WriteDocument(mainPath, content); err != nil {
		return ComposeResult{}, err
	}
	return ComposeResult{MainPath: mainPath, Theme: project.Config.Notebook.Theme}, nil
}
