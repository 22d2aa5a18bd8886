package app

import (
	"context"

	"notebookctl/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	project, err := s.loadProject(req.ProjectDir, req.ConfigPath, "")
	if err != nil {
		return ValidateResult{}, err
	}
	checker := core.NewConfigChecker()
	if err := checker.ValidateConfig(ctx, project.Config); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Name:  project.Config.Metadata.Name,
		Theme: project.Config.Notebook.Theme,
	}, nil
}
