package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"notebookctl/internal/types"
)

type ConfigChecker struct{}

var packageNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

func NewConfigChecker() ConfigChecker {
	return ConfigChecker{}
}

func (c ConfigChecker) ValidateConfig(ctx context.Context, cfg types.Config) error {
	assert.NotEmpty(ctx, cfg.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, string(cfg.Kind), "kind must be set")
	assert.NotEmpty(ctx, cfg.Metadata.Name, "metadata.name must be set")
	if cfg.Kind != types.ConfigKindNotebook {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("config kind must be notebook, found %s", cfg.Kind))
	}
	if err := validateTemplateRef(cfg.Template); err != nil {
		return err
	}
	if err := validateNotebook(cfg.Notebook); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Str("notebook", cfg.Metadata.Name).Msg("config validated")
	return nil
}

func validateTemplateRef(ref types.TemplateRef) error {
	if strings.TrimSpace(ref.Namespace) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("template.namespace must not be empty")
	}
	if !packageNamePattern.MatchString(ref.Namespace) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("template.namespace %q is not a valid package namespace", ref.Namespace))
	}
	if strings.TrimSpace(ref.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("template.name must not be empty")
	}
	if !packageNamePattern.MatchString(ref.Name) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("template.name %q is not a valid package name", ref.Name))
	}
	if ref.Require != "" {
		if _, err := pep440.NewSpecifiers(ref.Require); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("template.require %q is not a valid specifier set", ref.Require)).
				WithCause(err)
		}
	}
	return nil
}

func validateNotebook(notebook types.Notebook) error {
	if strings.TrimSpace(notebook.Team) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("notebook.team must not be empty")
	}
	if strings.TrimSpace(notebook.Season) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("notebook.season must not be empty")
	}
	if strings.TrimSpace(notebook.Year) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("notebook.year must not be empty")
	}
	if _, ok := ThemeByName(notebook.Theme); !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("notebook.theme must be one of: %s", strings.Join(ThemeNames(), ", ")))
	}
	return nil
}
