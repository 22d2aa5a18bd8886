package app

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"notebookctl/internal/core"
	"notebookctl/internal/types"
)

// Sync pins the imports file of a project to a version installed in the
// package cache. The default strategy keeps the first directory entry of
// the listing; --select latest picks the highest version instead.
func (s Service) Sync(ctx context.Context, req SyncRequest) (SyncResult, error) {
	project, err := s.loadProject(req.ProjectDir, req.ConfigPath, req.CacheDir)
	if err != nil {
		return SyncResult{}, err
	}
	cfg := project.Config
	emitHints(checkSyncDefaultsHints(req, cfg))

	versions, err := s.Cache.ListVersions(project.packageDir())
	if err != nil {
		return SyncResult{}, err
	}
	selected, err := core.SelectVersion(cfg.Template.Ref(), versions, types.SelectStrategy(req.Strategy))
	if err != nil {
		return SyncResult{}, err
	}
	if latest, ok := core.LatestVersion(versions); ok && latest != selected {
		log.Ctx(ctx).Warn().
			Str("selected", selected).
			Str("latest", latest).
			Msg("selected version is not the highest installed version")
	}
	satisfied, err := core.CheckRequirement(selected, cfg.Template.Require)
	if err != nil {
		return SyncResult{}, err
	}
	if !satisfied {
		if req.StrictRequire {
			return SyncResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("version constraint not satisfied: %s does not match %q", selected, cfg.Template.Require))
		}
		log.Ctx(ctx).Warn().
			Str("version", selected).
			Str("require", cfg.Template.Require).
			Msg("selected version does not satisfy template require")
	}

	importsPath := project.document(cfg.Paths.Imports)
	content, err := s.Documents.ReadDocument(importsPath)
	if err != nil {
		return SyncResult{}, err
	}
	previous, _ := core.PinnedVersion(content, cfg.Template.Namespace, cfg.Template.Name)
	rewritten, count := core.RewriteDependencyLine(content, cfg.Template.Namespace, cfg.Template.Name, selected)
	result := SyncResult{
		Package:      cfg.Template.Ref(),
		Previous:     previous,
		Selected:     selected,
		Replacements: count,
		DryRun:       req.DryRun,
	}
	if count == 0 {
		log.Ctx(ctx).Warn().
			Str("imports", importsPath).
			Str("package", result.Package).
			Msg("no dependency line found, nothing to sync")
		return result, nil
	}
	result.Changed = rewritten != content
	if req.DryRun || !result.Changed {
		return result, nil
	}
	if err := s.Documents.WriteDocument(importsPath, rewritten); err != nil {
		return SyncResult{}, err
	}
	log.Ctx(ctx).Debug().
		Str("package", result.Package).
		Str("version", selected).
		Int("replacements", count).
		Msg("imports synced")
	return result, nil
}
