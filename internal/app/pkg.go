package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"notebookctl/internal/adapters"
	"notebookctl/internal/core"
	"notebookctl/internal/types"
)

// PackageList lists the packages installed in the cache. With a notebook
// config in reach, the pinned version of the project template is marked.
func (s Service) PackageList(ctx context.Context, req PackageListRequest) (PackageListResult, error) {
	root := strings.TrimSpace(req.CacheDir)
	var pinnedNamespace, pinnedName, pinned string
	project, err := s.loadProject(req.ProjectDir, req.ConfigPath, req.CacheDir)
	if err == nil {
		root = project.CacheRoot
		pinnedNamespace = project.Config.Template.Namespace
		pinnedName = project.Config.Template.Name
		if content, err := s.Documents.ReadDocument(project.document(project.Config.Paths.Imports)); err == nil {
			pinned, _ = core.PinnedVersion(content, pinnedNamespace, pinnedName)
		}
	} else {
		log.Ctx(ctx).Debug().Err(err).Msg("no notebook config, listing cache without pin marks")
	}
	if root == "" {
		root = adapters.DefaultCacheRoot()
	}

	packages, err := s.Cache.ListPackages(root)
	if err != nil {
		return PackageListResult{}, err
	}
	result := PackageListResult{CacheRoot: root}
	for _, pkg := range packages {
		summary := PackageSummary{
			Namespace: pkg.Namespace,
			Name:      pkg.Name,
			Versions:  core.SortVersionsDesc(pkg.Versions),
		}
		if pkg.Namespace == pinnedNamespace && pkg.Name == pinnedName {
			summary.Pinned = pinned
		}
		result.Packages = append(result.Packages, summary)
	}
	return result, nil
}

// PackageInstall copies a package directory into the cache under the
// name and version of its typst.toml.
func (s Service) PackageInstall(ctx context.Context, req PackageInstallRequest) (PackageInstallResult, error) {
	srcDir := strings.TrimSpace(req.SrcDir)
	if srcDir == "" {
		return PackageInstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package directory is required")
	}
	manifest, err := s.Manifest.LoadManifest(srcDir)
	if err != nil {
		return PackageInstallResult{}, err
	}
	namespace := strings.TrimSpace(req.Namespace)
	if namespace == "" {
		namespace = "local"
	}
	root := strings.TrimSpace(req.CacheDir)
	if root == "" {
		root = adapters.DefaultCacheRoot()
	}
	versionDir := filepath.Join(root, namespace, manifest.Package.Name, manifest.Package.Version)
	if s.Cache.VersionExists(versionDir) {
		if !req.Force {
			return PackageInstallResult{}, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("package %s/%s:%s already installed", namespace, manifest.Package.Name, manifest.Package.Version))
		}
		if err := s.Cache.RemoveVersion(versionDir); err != nil {
			return PackageInstallResult{}, err
		}
	}
	if err := s.Cache.InstallPackage(srcDir, versionDir); err != nil {
		return PackageInstallResult{}, err
	}
	log.Ctx(ctx).Debug().
		Str("package", namespace+"/"+manifest.Package.Name).
		Str("version", manifest.Package.Version).
		Msg("package installed")
	return PackageInstallResult{
		Namespace: namespace,
		Name:      manifest.Package.Name,
		Version:   manifest.Package.Version,
		Dir:       versionDir,
	}, nil
}

// PruneVersions removes old versions of the project template from the
// cache, keeping the newest KeepLast versions and never touching the
// pinned one.
func (s Service) PruneVersions(ctx context.Context, req PruneRequest) (PruneResult, error) {
	project, err := s.loadProject(req.ProjectDir, req.ConfigPath, req.CacheDir)
	if err != nil {
		return PruneResult{}, err
	}
	cfg := project.Config
	versions, err := s.Cache.ListVersions(project.packageDir())
	if err != nil {
		return PruneResult{}, err
	}
	var protect []string
	if content, err := s.Documents.ReadDocument(project.document(cfg.Paths.Imports)); err == nil {
		if pinned, ok := core.PinnedVersion(content, cfg.Template.Namespace, cfg.Template.Name); ok {
			protect = append(protect, pinned)
		}
	}
	plan := BuildVersionPrunePlan(versions, types.VersionRetentionPolicy{
		KeepLast:        req.KeepLast,
		ProtectVersions: protect,
		DryRun:          req.DryRun,
	})
	result := PruneResult{
		Package:     cfg.Template.Ref(),
		KeepCount:   len(plan.Keep),
		DeleteCount: len(plan.Delete),
		DryRun:      req.DryRun,
	}
	if req.DryRun {
		return result, nil
	}
	for _, version := range plan.Delete {
		if err := s.Cache.RemoveVersion(project.versionDir(version)); err != nil {
			return PruneResult{}, err
		}
		result.Deleted = append(result.Deleted, version)
	}
	result.DeleteCount = len(result.Deleted)
	return result, nil
}
