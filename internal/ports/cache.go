package ports

import "notebookctl/internal/types"

type PackageCachePort interface {
	ListVersions(packageDir string) ([]string, error)
	ListPackages(cacheRoot string) ([]types.InstalledPackage, error)
	VersionExists(versionDir string) bool
	InstallPackage(srcDir string, versionDir string) error
	RemoveVersion(versionDir string) error
}
