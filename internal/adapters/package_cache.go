package adapters

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"notebookctl/internal/ports"
	"notebookctl/internal/types"
)

type PackageCacheAdapter struct{}

func NewPackageCacheAdapter() PackageCacheAdapter {
	return PackageCacheAdapter{}
}

// DefaultCacheRoot returns the local Typst package directory,
// {data-dir}/typst/packages, the same location the compiler reads
// "@local" imports from.
func DefaultCacheRoot() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "typst", "packages")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "typst", "packages")
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "typst", "packages")
	}
	return filepath.Join(home, ".local", "share", "typst", "packages")
}

// ListVersions returns the version directories of one package in
// directory order, which os.ReadDir sorts lexically.
func (a PackageCacheAdapter) ListVersions(packageDir string) ([]string, error) {
	entries, err := os.ReadDir(packageDir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package cache directory not found").
			WithCause(err)
	}
	var versions []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		versions = append(versions, entry.Name())
	}
	return versions, nil
}

func (a PackageCacheAdapter) ListPackages(cacheRoot string) ([]types.InstalledPackage, error) {
	namespaces, err := os.ReadDir(cacheRoot)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package cache directory not found").
			WithCause(err)
	}
	var packages []types.InstalledPackage
	for _, namespace := range namespaces {
		if !namespace.IsDir() {
			continue
		}
		names, err := os.ReadDir(filepath.Join(cacheRoot, namespace.Name()))
		if err != nil {
			continue
		}
		for _, name := range names {
			if !name.IsDir() {
				continue
			}
			versions, err := a.ListVersions(filepath.Join(cacheRoot, namespace.Name(), name.Name()))
			if err != nil || len(versions) == 0 {
				continue
			}
			packages = append(packages, types.InstalledPackage{
				Namespace: namespace.Name(),
				Name:      name.Name(),
				Versions:  versions,
			})
		}
	}
	return packages, nil
}

func (a PackageCacheAdapter) VersionExists(versionDir string) bool {
	info, err := os.Stat(versionDir)
	return err == nil && info.IsDir()
}

// InstallPackage copies a package directory into the cache. The
// destination must not exist; the caller removes it first for forced
// reinstalls.
func (a PackageCacheAdapter) InstallPackage(srcDir string, versionDir string) error {
	if err := os.MkdirAll(versionDir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create package version directory").
			WithCause(err)
	}
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		dest := filepath.Join(versionDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}
		return copyPackageFile(path, dest)
	})
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to copy package into cache").
			WithCause(err)
	}
	return nil
}

func (a PackageCacheAdapter) RemoveVersion(versionDir string) error {
	if err := os.RemoveAll(versionDir); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to remove package version").
			WithCause(err)
	}
	return nil
}

func copyPackageFile(srcPath string, destPath string) error {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer srcFile.Close()
	destFile, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer destFile.Close()
	_, err = io.Copy(destFile, srcFile)
	return err
}

var _ ports.PackageCachePort = PackageCacheAdapter{}
