package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	toml "github.com/pelletier/go-toml/v2"

	"notebookctl/internal/ports"
	"notebookctl/internal/types"
)

type ManifestTOMLAdapter struct{}

func NewManifestTOMLAdapter() ManifestTOMLAdapter {
	return ManifestTOMLAdapter{}
}

// LoadManifest reads the typst.toml of a package directory.
func (a ManifestTOMLAdapter) LoadManifest(dir string) (types.PackageManifest, error) {
	path := filepath.Join(dir, "typst.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PackageManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("typst.toml not found in " + dir).
			WithCause(err)
	}
	var manifest types.PackageManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return types.PackageManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse typst.toml").
			WithCause(err)
	}
	if strings.TrimSpace(manifest.Package.Name) == "" {
		return types.PackageManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("typst.toml missing package.name")
	}
	if strings.TrimSpace(manifest.Package.Version) == "" {
		return types.PackageManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("typst.toml missing package.version")
	}
	return manifest, nil
}

var _ ports.ManifestPort = ManifestTOMLAdapter{}
