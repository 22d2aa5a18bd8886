package ports

import "notebookctl/internal/types"

type ManifestPort interface {
	LoadManifest(dir string) (types.PackageManifest, error)
}
