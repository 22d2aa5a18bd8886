package types

// PackageManifest mirrors the typst.toml of a template package.
type PackageManifest struct {
	Package PackageInfo `toml:"package"`
}

type PackageInfo struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Entrypoint  string   `toml:"entrypoint"`
	Authors     []string `toml:"authors,omitempty"`
	License     string   `toml:"license,omitempty"`
	Description string   `toml:"description,omitempty"`
}

// InstalledPackage is one package found in the cache together with its
// version directories.
type InstalledPackage struct {
	Namespace string
	Name      string
	Versions  []string
}
