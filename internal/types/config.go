package types

// Config is the parsed notebook.yaml of a notebook project. It names the
// template package the project depends on and carries the descriptive
// options the composed main document passes to the template.
type Config struct {
	APIVersion string      `yaml:"api_version" json:"api_version" jsonschema:"required,enum=v1"`
	Kind       ConfigKind  `yaml:"kind" json:"kind" jsonschema:"required,enum=notebook"`
	Metadata   Metadata    `yaml:"metadata" json:"metadata" jsonschema:"required"`
	Template   TemplateRef `yaml:"template" json:"template" jsonschema:"required"`
	CacheDir   string      `yaml:"cache_dir,omitempty" json:"cache_dir,omitempty"`
	Paths      Paths       `yaml:"paths,omitempty" json:"paths,omitempty"`
	Notebook   Notebook    `yaml:"notebook" json:"notebook" jsonschema:"required"`
}

type Metadata struct {
	Name        string `yaml:"name" json:"name" jsonschema:"required"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// TemplateRef identifies the template package inside the package cache.
// Namespace and Name form the dependency line prefix in the imports file,
// e.g. "@local/notebookinator:".
type TemplateRef struct {
	Namespace string `yaml:"namespace" json:"namespace" jsonschema:"required"`
	Name      string `yaml:"name" json:"name" jsonschema:"required"`

	// Require is an optional PEP 440 style specifier set such as
	// ">=1.0,<2.0". Sync warns when the selected cache version falls
	// outside of it and fails instead under --strict-require.
	Require string `yaml:"require,omitempty" json:"require,omitempty"`
}

// Paths locates the project documents relative to the project root.
// Empty fields fall back to the conventional layout.
type Paths struct {
	Imports     string `yaml:"imports,omitempty" json:"imports,omitempty"`
	Main        string `yaml:"main,omitempty" json:"main,omitempty"`
	Frontmatter string `yaml:"frontmatter,omitempty" json:"frontmatter,omitempty"`
	Entries     string `yaml:"entries,omitempty" json:"entries,omitempty"`
	Appendix    string `yaml:"appendix,omitempty" json:"appendix,omitempty"`
}

// Notebook holds the arguments for the template transform of the main
// document. Year is passed through verbatim, so season spans like
// "2025-2026" stay intact.
type Notebook struct {
	Team   string `yaml:"team" json:"team" jsonschema:"required"`
	Season string `yaml:"season" json:"season" jsonschema:"required"`
	Year   string `yaml:"year" json:"year" jsonschema:"required"`
	Theme  string `yaml:"theme" json:"theme" jsonschema:"required"`
}

const (
	DefaultImportsPath     = "packages.typ"
	DefaultMainPath        = "main.typ"
	DefaultFrontmatterPath = "frontmatter.typ"
	DefaultEntriesPath     = "entries/entries.typ"
	DefaultAppendixPath    = "appendix.typ"
)

// WithDefaults returns the paths with empty fields replaced by the
// conventional layout.
func (p Paths) WithDefaults() Paths {
	if p.Imports == "" {
		p.Imports = DefaultImportsPath
	}
	if p.Main == "" {
		p.Main = DefaultMainPath
	}
	if p.Frontmatter == "" {
		p.Frontmatter = DefaultFrontmatterPath
	}
	if p.Entries == "" {
		p.Entries = DefaultEntriesPath
	}
	if p.Appendix == "" {
		p.Appendix = DefaultAppendixPath
	}
	return p
}

// Ref renders the package reference as "namespace/name".
func (t TemplateRef) Ref() string {
	return t.Namespace + "/" + t.Name
}
