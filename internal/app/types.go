package app

import "notebookctl/internal/types"

type ValidateRequest struct {
	ProjectDir string
	ConfigPath string
}

type ValidateResult struct {
	Name  string
	Theme string
}

type SyncRequest struct {
	ProjectDir    string
	ConfigPath    string
	CacheDir      string
	Strategy      string
	StrictRequire bool
	DryRun        bool
}

type SyncResult struct {
	Package      string
	Previous     string
	Selected     string
	Replacements int
	Changed      bool
	DryRun       bool
}

type ComposeRequest struct {
	ProjectDir string
	ConfigPath string
}

type ComposeResult struct {
	MainPath string
	Theme    string
}

type RenderRequest struct {
	ProjectDir string
	ConfigPath string
	CacheDir   string
	OutputPath string
}

type RenderResult struct {
	OutputPath string
}

type InitRequest struct {
	Dir      string
	Name     string
	Team     string
	Season   string
	Year     string
	Theme    string
	CacheDir string
	Force    bool
}

type InitResult struct {
	Dir     string
	Name    string
	Synced  bool
	Version string
}

type EntryNewRequest struct {
	ProjectDir string
	ConfigPath string
	Title      string
	Section    string
	Type       string
	Date       string
	Author     string
	Witness    string
}

type EntryNewResult struct {
	EntryPath string
	Include   string
	Section   types.Section
	Type      string
}

type EntryTypesRequest struct {
	ProjectDir string
	ConfigPath string
}

type EntryTypesResult struct {
	Requested string
	Theme     string
	FellBack  bool
	Types     []types.EntryType
}

type InspectRequest struct {
	ProjectDir string
	ConfigPath string
	CacheDir   string
}

type SectionCount struct {
	Section types.Section
	Count   int
}

type EntryTypeCount struct {
	Type  string
	Count int
}

type InspectResult struct {
	Name              string
	Template          string
	Theme             string
	Pinned            string
	PinnedInstalled   bool
	InstalledVersions int
	ComposedOK        bool
	EntryCount        int
	Sections          []SectionCount
	Types             []EntryTypeCount
	MissingIncludes   []string
	MalformedEntries  []string
	OrphanedEntries   []string
}

type PackageListRequest struct {
	ProjectDir string
	ConfigPath string
	CacheDir   string
}

type PackageSummary struct {
	Namespace string
	Name      string
	Versions  []string
	Pinned    string
}

type PackageListResult struct {
	CacheRoot string
	Packages  []PackageSummary
}

type PackageInstallRequest struct {
	SrcDir    string
	CacheDir  string
	Namespace string
	Force     bool
}

type PackageInstallResult struct {
	Namespace string
	Name      string
	Version   string
	Dir       string
}

type PruneRequest struct {
	ProjectDir string
	ConfigPath string
	CacheDir   string
	KeepLast   int
	DryRun     bool
}

type PruneResult struct {
	Package     string
	KeepCount   int
	DeleteCount int
	Deleted     []string
	DryRun      bool
}
