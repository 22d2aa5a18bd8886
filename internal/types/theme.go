package types

// EntryType pairs an entry type name with the display color its theme
// uses on entry pages, as a hex string like "#F25757".
type EntryType struct {
	Name  string
	Color string
}

// Theme describes a template theme as far as the command line needs it:
// the identifier referenced from notebook.yaml and the entry type table.
// Themes without entry types leave EntryTypes nil; callers fall back to
// the first theme that defines one.
type Theme struct {
	Name       string
	EntryTypes []EntryType
}

// HasEntryTypes reports whether the theme defines its own entry type
// table.
func (t Theme) HasEntryTypes() bool {
	return len(t.EntryTypes) > 0
}
