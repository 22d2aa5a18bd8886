package core

import (
	"notebookctl/internal/types"
)

// themeRegistry lists the themes shipped by the notebookinator template
// in the order the interactive pickers present them. The default theme
// has no entry type table; callers fall back to the first theme that
// defines one.
var themeRegistry = []types.Theme{
	{Name: "default"},
	{
		Name: "radial",
		EntryTypes: []types.EntryType{
			{Name: "identify", Color: "#F25757"},
			{Name: "brainstorm", Color: "#FFD166"},
			{Name: "decide", Color: "#9B5DE5"},
			{Name: "build", Color: "#F4A261"},
			{Name: "program", Color: "#06D6A0"},
			{Name: "test", Color: "#118AB2"},
			{Name: "management", Color: "#8D99AE"},
			{Name: "notebook", Color: "#EF476F"},
		},
	},
	{
		Name: "linear",
		EntryTypes: []types.EntryType{
			{Name: "identify", Color: "#D64550"},
			{Name: "brainstorm", Color: "#E9C46A"},
			{Name: "decide", Color: "#8E7DBE"},
			{Name: "build", Color: "#E76F51"},
			{Name: "program", Color: "#2A9D8F"},
			{Name: "test", Color: "#457B9D"},
			{Name: "management", Color: "#6C757D"},
			{Name: "notebook", Color: "#C9184A"},
		},
	},
}

// Themes returns the built-in theme registry.
func Themes() []types.Theme {
	out := make([]types.Theme, len(themeRegistry))
	copy(out, themeRegistry)
	return out
}

// ThemeByName looks up a theme by its notebook.yaml identifier.
func ThemeByName(name string) (types.Theme, bool) {
	for _, theme := range themeRegistry {
		if theme.Name == name {
			return theme, true
		}
	}
	return types.Theme{}, false
}

// ThemeNames returns the identifiers of all registered themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themeRegistry))
	for _, theme := range themeRegistry {
		names = append(names, theme.Name)
	}
	return names
}
