package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"notebookctl/internal/types"
)

type Composer struct{}

func NewComposer() Composer {
	return Composer{}
}

// ComposeMain renders the main document of a notebook project: the
// imports line, the template show rule with the notebook options, and
// the three section includes in their fixed order.
func (c Composer) ComposeMain(ctx context.Context, cfg types.Config) (string, error) {
	theme, ok := ThemeByName(cfg.Notebook.Theme)
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown theme %q", cfg.Notebook.Theme))
	}
	paths := cfg.Paths.WithDefaults()

	var b strings.Builder
	fmt.Fprintf(&b, "#import %s: *\n", typstString(rootPath(paths.Imports)))
	fmt.Fprintf(&b, "#import themes.%s: %s-theme, components\n", theme.Name, theme.Name)
	b.WriteString("\n")
	b.WriteString("#show: notebook.with(\n")
	fmt.Fprintf(&b, "  theme: %s-theme,\n", theme.Name)
	fmt.Fprintf(&b, "  team-name: %s,\n", typstString(cfg.Notebook.Team))
	fmt.Fprintf(&b, "  season: %s,\n", typstString(cfg.Notebook.Season))
	fmt.Fprintf(&b, "  year: %s,\n", typstString(cfg.Notebook.Year))
	b.WriteString(")\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "#include %s\n", typstString(rootPath(paths.Frontmatter)))
	fmt.Fprintf(&b, "#include %s\n", typstString(rootPath(paths.Entries)))
	fmt.Fprintf(&b, "#include %s\n", typstString(rootPath(paths.Appendix)))

	log.Ctx(ctx).Debug().Str("theme", theme.Name).Str("main", paths.Main).Msg("main document composed")
	return b.String(), nil
}

var includePattern = regexp.MustCompile(`#include\s+"([^"]+)"`)

// ParseIncludes returns the include targets of a Typst document in
// source order.
func ParseIncludes(content string) []string {
	var out []string
	for _, match := range includePattern.FindAllStringSubmatch(content, -1) {
		out = append(out, match[1])
	}
	return out
}

// VerifyIncludeOrder checks that the main document includes exactly the
// three section documents, ordered frontmatter, entries, appendix.
func VerifyIncludeOrder(content string, paths types.Paths) error {
	paths = paths.WithDefaults()
	expected := []string{
		rootPath(paths.Frontmatter),
		rootPath(paths.Entries),
		rootPath(paths.Appendix),
	}
	includes := ParseIncludes(content)
	if len(includes) != len(expected) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("main document must include %d documents, found %d", len(expected), len(includes)))
	}
	for i, include := range includes {
		if include != expected[i] {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("main document includes out of order: want %s at position %d, found %s", expected[i], i+1, include))
		}
	}
	return nil
}

// rootPath renders a project relative path as a root relative Typst
// path, the form include and import lines use.
func rootPath(path string) string {
	return "/" + strings.TrimPrefix(path, "/")
}

// typstString quotes a value as a Typst string literal.
func typstString(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}
