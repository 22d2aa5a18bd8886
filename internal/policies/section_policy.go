package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"notebookctl/internal/types"
)

// ValidateEntry checks the section and type combination of a new entry.
// Body entries carry a type from the theme table; frontmatter and
// appendix entries may leave it empty.
func ValidateEntry(entry types.Entry, theme ThemePolicy) error {
	switch entry.Section {
	case types.SectionFrontmatter, types.SectionBody, types.SectionAppendix:
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown section %q, valid sections are frontmatter, body, appendix", entry.Section))
	}
	if entry.Section == types.SectionBody && strings.TrimSpace(entry.Type) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("body entries require an entry type")
	}
	if strings.TrimSpace(entry.Type) != "" {
		if _, err := theme.ResolveEntryType(entry.Type); err != nil {
			return err
		}
	}
	return nil
}
