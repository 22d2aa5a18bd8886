package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"notebookctl/internal/types"
)

// RenderEntry builds the Typst source of a new notebook entry: the
// project imports, the component imports, and the create-entry show rule
// carrying the entry metadata.
func RenderEntry(entry types.Entry, paths types.Paths) string {
	paths = paths.WithDefaults()

	var b strings.Builder
	fmt.Fprintf(&b, "#import %s: *\n", typstString(rootPath(paths.Imports)))
	b.WriteString("#import components: *\n")
	b.WriteString("// TODO: add comment\n")
	b.WriteString("#show: create-entry.with(\n")
	fmt.Fprintf(&b, "    section: %s,\n", typstString(string(entry.Section)))
	fmt.Fprintf(&b, "    title: %s,\n", typstString(entry.Title))
	fmt.Fprintf(&b, "    type: %s,\n", typstString(entry.Type))
	fmt.Fprintf(&b, "    date: datetime(year: %d, month: %02d, day: %02d),\n",
		entry.Date.Year(), int(entry.Date.Month()), entry.Date.Day())
	fmt.Fprintf(&b, "    author: %s,\n", typstString(entry.Author))
	fmt.Fprintf(&b, "    witness: %s,\n", typstString(entry.Witness))
	b.WriteString(")\n")
	return b.String()
}

// IncludeLine renders the include appended to the entries index for a
// new entry. The path must be root relative.
func IncludeLine(path string) string {
	return fmt.Sprintf("\n\n#include %s", typstString(path))
}

var (
	entryStringArg = `((?:[^"\\]|\\.)*)`
	entrySection   = regexp.MustCompile(`section:\s*"` + entryStringArg + `"`)
	entryTitle     = regexp.MustCompile(`title:\s*"` + entryStringArg + `"`)
	entryType      = regexp.MustCompile(`type:\s*"` + entryStringArg + `"`)
	entryAuthor    = regexp.MustCompile(`author:\s*"` + entryStringArg + `"`)
	entryWitness   = regexp.MustCompile(`witness:\s*"` + entryStringArg + `"`)
	entryDate      = regexp.MustCompile(`date:\s*datetime\(\s*year:\s*(\d+),\s*month:\s*(\d+),\s*day:\s*(\d+)\s*\)`)
	entryShowRule  = regexp.MustCompile(`#show:\s*create-entry\.with\(`)
)

// ParseEntry extracts the named arguments of the create-entry show rule
// from an entry document.
func ParseEntry(content string) (types.Entry, error) {
	if !entryShowRule.MatchString(content) {
		return types.Entry{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no create-entry show rule found")
	}
	entry := types.Entry{
		Section: types.Section(stringArg(entrySection, content)),
		Title:   stringArg(entryTitle, content),
		Type:    stringArg(entryType, content),
		Author:  stringArg(entryAuthor, content),
		Witness: stringArg(entryWitness, content),
	}
	if match := entryDate.FindStringSubmatch(content); match != nil {
		year, _ := strconv.Atoi(match[1])
		month, _ := strconv.Atoi(match[2])
		day, _ := strconv.Atoi(match[3])
		entry.Date = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}
	return entry, nil
}

func stringArg(pattern *regexp.Regexp, content string) string {
	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return ""
	}
	unescaped := strings.ReplaceAll(match[1], `\"`, `"`)
	return strings.ReplaceAll(unescaped, `\\`, `\`)
}

// entryDateLayouts are the accepted spellings for the --date flag and
// the interactive date field.
var entryDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

// ParseEntryDate parses a user supplied entry date, trying each accepted
// layout in order. The second return value is false when no layout
// matches.
func ParseEntryDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range entryDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
