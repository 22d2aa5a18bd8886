package core

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/iancoleman/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify converts an entry title to the directory slug of its entry
// files. Slashes partition the title into nested directories; every
// segment is stripped of diacritics and snake cased. The displayed title
// keeps its original spelling.
func Slugify(title string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(title), "/")
	if trimmed == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("entry title is required")
	}
	var segments []string
	for _, segment := range strings.Split(trimmed, "/") {
		slug := slugSegment(segment)
		if slug == "" {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("entry title %q produces an empty slug", title))
		}
		segments = append(segments, slug)
	}
	return strings.Join(segments, "/"), nil
}

// TitleLeaf returns the displayed title of an entry: the last slash
// separated segment of the raw title.
func TitleLeaf(title string) string {
	trimmed := strings.Trim(strings.TrimSpace(title), "/")
	parts := strings.Split(trimmed, "/")
	return strings.TrimSpace(parts[len(parts)-1])
}

// SlugLeaf returns the last segment of a slug, the base name of the
// entry file.
func SlugLeaf(slug string) string {
	parts := strings.Split(slug, "/")
	return parts[len(parts)-1]
}

var slugStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func slugSegment(segment string) string {
	stripped, _, err := transform.String(slugStripper, segment)
	if err != nil {
		stripped = segment
	}
	snake := strcase.ToSnake(strings.TrimSpace(stripped))
	var b strings.Builder
	for _, r := range snake {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == '-' || r == ' ':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
