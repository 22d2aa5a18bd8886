package app

import (
	"context"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"notebookctl/internal/core"
	"notebookctl/internal/policies"
	"notebookctl/internal/types"
)

// EntryNew scaffolds a notebook entry: a new entry document under the
// entries directory plus an include line appended to the entries index.
// Slashes in the title create nested directories; the displayed title is
// the last segment.
func (s Service) EntryNew(ctx context.Context, req EntryNewRequest) (EntryNewResult, error) {
	project, err := s.loadProject(req.ProjectDir, req.ConfigPath, "")
	if err != nil {
		return EntryNewResult{}, err
	}
	cfg := project.Config
	themePolicy := policies.NewThemePolicy(core.Themes(), cfg.Notebook.Theme)
	if themePolicy.FellBack {
		log.Ctx(ctx).Warn().
			Str("theme", cfg.Notebook.Theme).
			Str("fallback", themePolicy.Theme.Name).
			Msg("theme has no entry types, using fallback table")
	}

	slug, err := core.Slugify(req.Title)
	if err != nil {
		return EntryNewResult{}, err
	}
	section := types.Section(strings.ToLower(strings.TrimSpace(req.Section)))
	if section == "" {
		section = types.SectionBody
	}
	entry := types.Entry{
		Section: section,
		Title:   core.TitleLeaf(req.Title),
		Type:    strings.ToLower(strings.TrimSpace(req.Type)),
		Date:    s.entryDate(ctx, req.Date),
		Author:  strings.TrimSpace(req.Author),
		Witness: strings.TrimSpace(req.Witness),
	}
	if entry.Author == "" {
		name, err := s.GitConfig.UserName(ctx)
		if err != nil {
			log.Ctx(ctx).Debug().Err(err).Msg("git user.name unavailable, leaving author empty")
		} else {
			entry.Author = name
		}
	}
	if err := policies.ValidateEntry(entry, themePolicy); err != nil {
		return EntryNewResult{}, err
	}

	entriesDir := path.Dir(cfg.Paths.Entries)
	rel := path.Join(entriesDir, slug, core.SlugLeaf(slug)+".typ")
	entryPath := project.document(rel)
	if err := s.Documents.EnsureDir(filepath.Dir(entryPath)); err != nil {
		return EntryNewResult{}, err
	}
	if err := s.Documents.CreateDocument(entryPath, core.RenderEntry(entry, cfg.Paths)); err != nil {
		return EntryNewResult{}, err
	}
	include := "/" + rel
	if err := s.Documents.AppendDocument(project.document(cfg.Paths.Entries), core.IncludeLine(include)); err != nil {
		return EntryNewResult{}, err
	}
	log.Ctx(ctx).Debug().
		Str("entry", rel).
		Str("section", string(entry.Section)).
		Str("type", entry.Type).
		Msg("entry scaffolded")
	return EntryNewResult{
		EntryPath: entryPath,
		Include:   include,
		Section:   entry.Section,
		Type:      entry.Type,
	}, nil
}

// EntryTypes lists the entry type table the project's theme offers,
// after the default theme fallback.
func (s Service) EntryTypes(req EntryTypesRequest) (EntryTypesResult, error) {
	project, err := s.loadProject(req.ProjectDir, req.ConfigPath, "")
	if err != nil {
		return EntryTypesResult{}, err
	}
	themePolicy := policies.NewThemePolicy(core.Themes(), project.Config.Notebook.Theme)
	return EntryTypesResult{
		Requested: project.Config.Notebook.Theme,
		Theme:     themePolicy.Theme.Name,
		FellBack:  themePolicy.FellBack,
		Types:     themePolicy.EntryTypes(),
	}, nil
}

// entryDate parses the requested entry date, defaulting to today for an
// empty or unparseable value.
func (s Service) entryDate(ctx context.Context, value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return timeNow(s.Clock)
	}
	parsed, ok := core.ParseEntryDate(trimmed)
	if !ok {
		log.Ctx(ctx).Warn().Str("date", trimmed).Msg("could not parse entry date, using today")
		return timeNow(s.Clock)
	}
	return parsed
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock().UTC()
}
