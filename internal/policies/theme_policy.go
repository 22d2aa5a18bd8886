package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"notebookctl/internal/types"
)

// ThemePolicy resolves entry types against the entry type table of the
// selected theme. Themes without a table fall back to the first theme
// that defines one, so entry scaffolding keeps working on the default
// theme.
type ThemePolicy struct {
	Theme    types.Theme
	FellBack bool
	index    map[string]types.EntryType
}

func NewThemePolicy(themes []types.Theme, requested string) ThemePolicy {
	policy := ThemePolicy{}
	for _, theme := range themes {
		if theme.Name == requested {
			policy.Theme = theme
			break
		}
	}
	if !policy.Theme.HasEntryTypes() {
		for _, theme := range themes {
			if theme.HasEntryTypes() {
				policy.Theme = theme
				policy.FellBack = true
				break
			}
		}
	}
	policy.compile()
	return policy
}

func (p *ThemePolicy) compile() {
	p.index = map[string]types.EntryType{}
	for _, entryType := range p.Theme.EntryTypes {
		key := strings.ToLower(entryType.Name)
		if _, ok := p.index[key]; !ok {
			p.index[key] = entryType
		}
	}
}

func (p ThemePolicy) EntryTypes() []types.EntryType {
	return p.Theme.EntryTypes
}

func (p ThemePolicy) ResolveEntryType(name string) (types.EntryType, error) {
	entryType, ok := p.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return types.EntryType{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no entry type %q in theme %s", name, p.Theme.Name))
	}
	return entryType, nil
}
