// Package scaffold holds the embedded seed documents for new notebook
// projects.
package scaffold

import (
	"embed"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

//go:embed templates
var templates embed.FS

const (
	TemplateFrontmatter = "frontmatter.typ"
	TemplateEntries     = "entries.typ"
	TemplateAppendix    = "appendix.typ"
	TemplateGitignore   = "gitignore"
)

// Document returns the seed content of a scaffolded project document.
func Document(name string) (string, error) {
	data, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no scaffold template " + name).
			WithCause(err)
	}
	return string(data), nil
}
