// Package schema renders the JSON Schema of the notebook.yaml format.
package schema

import (
	"encoding/json"

	"github.com/ZanzyTHEbar/errbuilder-go"
	invopopjsonschema "github.com/invopop/jsonschema"

	"notebookctl/internal/types"
)

// ConfigSchema reflects the notebook config type into an inlined JSON
// Schema document, suitable for editor validation of notebook.yaml.
func ConfigSchema() ([]byte, error) {
	reflector := &invopopjsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := reflector.Reflect(&types.Config{})
	s.Title = "Notebook project configuration"
	s.Description = "Configuration for a notebookctl managed Typst engineering notebook."
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode config schema").
			WithCause(err)
	}
	return data, nil
}
