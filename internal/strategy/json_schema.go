package strategy

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ConfigJSONSchema returns the JSON schema describing the strategy Config,
// for editor completion and config file validation.
func ConfigJSONSchema() (string, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(&Config{})

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
