package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema describing Config files.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&Config{})
	s.Title = "strkit configuration"
	return json.MarshalIndent(s, "", "  ")
}
