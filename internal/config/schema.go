package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/3-lines-studio/elysium/elysium.schema.json"

// Schema returns the JSON schema of the config file.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = schemaID
	schema.Title = "Elysium Configuration"
	schema.Description = "Configuration for an Elysium application server"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
