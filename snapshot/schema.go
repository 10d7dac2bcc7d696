package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema generates the JSON Schema snapshot documents are validated
// against on import.
func Schema() (string, error) {
	reflector := new(jsonschema.Reflector)
	reflector.ExpandedStruct = true

	s := reflector.Reflect(&Document{})
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal generated schema: %w", err)
	}
	return string(b), nil
}
