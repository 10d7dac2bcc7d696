package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/openclc-dev/openclc-front-sdk/capability"
)

// EncodeJSON renders the full table of src as a JSON snapshot document.
func EncodeJSON(src capability.TableAccessor) ([]byte, error) {
	doc := FromRecords(src.ExportRecords())
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot JSON: %w", err)
	}
	return b, nil
}

// DecodeJSON validates data against the snapshot schema and replaces the
// table of dst with the decoded records.
func DecodeJSON(dst capability.TableAccessor, data []byte) error {
	schemaStr, err := Schema()
	if err != nil {
		return err
	}

	schema, err := jsonschema.CompileString("snapshot.schema.json", schemaStr)
	if err != nil {
		return fmt.Errorf("compiling snapshot schema: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding snapshot JSON: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return fmt.Errorf("snapshot does not match schema: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding snapshot JSON: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	return dst.ImportRecords(doc.ToRecords())
}
