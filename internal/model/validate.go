package model

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON []byte

// ValidateJSON validates raw resume JSON against resume.schema.json.
// It is used at the storage boundary so stored records that do not conform
// are rejected instead of trusted implicitly.
func ValidateJSON(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}

// Validate marshals the resume and validates it against the schema.
func Validate(r *Resume) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return ValidateJSON(b)
}

// FromJSON decodes and validates a stored resume payload.
func FromJSON(raw []byte) (*Resume, error) {
	if err := ValidateJSON(raw); err != nil {
		return nil, err
	}
	var r Resume
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
