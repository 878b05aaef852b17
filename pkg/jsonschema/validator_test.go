package jsonschema

import (
	"errors"
	"testing"
)

const userSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	}
}`

func TestValidate_Conforming(t *testing.T) {
	if err := Validate(`{"name":"alice","age":30}`, userSchema); err != nil {
		t.Errorf("Expected document to conform, got %v", err)
	}
}

func TestValidate_Violation(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"missing required field", `{"age":30}`},
		{"wrong type", `{"name":123}`},
		{"constraint violation", `{"name":"alice","age":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.document, userSchema)
			if err == nil {
				t.Fatal("Expected a schema violation")
			}

			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Expected SchemaError, got %T: %v", err, err)
			}
		})
	}
}

func TestValidate_MalformedInputs(t *testing.T) {
	if err := Validate(`not json`, userSchema); err == nil {
		t.Error("Expected error for malformed document")
	}
	if err := Validate(`{}`, `{"type":`); err == nil {
		t.Error("Expected error for malformed schema")
	}

	// Parse failures are not schema violations.
	var schemaErr *SchemaError
	if err := Validate(`not json`, userSchema); errors.As(err, &schemaErr) {
		t.Error("Expected a plain error for a malformed document, got SchemaError")
	}
}
