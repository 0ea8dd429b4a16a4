package jsonschema

import (
	"strings"
	"testing"
)

const userSchema = `{
	"type": "object",
	"required": ["name", "age"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	}
}`

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected bool
		wantErr  bool
	}{
		{
			name:     "Valid document",
			json:     `{"name": "Ada", "age": 36}`,
			expected: true,
		},
		{
			name:     "Missing required field",
			json:     `{"name": "Ada"}`,
			expected: false,
		},
		{
			name:     "Wrong type",
			json:     `{"name": "Ada", "age": "old"}`,
			expected: false,
		},
		{
			name:    "Malformed JSON",
			json:    `{"name":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := Validate(tt.json, userSchema)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got valid=%v", valid)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if valid != tt.expected {
				t.Errorf("Validate() = %v, want %v", valid, tt.expected)
			}
		})
	}
}

func TestValidate_InvalidSchema(t *testing.T) {
	if _, err := Validate(`{}`, `{"type": 42}`); err == nil {
		t.Errorf("Expected error for invalid schema")
	}
}

func TestValidateWithErrors(t *testing.T) {
	valid, errs := ValidateWithErrors(`{"name": 1}`, userSchema)
	if valid {
		t.Fatalf("Expected invalid document")
	}
	if len(errs) == 0 {
		t.Fatalf("Expected validation errors")
	}
	if !strings.Contains(errs.Error(), "validation error") {
		t.Errorf("Expected detailed messages, got %q", errs.Error())
	}
}

func TestValidateWithErrors_Valid(t *testing.T) {
	valid, errs := ValidateWithErrors(`{"name": "Ada", "age": 36}`, userSchema)
	if !valid {
		t.Fatalf("Expected valid document, got errors: %v", errs)
	}
	if errs != nil {
		t.Errorf("Expected nil errors, got %v", errs)
	}
}
