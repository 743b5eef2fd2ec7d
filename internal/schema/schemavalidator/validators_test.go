package schemavalidator

import (
	"testing"

	schemaerr "github.com/mugiliam/labcatalog/internal/schema/errors"
	"github.com/stretchr/testify/assert"
)

func TestDefinitionSymbolValidator(t *testing.T) {
	tests := []struct {
		input   string
		isValid bool
	}{
		{input: "Eppendorf_96_wellplate_250ul_Vb", isValid: true},
		{input: "_private_plate", isValid: true},
		{input: "Cor_96_wellplate_360ul_Fb", isValid: true},
		{input: "96_wellplate", isValid: false},
		{input: "Eppendorf 96", isValid: false},
		{input: "Eppendorf-96", isValid: false},
		{input: "", isValid: false},
	}

	for _, test := range tests {
		err := V().Var(test.input, "definitionSymbolValidator")
		if (err == nil) != test.isValid {
			t.Errorf("Expected %v for input '%s', but got %v", test.isValid, test.input, err == nil)
		}
	}
}

func TestRelativePathValidator(t *testing.T) {
	tests := []struct {
		input   string
		isValid bool
	}{
		{input: "img/eppendorf/Eppendorf_96_wellplate_250ul_Vb.png", isValid: true},
		{input: "plate.jpg", isValid: true},
		{input: "../shared/plate.jpg", isValid: true},
		{input: "/abs/plate.jpg", isValid: false},
		{input: "https://example.com/plate.jpg", isValid: false},
		{input: `img\plate.jpg`, isValid: false},
		{input: "./", isValid: false},
		{input: "", isValid: false},
	}

	for _, test := range tests {
		err := V().Var(test.input, "relativePathValidator")
		if (err == nil) != test.isValid {
			t.Errorf("Expected %v for input '%s', but got %v", test.isValid, test.input, err == nil)
		}
	}
}

func TestImageWidthValidator(t *testing.T) {
	tests := []struct {
		input   string
		isValid bool
	}{
		{input: "200", isValid: true},
		{input: "200px", isValid: true},
		{input: "50%", isValid: true},
		{input: "200 px", isValid: false},
		{input: "wide", isValid: false},
	}

	for _, test := range tests {
		err := V().Var(test.input, "imageWidthValidator")
		if (err == nil) != test.isValid {
			t.Errorf("Expected %v for input '%s', but got %v", test.isValid, test.input, err == nil)
		}
	}
}

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"version": {"type": "string"},
		"kind": {"type": "string"},
		"metadata": {"type": "object"}
	},
	"required": ["version", "kind", "metadata"],
	"additionalProperties": false
}`

func TestValidateJsonSchema(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected schemaerr.ValidationErrors
	}{
		{
			name:     "valid document",
			input:    `{"version": "v1", "kind": "LabwareCatalog", "metadata": {"name": "x"}}`,
			expected: nil,
		},
		{
			name:  "missing required version",
			input: `{"kind": "LabwareCatalog", "metadata": {"name": "x"}}`,
			expected: schemaerr.ValidationErrors{
				schemaerr.ErrMissingRequiredAttribute("(root).version"),
			},
		},
		{
			name:  "unknown attribute",
			input: `{"version": "v1", "kind": "LabwareCatalog", "metadata": {}, "extra": 1}`,
			expected: schemaerr.ValidationErrors{
				schemaerr.ErrAdditionalProperty("(root).extra"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := ValidateJsonSchema(testSchema, tt.input)
			assert.Equal(t, tt.expected, actual)
		})
	}

	t.Run("invalid type", func(t *testing.T) {
		actual := ValidateJsonSchema(testSchema, `{"version": 1, "kind": "LabwareCatalog", "metadata": {}}`)
		if assert.Len(t, actual, 1) {
			assert.Equal(t, "version", actual[0].Field)
			assert.Equal(t, "invalid type", actual[0].ErrStr)
		}
	})
}
