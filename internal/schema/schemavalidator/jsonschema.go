package schemavalidator

import (
	schemaerr "github.com/mugiliam/labcatalog/internal/schema/errors"
	"github.com/xeipuuv/gojsonschema"
)

// ValidateJsonSchema checks a JSON document against a JSON schema and maps
// the failures to ValidationErrors. It returns nil when the document is valid.
func ValidateJsonSchema(jsonSchema string, jsonStr string) schemaerr.ValidationErrors {
	schemaLoader := gojsonschema.NewStringLoader(jsonSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonStr)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return schemaerr.ValidationErrors{schemaerr.ErrInvalidSchema}
	}
	if result.Valid() {
		return nil
	}

	var ves schemaerr.ValidationErrors
	for _, re := range result.Errors() {
		field := re.Field()
		switch re.Type() {
		case "required":
			ves = append(ves, schemaerr.ErrMissingRequiredAttribute(withProperty(field, re.Details())))
		case "invalid_type":
			ves = append(ves, schemaerr.ErrInvalidType(field, re.Value()))
		case "additional_property_not_allowed":
			ves = append(ves, schemaerr.ErrAdditionalProperty(withProperty(field, re.Details())))
		default:
			ves = append(ves, schemaerr.ErrValidationFailed(field, re.Value()))
		}
	}
	return ves
}

func withProperty(field string, details gojsonschema.ErrorDetails) string {
	prop, _ := details["property"].(string)
	if prop == "" {
		return field
	}
	return field + "." + prop
}
