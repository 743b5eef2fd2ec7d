package schemavalidator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Get the JSON tag for a given field, or fallback to field name if not found
func GetJSONTag(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return field.Name
	}
	return strings.Split(jsonTag, ",")[0]
}

// GetJSONFieldPath returns the JSON path of a failed field, without the name
// of the top level struct. For example "spec.entries[2].definitionSymbol".
func GetJSONFieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
