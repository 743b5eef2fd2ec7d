package errors

import (
	"strconv"
	"strings"
)

// ValidationError describes one failed check against a catalog document.
// Field is the JSON path of the offending attribute.
type ValidationError struct {
	Field  string
	Value  any
	ErrStr string
}

func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.ErrStr
	}
	return ve.Field + ": " + ve.ErrStr
}

type ValidationErrors []ValidationError

func (ves ValidationErrors) Error() string {
	var s []string
	for _, ve := range ves {
		s = append(s, ve.Error())
	}
	return strings.Join(s, "; ")
}

func InQuotes(s string) string {
	return strconv.Quote(s)
}

var ErrInvalidSchema = ValidationError{
	ErrStr: "invalid schema",
}
