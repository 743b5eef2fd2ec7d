package errors

func ErrMissingRequiredAttribute(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "missing required attribute",
	}
}

func ErrValidationFailed(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "validation failed",
	}
}

func ErrInvalidType(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "invalid type",
	}
}

func ErrAdditionalProperty(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "unknown attribute",
	}
}

func ErrInvalidNameFormat(attr string, value ...string) ValidationError {
	var errStr string
	if len(value) == 0 {
		errStr = "invalid name format; allowed characters: [A-Za-z0-9_-]"
	} else {
		errStr = "invalid name format " + InQuotes(value[0]) + "; allowed characters: [A-Za-z0-9_-]"
	}
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: errStr,
	}
}

func ErrInvalidDefinitionSymbol(attr string, value ...string) ValidationError {
	var errStr string
	if len(value) == 0 {
		errStr = "invalid definition symbol; must be an identifier [A-Za-z_][A-Za-z0-9_]*"
	} else {
		errStr = "invalid definition symbol " + InQuotes(value[0]) + "; must be an identifier [A-Za-z_][A-Za-z0-9_]*"
	}
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: errStr,
	}
}

func ErrDuplicateDefinitionSymbol(attr string, symbol string, otherDoc string) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  symbol,
		ErrStr: "duplicate definition symbol " + InQuotes(symbol) + "; already defined in " + InQuotes(otherDoc),
	}
}

func ErrDuplicateDocumentName(attr string, name string) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  name,
		ErrStr: "duplicate catalog name " + InQuotes(name),
	}
}

func ErrReservedDocumentName(attr string, name string) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  name,
		ErrStr: "catalog name " + InQuotes(name) + " is reserved",
	}
}

func ErrInvalidImagePath(attr string, value ...string) ValidationError {
	var errStr string
	if len(value) == 0 {
		errStr = "invalid image path; must be relative to the catalog document"
	} else {
		errStr = "invalid image path " + InQuotes(value[0]) + "; must be relative to the catalog document"
	}
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: errStr,
	}
}

func ErrImageNotFound(attr string, path string) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  path,
		ErrStr: "image " + InQuotes(path) + " does not exist",
	}
}

func ErrInvalidImageWidth(attr string, value ...string) ValidationError {
	var errStr string
	if len(value) == 0 {
		errStr = "invalid image width; expected a number optionally followed by px or %"
	} else {
		errStr = "invalid image width " + InQuotes(value[0]) + "; expected a number optionally followed by px or %"
	}
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: errStr,
	}
}

func ErrInvalidURL(attr string, value ...string) ValidationError {
	var errStr string
	if len(value) == 0 {
		errStr = "invalid url"
	} else {
		errStr = "invalid url " + InQuotes(value[0])
	}
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: errStr,
	}
}

func ErrContainsWhitespace(attr string, value ...string) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "must not contain whitespace",
	}
}

func ErrUnsupportedKind(attr string, value ...string) ValidationError {
	var errStr string
	if len(value) == 0 {
		errStr = "unsupported kind"
	} else {
		errStr = "unsupported kind " + InQuotes(value[0])
	}
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: errStr,
	}
}

func ErrUnsupportedVersion(attr string, value ...string) ValidationError {
	var errStr string
	if len(value) == 0 {
		errStr = "unsupported version"
	} else {
		errStr = "unsupported version " + InQuotes(value[0])
	}
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: errStr,
	}
}

func ErrMissingRecommendedAttribute(attr string) ValidationError {
	return ValidationError{
		Field:  attr,
		ErrStr: "recommended attribute is not set",
	}
}
