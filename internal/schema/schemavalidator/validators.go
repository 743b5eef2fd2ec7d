package schemavalidator

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	LabwareCatalogKind = "LabwareCatalog"
)

var validKinds = []string{
	LabwareCatalogKind,
}

// kindValidator checks if the given kind is a valid resource kind.
func kindValidator(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	for _, validKind := range validKinds {
		if kind == validKind {
			return true
		}
	}
	return false
}

var (
	nameRe             = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	noSpacesRe         = regexp.MustCompile(`^[^\s]+$`)
	definitionSymbolRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	imageWidthRe       = regexp.MustCompile(`^[0-9]+(px|%)?$`)
)

// nameFormatValidator checks if the given name is alphanumeric with underscores and hyphens.
func nameFormatValidator(fl validator.FieldLevel) bool {
	return nameRe.MatchString(fl.Field().String())
}

func noSpacesValidator(fl validator.FieldLevel) bool {
	return noSpacesRe.MatchString(fl.Field().String())
}

// definitionSymbolValidator checks that the symbol can be referenced from code.
func definitionSymbolValidator(fl validator.FieldLevel) bool {
	return ValidateDefinitionSymbol(fl.Field().String())
}

// relativePathValidator accepts slash separated paths relative to the
// catalog document. Absolute paths and URLs are rejected.
func relativePathValidator(fl validator.FieldLevel) bool {
	return ValidateRelativePath(fl.Field().String())
}

func imageWidthValidator(fl validator.FieldLevel) bool {
	return imageWidthRe.MatchString(fl.Field().String())
}

func ValidateDefinitionSymbol(symbol string) bool {
	return definitionSymbolRe.MatchString(symbol)
}

func ValidateRelativePath(p string) bool {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, `\`) {
		return false
	}
	if u, err := url.Parse(p); err != nil || u.Scheme != "" || u.Host != "" {
		return false
	}
	return path.Clean(p) != "."
}

func init() {
	V().RegisterValidation("kindValidator", kindValidator)
	V().RegisterValidation("nameFormatValidator", nameFormatValidator)
	V().RegisterValidation("noSpacesValidator", noSpacesValidator)
	V().RegisterValidation("definitionSymbolValidator", definitionSymbolValidator)
	V().RegisterValidation("relativePathValidator", relativePathValidator)
	V().RegisterValidation("imageWidthValidator", imageWidthValidator)
}
