package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/labcatalog/internal/apperrors"
	schemaerr "github.com/mugiliam/labcatalog/internal/schema/errors"
	"github.com/mugiliam/labcatalog/internal/schema/schemavalidator"
	"github.com/mugiliam/labcatalog/pkg/types"
	"github.com/rs/zerolog/log"
	"sigs.k8s.io/yaml"
)

// Document is one parsed catalog document: a manufacturer and its entries.
type Document struct {
	resource types.CatalogResource
	source   string
	baseDir  string
}

type DocumentOption func(*Document)

// WithSource records where the document came from. Image paths are resolved
// against baseDir.
func WithSource(source, baseDir string) DocumentOption {
	return func(d *Document) {
		d.source = source
		d.baseDir = baseDir
	}
}

type versionHeader struct {
	Version string `json:"version"`
}

// NewDocument parses a YAML or JSON catalog document. The envelope and the
// metadata must be valid. Entries are checked later by Catalog.Validate.
func NewDocument(ctx context.Context, data []byte, opts ...DocumentOption) (*Document, apperrors.Error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("failed to convert catalog document to json")
		return nil, ErrInvalidSchema.Err(err)
	}

	var version versionHeader
	if err := json.Unmarshal(j, &version); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}
	if version.Version == "" {
		return nil, ErrInvalidSchema.Err(schemaerr.ErrMissingRequiredAttribute("version"))
	}
	if version.Version != types.VersionV1 {
		return nil, ErrInvalidVersion.Err(schemaerr.ErrUnsupportedVersion("version", version.Version))
	}

	if ves := schemavalidator.ValidateJsonSchema(catalogJsonSchema, string(j)); len(ves) > 0 {
		return nil, ErrInvalidSchema.Err(ves)
	}

	d := &Document{}
	if err := json.Unmarshal(j, &d.resource); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}
	if ves := validateStruct(&d.resource, ""); len(ves) > 0 {
		return nil, ErrInvalidSchema.Err(ves)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *Document) Name() string {
	return d.resource.Metadata.Name
}

func (d *Document) Title() string {
	return d.resource.Metadata.DisplayTitle()
}

func (d *Document) Description() string {
	return d.resource.Metadata.Description
}

func (d *Document) Website() string {
	return d.resource.Metadata.Website
}

// Entries returns a copy of the entries in document order.
func (d *Document) Entries() []types.CatalogEntry {
	return slices.Clone(d.resource.Spec.Entries)
}

func (d *Document) Len() int {
	return len(d.resource.Spec.Entries)
}

func (d *Document) Source() string {
	return d.source
}

func (d *Document) BaseDir() string {
	return d.baseDir
}

func (d *Document) ToJson() ([]byte, error) {
	return json.Marshal(d.resource)
}

// validateStruct runs the struct validator and prefixes every reported field
// with prefix.
func validateStruct(s any, prefix string) schemaerr.ValidationErrors {
	err := schemavalidator.V().Struct(s)
	if err == nil {
		return nil
	}
	var ves schemaerr.ValidationErrors
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(ves, schemaerr.ErrInvalidSchema)
	}
	for _, e := range ve {
		jsonFieldName := prefix + schemavalidator.GetJSONFieldPath(e)
		val, _ := e.Value().(string)

		switch e.Tag() {
		case "required":
			ves = append(ves, schemaerr.ErrMissingRequiredAttribute(jsonFieldName))
		case "kindValidator":
			ves = append(ves, schemaerr.ErrUnsupportedKind(jsonFieldName, val))
		case "nameFormatValidator":
			ves = append(ves, schemaerr.ErrInvalidNameFormat(jsonFieldName, val))
		case "definitionSymbolValidator":
			ves = append(ves, schemaerr.ErrInvalidDefinitionSymbol(jsonFieldName, val))
		case "relativePathValidator":
			ves = append(ves, schemaerr.ErrInvalidImagePath(jsonFieldName, val))
		case "imageWidthValidator":
			ves = append(ves, schemaerr.ErrInvalidImageWidth(jsonFieldName, val))
		case "http_url":
			ves = append(ves, schemaerr.ErrInvalidURL(jsonFieldName, val))
		case "noSpacesValidator":
			ves = append(ves, schemaerr.ErrContainsWhitespace(jsonFieldName, val))
		default:
			ves = append(ves, schemaerr.ErrValidationFailed(jsonFieldName))
		}
	}
	return ves
}

const catalogJsonSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"definitions": {
		"image": {
			"type": "object",
			"properties": {
				"path": {"type": "string"},
				"alt": {"type": "string"},
				"width": {"type": "string"}
			},
			"additionalProperties": false
		},
		"entry": {
			"type": "object",
			"properties": {
				"description": {"type": ["string", "null"]},
				"partNumber": {"type": "string"},
				"manufacturerUrl": {"type": "string"},
				"materialNotes": {
					"oneOf": [
						{"type": "string"},
						{"type": "array", "items": {"type": "string"}}
					]
				},
				"compatibilityWarning": {"type": "string"},
				"images": {"type": "array", "items": {"$ref": "#/definitions/image"}},
				"definitionSymbol": {"type": ["string", "null"]}
			},
			"additionalProperties": false
		}
	},
	"properties": {
		"version": {"type": "string"},
		"kind": {"type": "string"},
		"metadata": {
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"title": {"type": "string"},
				"description": {"type": "string"},
				"website": {"type": "string"}
			},
			"required": ["name"],
			"additionalProperties": false
		},
		"spec": {
			"type": "object",
			"properties": {
				"entries": {"type": "array", "items": {"$ref": "#/definitions/entry"}}
			},
			"additionalProperties": false
		}
	},
	"required": ["version", "kind", "metadata", "spec"],
	"additionalProperties": false
}`
