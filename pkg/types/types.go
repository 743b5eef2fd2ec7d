package types

import (
	"encoding/json"
)

const (
	VersionV1          = "v1"
	KindLabwareCatalog = "LabwareCatalog"
)

// Image references a picture of a product, relative to the catalog document.
type Image struct {
	Path  string `json:"path" validate:"required,relativePathValidator"`
	Alt   string `json:"alt,omitempty"`
	Width string `json:"width,omitempty" validate:"omitempty,imageWidthValidator"`
}

// CatalogEntry describes one labware product and the symbol that defines it
// in the resource library. Entries are not modified after they are loaded.
type CatalogEntry struct {
	Description          string        `json:"description" validate:"required"`
	PartNumber           string        `json:"partNumber,omitempty" validate:"omitempty,noSpacesValidator"`
	ManufacturerURL      string        `json:"manufacturerUrl,omitempty" validate:"omitempty,http_url"`
	MaterialNotes        MaterialNotes `json:"materialNotes,omitempty"`
	CompatibilityWarning string        `json:"compatibilityWarning,omitempty"`
	Images               []Image       `json:"images,omitempty" validate:"dive"`
	DefinitionSymbol     string        `json:"definitionSymbol" validate:"required,definitionSymbolValidator"`
}

// MaterialNotes accepts either a single string or a list of strings.
type MaterialNotes []string

func (m *MaterialNotes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*m = nil
		} else {
			*m = MaterialNotes{s}
		}
		return nil
	}
	var l []string
	if err := json.Unmarshal(data, &l); err != nil {
		return err
	}
	*m = MaterialNotes(l)
	return nil
}

// CatalogMetadata describes the manufacturer a catalog document belongs to.
type CatalogMetadata struct {
	Name        string `json:"name" validate:"required,nameFormatValidator"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,http_url"`
}

// DisplayTitle is the page heading for the document.
func (m CatalogMetadata) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// CatalogSpec holds the entries in display order. Entries are validated one
// by one when the catalog is checked, so a bad entry never hides the rest.
type CatalogSpec struct {
	Entries []CatalogEntry `json:"entries"`
}

// CatalogResource is the on-disk representation of a catalog document.
type CatalogResource struct {
	Version  string          `json:"version" validate:"required"`
	Kind     string          `json:"kind" validate:"required,kindValidator"`
	Metadata CatalogMetadata `json:"metadata" validate:"required"`
	Spec     CatalogSpec     `json:"spec"`
}
