package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mugiliam/labcatalog/internal/apperrors"
	schemaerr "github.com/mugiliam/labcatalog/internal/schema/errors"
	"github.com/mugiliam/labcatalog/internal/schema/schemavalidator"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single finding of Catalog.Validate. Index is the entry position
// within the document, or -1 for document level findings.
type Issue struct {
	schemaerr.ValidationError
	Severity Severity `json:"severity"`
	Document string   `json:"document"`
	Source   string   `json:"source,omitempty"`
	Index    int      `json:"index"`
	Symbol   string   `json:"symbol,omitempty"`
}

func (i Issue) Error() string {
	return i.Document + ": " + i.ValidationError.Error()
}

type Report struct {
	Issues []Issue
}

type ValidateOptions struct {
	// CheckImages stats every image path relative to the document directory.
	CheckImages bool
}

func (r *Report) add(sev Severity, d *Document, index int, symbol string, ve schemaerr.ValidationError) {
	r.Issues = append(r.Issues, Issue{
		ValidationError: ve,
		Severity:        sev,
		Document:        d.Name(),
		Source:          d.Source(),
		Index:           index,
		Symbol:          symbol,
	})
}

func (r *Report) filter(sev Severity) []Issue {
	var issues []Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			issues = append(issues, i)
		}
	}
	return issues
}

func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Report) HasErrors() bool {
	return len(r.Errors()) > 0
}

// Err returns nil when the report has no errors. In strict mode warnings are
// treated as errors.
func (r *Report) Err(strict bool) apperrors.Error {
	failing := r.Errors()
	if strict {
		failing = append(failing, r.Warnings()...)
	}
	if len(failing) == 0 {
		return nil
	}
	errs := make([]error, 0, len(failing))
	for _, i := range failing {
		errs = append(errs, i)
	}
	return ErrValidationFailed.MsgErr(fmt.Sprintf("catalog validation failed with %d issue(s)", len(failing)), errs...)
}

// Log writes every issue to the context logger.
func (r *Report) Log(ctx context.Context) {
	for _, i := range r.Issues {
		level := zerolog.WarnLevel
		if i.Severity == SeverityError {
			level = zerolog.ErrorLevel
		}
		ev := log.Ctx(ctx).WithLevel(level).
			Str("catalog", i.Document).
			Str("field", i.Field)
		if i.Source != "" {
			ev = ev.Str("source", i.Source)
		}
		if i.Symbol != "" {
			ev = ev.Str("symbol", i.Symbol)
		}
		ev.Msg(i.ErrStr)
	}
}

// reservedNames cannot be used as document names: "index" is the build's index
// page and "entries" and "version" are sibling routes under /catalogs.
var reservedNames = []string{"index", "entries", "version"}

// Validate checks the whole catalog. Definition symbols must be present and
// unique across all documents, document names must be unique ignoring case and
// must not be reserved, and every entry must pass field validation. Missing
// image files and missing recommended fields are warnings.
func (c *Catalog) Validate(ctx context.Context, opts ValidateOptions) *Report {
	r := &Report{}
	docNames := make(map[string]bool, len(c.docs))
	symbols := make(map[string]*Document)

	for _, d := range c.docs {
		// pages are written as <name>.md, which collide on case-insensitive filesystems
		key := strings.ToLower(d.Name())
		switch {
		case slices.Contains(reservedNames, key):
			r.add(SeverityError, d, -1, "", schemaerr.ErrReservedDocumentName("metadata.name", d.Name()))
		case docNames[key]:
			r.add(SeverityError, d, -1, "", schemaerr.ErrDuplicateDocumentName("metadata.name", d.Name()))
		}
		docNames[key] = true

		for i, e := range d.resource.Spec.Entries {
			prefix := fmt.Sprintf("spec.entries[%d].", i)
			symbol := e.DefinitionSymbol

			for _, ve := range validateStruct(&e, prefix) {
				r.add(SeverityError, d, i, symbol, ve)
			}

			if symbol != "" {
				if other, ok := symbols[symbol]; ok {
					r.add(SeverityError, d, i, symbol,
						schemaerr.ErrDuplicateDefinitionSymbol(prefix+"definitionSymbol", symbol, other.Name()))
				} else {
					symbols[symbol] = d
				}
			}

			if len(e.Images) == 0 {
				r.add(SeverityWarning, d, i, symbol, schemaerr.ErrMissingRecommendedAttribute(prefix+"images"))
			}
			if e.PartNumber == "" {
				r.add(SeverityWarning, d, i, symbol, schemaerr.ErrMissingRecommendedAttribute(prefix+"partNumber"))
			}

			if !opts.CheckImages || d.BaseDir() == "" {
				continue
			}
			for j, img := range e.Images {
				if !schemavalidator.ValidateRelativePath(img.Path) {
					continue
				}
				p := filepath.Join(d.BaseDir(), filepath.FromSlash(img.Path))
				if _, err := os.Stat(p); err != nil {
					r.add(SeverityWarning, d, i, symbol,
						schemaerr.ErrImageNotFound(fmt.Sprintf("%simages[%d].path", prefix, j), img.Path))
				}
			}
		}
	}

	log.Ctx(ctx).Debug().
		Int("documents", len(c.docs)).
		Int("entries", c.Len()).
		Int("errors", len(r.Errors())).
		Int("warnings", len(r.Warnings())).
		Msg("validated catalog")
	return r
}
