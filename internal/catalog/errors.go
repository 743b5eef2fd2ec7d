package catalog

import (
	"net/http"

	"github.com/mugiliam/labcatalog/internal/apperrors"
)

var (
	ErrCatalogError         apperrors.Error = apperrors.New("error in processing catalog")
	ErrEmptyDocument        apperrors.Error = ErrCatalogError.New("empty catalog document").SetStatusCode(http.StatusBadRequest)
	ErrInvalidSchema        apperrors.Error = ErrCatalogError.New("invalid schema").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidVersion       apperrors.Error = ErrInvalidSchema.New("invalid version")
	ErrUnableToReadDocument apperrors.Error = ErrCatalogError.New("unable to read catalog document").SetExpandError(true)
	ErrNoDocuments          apperrors.Error = ErrCatalogError.New("no catalog documents found")
	ErrDocumentNotFound     apperrors.Error = ErrCatalogError.New("catalog not found").SetStatusCode(http.StatusNotFound)
	ErrEntryNotFound        apperrors.Error = ErrCatalogError.New("entry not found").SetStatusCode(http.StatusNotFound)
	ErrValidationFailed     apperrors.Error = ErrCatalogError.New("catalog validation failed").SetExpandError(true).SetStatusCode(http.StatusUnprocessableEntity)
)
