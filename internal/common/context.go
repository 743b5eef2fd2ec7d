// Description: This file contains the context helpers used to carry request scoped data.
package common

import (
	"context"

	"github.com/mugiliam/labcatalog/internal/catalog"
)

// ctxCatalogKeyType represents the key type for the catalog in the context.
type ctxCatalogKeyType string

const ctxCatalogKey ctxCatalogKeyType = "LabCatalog"

// ctxRequestIdKeyType represents the key type for the request ID in the context.
type ctxRequestIdKeyType string

const ctxRequestIdKey ctxRequestIdKeyType = "LabCatalogRequestId"

// SetCatalogInContext sets the catalog served by the request.
func SetCatalogInContext(ctx context.Context, c *catalog.Catalog) context.Context {
	return context.WithValue(ctx, ctxCatalogKey, c)
}

// CatalogFromContext retrieves the catalog from the provided context.
func CatalogFromContext(ctx context.Context) *catalog.Catalog {
	if c, ok := ctx.Value(ctxCatalogKey).(*catalog.Catalog); ok {
		return c
	}
	return nil
}

// SetRequestIdInContext sets the request ID in the provided context.
func SetRequestIdInContext(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, ctxRequestIdKey, requestId)
}

// RequestIdFromContext retrieves the request ID from the provided context.
func RequestIdFromContext(ctx context.Context) string {
	if requestId, ok := ctx.Value(ctxRequestIdKey).(string); ok {
		return requestId
	}
	return ""
}
