package middleware

import (
	"net/http"

	"github.com/mugiliam/labcatalog/internal/catalog"
	"github.com/mugiliam/labcatalog/internal/common"
)

// LoadCatalog makes c available to handlers through common.CatalogFromContext.
func LoadCatalog(c *catalog.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(common.SetCatalogInContext(r.Context(), c)))
		})
	}
}
