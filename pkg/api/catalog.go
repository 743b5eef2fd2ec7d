package api

import "github.com/mugiliam/labcatalog/pkg/types"

type CatalogSummary struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Entries int    `json:"entries"`
}

type ListCatalogsRsp struct {
	Catalogs []CatalogSummary `json:"catalogs"`
}

type ListEntriesRsp struct {
	Catalog string               `json:"catalog"`
	Entries []types.CatalogEntry `json:"entries"`
}

type GetEntryRsp struct {
	Catalog string             `json:"catalog"`
	Index   int                `json:"index"`
	Entry   types.CatalogEntry `json:"entry"`
}
