package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/mugiliam/labcatalog/internal/catalog"
	"github.com/mugiliam/labcatalog/internal/common"
	"github.com/mugiliam/labcatalog/internal/httpx"
	"github.com/mugiliam/labcatalog/internal/render"
	"github.com/mugiliam/labcatalog/pkg/api"
	"github.com/rs/zerolog/log"
)

type handlerParam struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

var catalogHandlers = []handlerParam{
	{
		Method:  http.MethodGet,
		Path:    "/",
		Handler: httpx.WrapHttpRsp(listCatalogs),
	},
	{
		Method:  http.MethodGet,
		Path:    "/entries/{symbol}",
		Handler: httpx.WrapHttpRsp(getEntry),
	},
	{
		Method:  http.MethodGet,
		Path:    "/{catalogName}",
		Handler: httpx.WrapHttpRsp(getCatalogPage),
	},
	{
		Method:  http.MethodGet,
		Path:    "/{catalogName}/entries",
		Handler: httpx.WrapHttpRsp(listEntries),
	},
}

func (s *LabCatalogServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &api.GetVersionRsp{
		ServerVersion: ServerVersion,
		ApiVersion:    api.ApiVersion_1_0,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

func catalogFromRequest(r *http.Request) (*catalog.Catalog, error) {
	c := common.CatalogFromContext(r.Context())
	if c == nil {
		return nil, catalog.ErrCatalogError.Msg("no catalog loaded")
	}
	return c, nil
}

func listCatalogs(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	rsp := &api.ListCatalogsRsp{Catalogs: []api.CatalogSummary{}}
	for _, d := range c.Documents() {
		rsp.Catalogs = append(rsp.Catalogs, api.CatalogSummary{
			Name:    d.Name(),
			Title:   d.Title(),
			Entries: d.Len(),
		})
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func getCatalogPage(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	d, apperr := c.Document(chi.URLParam(r, "catalogName"))
	if apperr != nil {
		return nil, apperr
	}
	var buf bytes.Buffer
	if err := render.Markdown(&buf, d); err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode:  http.StatusOK,
		ContentType: "text/markdown; charset=utf-8",
		Response:    buf.Bytes(),
	}, nil
}

func listEntries(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	d, apperr := c.Document(chi.URLParam(r, "catalogName"))
	if apperr != nil {
		return nil, apperr
	}
	rsp := &api.ListEntriesRsp{Catalog: d.Name(), Entries: d.Entries()}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func getEntry(r *http.Request) (*httpx.Response, error) {
	c, err := catalogFromRequest(r)
	if err != nil {
		return nil, err
	}
	ref, apperr := c.Lookup(chi.URLParam(r, "symbol"))
	if apperr != nil {
		return nil, apperr
	}
	rsp := &api.GetEntryRsp{
		Catalog: ref.Document.Name(),
		Index:   ref.Index,
		Entry:   ref.Entry,
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}
