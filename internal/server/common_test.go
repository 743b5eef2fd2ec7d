package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mugiliam/labcatalog/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eppendorfYaml = `
version: v1
kind: LabwareCatalog
metadata:
  name: eppendorf
  title: Eppendorf
  description: Eppendorf is a life science company.
spec:
  entries:
    - description: Eppendorf twin.tec PCR Plate 96 LoBind
      partNumber: "0030129504"
      images:
        - path: img/top.png
          alt: top view
      definitionSymbol: Eppendorf_96_wellplate_250ul_Vb
    - description: Eppendorf deepwell plate
      definitionSymbol: Eppendorf_96_deepwell_1000ul
`

func testCatalog(t *testing.T) *catalog.Catalog {
	d, err := catalog.NewDocument(context.Background(), []byte(eppendorfYaml))
	require.Nil(t, err)
	return catalog.New(d)
}

func executeTestRequest(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	s, err := CreateNewServer(testCatalog(t))
	assert.NoError(t, err, "create new server")

	// Mount Handlers
	s.MountHandlers()

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	return rr
}

func checkHeader(t *testing.T, h http.Header, expected string) {
	got := h.Get("Content-Type")
	assert.Equal(t, expected, got, "Content-Type expected %s, got %s", expected, got)
	assert.NotEmpty(t, h.Get("X-Request-ID"), "No Request Id")
}

func compareJson(t *testing.T, expected any, actual string) {
	j, err := json.Marshal(expected)
	assert.NoError(t, err, "json marshal")
	assert.JSONEq(t, string(j), actual, "Expected: %v\n Got: %v\n", expected, actual)
}
