package server

import (
	"net/http"
	"testing"

	"github.com/mugiliam/labcatalog/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	// Create a New Request
	req, _ := http.NewRequest("GET", "/catalogs/version", nil)

	// Execute Request
	response := executeTestRequest(t, req)

	// Check the response code
	require.Equal(t, http.StatusOK, response.Code)

	// Check headers
	checkHeader(t, response.Result().Header, "application/json")

	compareJson(t,
		&api.GetVersionRsp{
			ServerVersion: ServerVersion,
			ApiVersion:    api.ApiVersion_1_0,
		}, response.Body.String())
}

func TestRequestIdPassthrough(t *testing.T) {
	req, _ := http.NewRequest("GET", "/catalogs/version", nil)
	req.Header.Set("X-Request-ID", "req-1234")

	response := executeTestRequest(t, req)
	assert.Equal(t, "req-1234", response.Result().Header.Get("X-Request-ID"))
}
