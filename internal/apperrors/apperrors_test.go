package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errBase     = New("base error")
	errNotFound = errBase.New("not found").SetStatusCode(http.StatusNotFound)
	errExpanded = errBase.New("expanded").SetExpandError(true)
)

func TestChain(t *testing.T) {
	err := errNotFound.Msg("document not found")
	assert.ErrorIs(t, err, errNotFound)
	assert.ErrorIs(t, err, errBase)
	assert.Equal(t, "document not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode())
	assert.Equal(t, 0, errBase.StatusCode())
}

func TestErrCauses(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := errNotFound.Err(cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errNotFound)
	assert.Equal(t, "not found", err.Error())
	assert.Equal(t, "not found: disk on fire", err.ErrorAll())

	expanded := errExpanded.Err(cause)
	assert.Equal(t, "expanded: disk on fire", expanded.Error())
}

func TestStatusCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("wrapping: %w", errNotFound.Msg("x"))
	assert.Equal(t, http.StatusNotFound, StatusCodeOf(wrapped, http.StatusInternalServerError))
	assert.Equal(t, http.StatusInternalServerError, StatusCodeOf(errors.New("plain"), http.StatusInternalServerError))
}
