// Package httpx holds the response helpers shared by the HTTP handlers.
package httpx

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mugiliam/labcatalog/internal/apperrors"
	"github.com/mugiliam/labcatalog/internal/common"
	"github.com/rs/zerolog/log"
)

// Response is returned by a ResponseHandler. Response is encoded as JSON
// unless ContentType is set, in which case it must be a []byte or string.
type Response struct {
	StatusCode  int
	ContentType string
	Response    any
}

type ResponseHandler func(r *http.Request) (*Response, error)

type ErrorRsp struct {
	Error     string `json:"error"`
	RequestId string `json:"request_id,omitempty"`
}

// WrapHttpRsp adapts a ResponseHandler to an http.HandlerFunc.
func WrapHttpRsp(handler ResponseHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rsp, err := handler(r)
		if err != nil {
			SendError(r.Context(), w, err)
			return
		}
		if rsp.ContentType == "" {
			SendJsonRsp(r.Context(), w, rsp.StatusCode, rsp.Response)
			return
		}
		w.Header().Set("Content-Type", rsp.ContentType)
		w.WriteHeader(rsp.StatusCode)
		switch body := rsp.Response.(type) {
		case []byte:
			_, err = w.Write(body)
		case string:
			_, err = w.Write([]byte(body))
		}
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
		}
	}
}

func SendJsonRsp(ctx context.Context, w http.ResponseWriter, statusCode int, rsp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

// SendError maps err to its status code. Errors without one are reported
// as internal errors and their text is not exposed.
func SendError(ctx context.Context, w http.ResponseWriter, err error) {
	statusCode := apperrors.StatusCodeOf(err, http.StatusInternalServerError)
	msg := err.Error()
	if statusCode == http.StatusInternalServerError {
		log.Ctx(ctx).Error().Err(err).Msg("request failed")
		msg = http.StatusText(statusCode)
	}
	SendJsonRsp(ctx, w, statusCode, &ErrorRsp{
		Error:     msg,
		RequestId: common.RequestIdFromContext(ctx),
	})
}
