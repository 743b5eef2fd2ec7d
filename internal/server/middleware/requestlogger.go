package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mugiliam/labcatalog/internal/common"
	"github.com/rs/zerolog/log"
)

const RequestIdHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// RequestLogger tags every request with an id, attaches a request scoped
// logger to the context and logs the outcome.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, requestId)

		logger := log.Ctx(r.Context()).With().Str("request_id", requestId).Logger()
		ctx := logger.WithContext(common.SetRequestIdInContext(r.Context(), requestId))

		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r.WithContext(ctx))

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sr.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
