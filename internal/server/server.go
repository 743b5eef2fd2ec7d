package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/mugiliam/labcatalog/internal/catalog"
	"github.com/mugiliam/labcatalog/internal/config"
	"github.com/mugiliam/labcatalog/internal/server/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const ServerVersion = "LabCatalog: 1.0.0"

type LabCatalogServer struct {
	Router  *chi.Mux
	catalog *catalog.Catalog
}

func CreateNewServer(c *catalog.Catalog) (*LabCatalogServer, error) {
	if c == nil {
		return nil, errors.New("catalog is required")
	}
	s := &LabCatalogServer{catalog: c}
	s.Router = chi.NewRouter()
	return s, nil
}

func (s *LabCatalogServer) MountHandlers() {
	s.Router.Use(middleware.RequestLogger)
	if config.Config().Server.HandleCORS {
		s.Router.Use(s.HandleCORS)
	}
	s.Router.Route("/catalogs", s.mountCatalogHandlers)
	if log.Logger.GetLevel() <= zerolog.TraceLevel {
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			log.Trace().Str("method", method).Str("route", route).Msg("route")
			return nil
		}
		if err := chi.Walk(s.Router, walkFunc); err != nil {
			log.Error().Err(err).Msg("failed to walk routes")
		}
	}
}

func (s *LabCatalogServer) mountCatalogHandlers(r chi.Router) {
	r.Use(middleware.LoadCatalog(s.catalog))
	r.Get("/version", s.getVersion)
	for _, h := range catalogHandlers {
		r.Method(h.Method, h.Path, h.Handler)
	}
}

func (s *LabCatalogServer) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Set CORS headers
		w.Header().Set("Access-Control-Allow-Origin", config.Config().Server.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Request-ID")

		if r.Method == http.MethodOptions {
			log.Ctx(r.Context()).Debug().Msg("OPTIONS request")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *LabCatalogServer) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Ctx(ctx).Info().Str("listen", addr).Msg("serving labware catalog")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		log.Ctx(ctx).Info().Msg("shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}
