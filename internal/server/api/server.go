// Package api exposes the arrival store over HTTP/JSON.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/guestkeeper/internal/logging"
	"github.com/dmitrijs2005/guestkeeper/internal/server/models"
	"github.com/dmitrijs2005/guestkeeper/internal/server/services"
	"github.com/rs/cors"
)

// DevOrigins are always allowed so a local front end can reach the API.
var DevOrigins = []string{"http://localhost:8080", "http://127.0.0.1:8080"}

// ArrivalService is the part of services.ArrivalService the handlers use.
type ArrivalService interface {
	All(ctx context.Context) (map[string]bool, error)
	SetArrived(ctx context.Context, rec models.ArrivalRecord) error
	Health(ctx context.Context) services.Health
}

type HTTPServer struct {
	address         string
	arrivals        ArrivalService
	logger          logging.Logger
	origins         []string
	shutdownTimeout time.Duration
}

func NewHTTPServer(address string, l logging.Logger, arrivals ArrivalService, allowedOrigin string, shutdownTimeout time.Duration) *HTTPServer {
	origins := make([]string, 0, len(DevOrigins)+1)
	if allowedOrigin != "" {
		origins = append(origins, allowedOrigin)
	}
	origins = append(origins, DevOrigins...)

	return &HTTPServer{
		address:         address,
		arrivals:        arrivals,
		logger:          l.With("module", "http_server"),
		origins:         origins,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler returns the routed API wrapped in CORS and request logging.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/arrivals", s.handleArrivals)
	mux.HandleFunc("PUT /api/guests/{id}/arrived", s.handleSetArrived)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return s.logRequests(c.Handler(mux))
}

// Run serves until ctx is done, then drains in-flight requests for at most
// the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn(ctx, "shutdown", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
