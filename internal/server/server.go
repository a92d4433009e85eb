// Package server implements the hotel backend routes on top of GORM: one
// list/get/create/update/delete collection per entity, with page-number
// pagination through hotelpager.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Alp4ka/hotelpager/model"
)

// Service represents the backend HTTP API
type Service struct {
	ListenAddress string
	DB            *gorm.DB
	Logger        zerolog.Logger

	mu     sync.Mutex
	server *http.Server
	writer *Writer
}

// Router builds the HTTP handler of the API
func (service *Service) Router() http.Handler {
	service.writer = &Writer{
		InternalErrorHook: func(err error) {
			service.Logger.Error().Err(err).Msg("the API experienced an unexpected error")
		},
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(echoRequestID)
	router.Use(middleware.RedirectSlashes)
	router.Use(service.accessLog)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://*", "https://*"},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusNotFound, ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/window", service.endpointWindow)

		mountResource[model.Booking](r, service.DB, model.Bookings, service.writer)
		mountResource[model.Room](r, service.DB, model.Rooms, service.writer)
		mountResource[model.Employee](r, service.DB, model.Employees, service.writer)
		mountResource[model.InventoryItem](r, service.DB, model.Inventory, service.writer)
		mountResource[model.Asset](r, service.DB, model.Assets, service.writer)
		mountResource[model.MaintenanceSchedule](r, service.DB, model.Maintenance, service.writer)
		mountResource[model.WorkSchedule](r, service.DB, model.WorkSchedules, service.writer)
	})

	return router
}

// Startup serves the API until Shutdown is called. It returns
// http.ErrServerClosed once the service has been shut down, including when
// Shutdown ran first.
func (service *Service) Startup() error {
	return service.httpServer().ListenAndServe()
}

// Shutdown gracefully stops the API, waiting for in-flight requests.
func (service *Service) Shutdown(ctx context.Context) error {
	return service.httpServer().Shutdown(ctx)
}

// httpServer builds the server on first use, so Startup and Shutdown racing
// from different goroutines always operate on the same instance.
func (service *Service) httpServer() *http.Server {
	service.mu.Lock()
	defer service.mu.Unlock()

	if service.server == nil {
		service.server = &http.Server{
			Addr:              service.ListenAddress,
			Handler:           service.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return service.server
}

// echoRequestID returns the request id, taken from X-Request-Id or generated,
// to the caller.
func echoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set(middleware.RequestIDHeader, middleware.GetReqID(request.Context()))
		next.ServeHTTP(writer, request)
	})
}

func (service *Service) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		wrapped := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)
		started := time.Now()

		next.ServeHTTP(wrapped, request)

		service.Logger.Debug().
			Str("request_id", middleware.GetReqID(request.Context())).
			Str("method", request.Method).
			Str("path", request.URL.Path).
			Int("status", wrapped.Status()).
			Int("bytes", wrapped.BytesWritten()).
			Dur("took", time.Since(started)).
			Msg("handled request")
	})
}
