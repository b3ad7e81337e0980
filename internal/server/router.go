package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"calculator-api/internal/calculator"
	"calculator-api/internal/handlers"
	"calculator-api/internal/observability"
)

func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(observability.HTTPMetricsMiddleware)
	r.Use(middleware.GetHead)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/", handlers.Home(calculator.Name))
	r.Get("/health", handlers.Health)
	r.Get("/info", handlers.Info(handlers.ServiceInfo{
		Name:      calculator.Name,
		Version:   calculator.Version,
		Endpoints: calculator.Endpoints(),
	}))

	calculator.RegisterRoutes(r)

	r.Handle("/metrics", observability.PrometheusHandler())

	return r
}
