// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/communityhub/portal/internal/db"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/pkg/metrics"
	"github.com/communityhub/portal/pkg/status"
)

const adminPrefix = "/api/v0/admin/"

// APIInterface is implemented by every pkg API.
type APIInterface interface {
	RegisterEndpoints(mux *chi.Mux)
}

// NewRouter mounts the APIs behind the shared middleware chain. identify
// attaches the caller identity to the request context, from the proxy header
// or from a bearer token.
func NewRouter(
	dbClient db.DBClientInterface,
	identify func(http.Handler) http.Handler,
	allowedOrigins []string,
	apis []APIInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.RealIP,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(allowedOrigins),
		identify,
		adminTransactions(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	for _, api := range apis {
		api.RegisterEndpoints(router)
	}

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Stripe-Signature"},
			ExposedHeaders:   []string{"Content-Disposition", "Retry-After"},
			AllowCredentials: false,
			MaxAge:           300,
		},
	)
}

// adminTransactions runs back office requests in a single database
// transaction so a failed request leaves no partial writes behind.
func adminTransactions(dbClient db.DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	tx := db.TransactionMiddleware(dbClient, logger)

	return func(next http.Handler) http.Handler {
		wrapped := tx(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, adminPrefix) {
				wrapped.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
