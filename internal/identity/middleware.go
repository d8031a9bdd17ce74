// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
)

// HeaderName is set by the identity-aware proxy in front of the service.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware attaches the proxy supplied identity to the request context.
// Requests without the header pass through anonymously, routes that need an
// identity reject them later.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if id := strings.TrimSpace(r.Header.Get(HeaderName)); id != "" {
			ctx = WithIdentityID(ctx, id)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
