// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"math"
	"net/http"
	"strconv"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
)

const tooManyRequests = "too many requests, please try again later"

type Middleware struct {
	limiter LimiterInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// PerIP limits requests per client address under the given scope. A limiter
// failure lets the request through.
func (m *Middleware) PerIP(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "ratelimit.Middleware.PerIP")
			defer span.End()

			ip := ClientIP(r)

			d, err := m.limiter.Allow(ctx, scope+":"+ip)
			if err != nil {
				m.logger.Errorf("rate limiter unavailable, allowing request: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			if !d.Allowed {
				m.logger.Debugf("rate limited %s on %s", ip, scope)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Max(1, d.RetryAfter.Seconds()))))
				httptypes.WriteError(w, http.StatusTooManyRequests, tooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func NewMiddleware(limiter LimiterInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.limiter = limiter

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
