// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"net/http"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/identity"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

type Middleware struct {
	authorizer AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequireRole rejects anonymous requests with 401 and identities ranked
// below min with 403. The role is resolved on every request and stored in
// the request context.
func (m *Middleware) RequireRole(min types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireRole")
			defer span.End()

			identityID, ok := identity.IdentityID(ctx)
			if !ok {
				m.logger.Security().AuthnFailure("missing identity")
				httptypes.WriteError(w, http.StatusUnauthorized, httptypes.ErrUnauthenticated.Error())
				return
			}

			role := m.authorizer.ResolveRole(ctx, identityID)
			if !role.AtLeast(min) {
				m.logger.Security().AuthzFailure(identityID, r.URL.Path)
				httptypes.WriteError(w, http.StatusForbidden, httptypes.ErrForbidden.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithRole(ctx, role)))
		})
	}
}

// RequireIdentity only rejects anonymous requests.
func (m *Middleware) RequireIdentity() func(http.Handler) http.Handler {
	return m.RequireRole(types.RoleUser)
}

func NewMiddleware(authorizer AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		authorizer: authorizer,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
