// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

type Authorizer struct {
	store RoleStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolveRole picks the highest ranked role among every assignment row of
// the identity. Lookup failures resolve to user.
func (a *Authorizer) ResolveRole(ctx context.Context, identityID string) types.Role {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ResolveRole")
	defer span.End()

	roles, err := a.store.ListRoles(ctx, identityID)
	if err != nil {
		a.logger.Errorw("role lookup failed, falling back to user", "identity_id", identityID, "error", err)
		return types.RoleUser
	}

	return types.HighestRole(roles)
}

func (a *Authorizer) IsAdmin(ctx context.Context, identityID string) bool {
	return a.ResolveRole(ctx, identityID).IsAdmin()
}

func (a *Authorizer) IsSuperAdmin(ctx context.Context, identityID string) bool {
	return a.ResolveRole(ctx, identityID) == types.RoleSuperAdmin
}

// Landing returns where the identity should go after sign in. Without a
// profile every role lands on the profile completion step.
func (a *Authorizer) Landing(ctx context.Context, identityID string) (string, types.Role, bool) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Landing")
	defer span.End()

	role := a.ResolveRole(ctx, identityID)

	_, err := a.store.GetProfile(ctx, identityID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return PROFILE_COMPLETE_ROUTE, role, false
	case err != nil:
		a.logger.Errorw("profile lookup failed", "identity_id", identityID, "error", err)
		return PROFILE_COMPLETE_ROUTE, role, false
	}

	return LandingRoute(role), role, true
}

func NewAuthorizer(store RoleStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.store = store
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
