// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"net/http"

	"github.com/communityhub/portal/internal/types"
)

type AuthorizerInterface interface {
	// ResolveRole returns the effective role of the identity, user when the
	// lookup fails.
	ResolveRole(context.Context, string) types.Role
	IsAdmin(context.Context, string) bool
	IsSuperAdmin(context.Context, string) bool
	Landing(context.Context, string) (string, types.Role, bool)
}

// RoleStoreInterface is the subset of internal/storage the authorizer reads.
type RoleStoreInterface interface {
	ListRoles(ctx context.Context, identityID string) ([]types.Role, error)
	GetProfile(ctx context.Context, identityID string) (*types.Profile, error)
}

// MiddlewareInterface guards routes by minimum role.
type MiddlewareInterface interface {
	RequireRole(min types.Role) func(http.Handler) http.Handler
}
