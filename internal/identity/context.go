// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/communityhub/portal/internal/types"
)

type contextKey int

const (
	identityIDKey contextKey = iota
	roleKey
)

// WithIdentityID returns a copy of ctx carrying the authenticated identity.
func WithIdentityID(ctx context.Context, identityID string) context.Context {
	return context.WithValue(ctx, identityIDKey, identityID)
}

// IdentityID returns the authenticated identity, false for anonymous requests.
func IdentityID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityIDKey).(string)
	return id, ok && id != ""
}

// WithRole stores the effective role resolved for the current request.
func WithRole(ctx context.Context, role types.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

func Role(ctx context.Context) (types.Role, bool) {
	r, ok := ctx.Value(roleKey).(types.Role)
	return r, ok
}
