// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"

	"github.com/communityhub/portal/internal/types"
)

// StorageInterface is the subset of internal/storage used by the roles package.
type StorageInterface interface {
	ListRoleAssignments(ctx context.Context, identityID string) ([]types.RoleAssignment, error)
	ReplaceRoles(ctx context.Context, identityID string, role types.Role) error
	UpsertProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
}

// AuthorizerInterface is the subset of internal/authorization used by the roles package.
type AuthorizerInterface interface {
	ResolveRole(ctx context.Context, identityID string) types.Role
	Landing(ctx context.Context, identityID string) (string, types.Role, bool)
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}

type ServiceInterface interface {
	Me(ctx context.Context, identityID string) (*Me, error)
	SaveProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	GetRoles(ctx context.Context, identityID string) (*Assignments, error)
	SetRole(ctx context.Context, actor types.Role, actorID, identityID string, role types.Role) error
	SetRoleByEmail(ctx context.Context, actor types.Role, actorID, email string, role types.Role) (string, error)
}
