// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"github.com/communityhub/portal/internal/types"
)

// Me is what the website needs to route a signed in visitor.
type Me struct {
	IdentityID      string     `json:"identityId"`
	Role            types.Role `json:"role"`
	Landing         string     `json:"landing"`
	ProfileComplete bool       `json:"profileComplete"`
}

type Assignments struct {
	IdentityID string                 `json:"identityId"`
	Email      string                 `json:"email,omitempty"`
	Effective  types.Role             `json:"effectiveRole"`
	Rows       []types.RoleAssignment `json:"assignments"`
}

type ProfileRequest struct {
	FullName string `json:"fullName" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=320"`
	Phone    string `json:"phone" validate:"omitempty,max=40"`
}

type RoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type RoleByEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}
