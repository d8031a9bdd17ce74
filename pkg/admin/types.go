// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"github.com/communityhub/portal/internal/types"
)

// Actor is the signed in reviewer performing a change.
type Actor struct {
	ID   string
	Role types.Role
}

type MessagePatch struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes" validate:"omitempty,max=5000"`
}

type SignupPatch struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes" validate:"omitempty,max=5000"`
}

type RequestPatch struct {
	Status     *string `json:"status"`
	AssignedTo *string `json:"assignedTo" validate:"omitempty,max=100"`
	AdminNotes *string `json:"adminNotes" validate:"omitempty,max=5000"`
}
