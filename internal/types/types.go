// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type RoleAssignment struct {
	IdentityID string    `db:"identity_id" json:"identityId"`
	Role       Role      `db:"role" json:"role"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type Profile struct {
	IdentityID string    `db:"identity_id" json:"identityId"`
	FullName   string    `db:"full_name" json:"fullName"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// Page is one page of a filtered listing together with the total match count.
type Page[T any] struct {
	Items    []T    `json:"items"`
	Total    uint64 `json:"total"`
	Page     uint64 `json:"page"`
	PageSize uint64 `json:"pageSize"`
}

// AmountTotal is one row of a grouped sum.
type AmountTotal struct {
	Key   string `json:"key"`
	Total int64  `json:"total"`
}
