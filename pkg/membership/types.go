// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"github.com/communityhub/portal/internal/types"
)

type LookupStatus string

const (
	StatusReady   LookupStatus = "ready"
	StatusPreview LookupStatus = "preview"
	StatusPending LookupStatus = "pending"
)

type MemberInput struct {
	FullName string `json:"fullName" validate:"required,max=200"`
	Age      int    `json:"age" validate:"gte=0,lte=130"`
	Category string `json:"category" validate:"required,oneof=student senior regular youth"`
}

type QuoteRequest struct {
	Members []MemberInput `json:"members" validate:"required,min=1,max=20,dive"`
}

type CheckoutRequest struct {
	Members    []MemberInput `json:"members" validate:"required,min=1,max=20,dive"`
	Recurrence string        `json:"recurrence" validate:"omitempty,oneof=one_time yearly monthly"`
}

type PricingRequest struct {
	AmountCents int64 `json:"amountCents" validate:"gte=0"`
	MinAge      *int  `json:"minAge" validate:"omitempty,gte=0,lte=130"`
	MaxAge      *int  `json:"maxAge" validate:"omitempty,gte=0,lte=130"`
}

// Quote is the priced member list shown before checkout.
type Quote struct {
	Members    []types.Member `json:"members"`
	TotalCents int64          `json:"totalCents"`
}

// LookupResult answers the post-checkout poll. A preview carries the
// membership as it will look once payment is confirmed and is always
// provisional.
type LookupResult struct {
	Status      LookupStatus     `json:"status"`
	Provisional bool             `json:"provisional,omitempty"`
	Membership  *types.Household `json:"membership,omitempty"`
}
