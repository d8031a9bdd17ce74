// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"time"
)

type MemberCategory string

const (
	CategoryStudent MemberCategory = "student"
	CategorySenior  MemberCategory = "senior"
	CategoryRegular MemberCategory = "regular"
	CategoryYouth   MemberCategory = "youth"
)

func ParseMemberCategory(s string) (MemberCategory, error) {
	switch c := MemberCategory(s); c {
	case CategoryStudent, CategorySenior, CategoryRegular, CategoryYouth:
		return c, nil
	}
	return "", fmt.Errorf("unknown member category %q", s)
}

type Recurrence string

const (
	RecurrenceOneTime Recurrence = "one_time"
	RecurrenceYearly  Recurrence = "yearly"
	RecurrenceMonthly Recurrence = "monthly"
)

func ParseRecurrence(s string) (Recurrence, error) {
	switch r := Recurrence(s); r {
	case RecurrenceOneTime, RecurrenceYearly, RecurrenceMonthly:
		return r, nil
	case "":
		return RecurrenceOneTime, nil
	}
	return "", fmt.Errorf("unknown recurrence %q", s)
}

type HouseholdStatus string

const (
	HouseholdActive  HouseholdStatus = "active"
	HouseholdRevoked HouseholdStatus = "revoked"
)

// PricingRule is one active row of the pricing table.
type PricingRule struct {
	MemberType  MemberCategory `db:"member_type" json:"memberType"`
	AmountCents int64          `db:"amount_cents" json:"amountCents"`
	MinAge      *int           `db:"min_age" json:"minAge,omitempty"`
	MaxAge      *int           `db:"max_age" json:"maxAge,omitempty"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}

type Household struct {
	ID                     string          `db:"id" json:"id"`
	IdentityID             string          `db:"identity_id" json:"identityId"`
	Status                 HouseholdStatus `db:"status" json:"status"`
	StartDate              time.Time       `db:"start_date" json:"startDate"`
	EndDate                time.Time       `db:"end_date" json:"endDate"`
	Recurrence             Recurrence      `db:"recurrence" json:"recurrence"`
	ProviderCustomerID     string          `db:"provider_customer_id" json:"providerCustomerId,omitempty"`
	ProviderSubscriptionID string          `db:"provider_subscription_id" json:"providerSubscriptionId,omitempty"`
	LastSessionID          string          `db:"last_session_id" json:"lastSessionId"`
	TotalCents             int64           `db:"total_cents" json:"totalCents"`
	CreatedAt              time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt              time.Time       `db:"updated_at" json:"-"`

	Members []Member `json:"members"`
}

type Member struct {
	Position   int            `db:"position" json:"position"`
	FullName   string         `db:"full_name" json:"fullName"`
	Age        int            `db:"age" json:"age"`
	Category   MemberCategory `db:"category" json:"category"`
	PriceCents int64          `db:"price_cents" json:"priceCents"`
}

type CheckoutKind string

const (
	CheckoutMembership CheckoutKind = "membership"
	CheckoutDonation   CheckoutKind = "donation"
)

// CheckoutIntent is what was about to be purchased when a checkout session was
// created. It backs the provisional preview shown before finalization lands.
type CheckoutIntent struct {
	SessionID   string       `db:"session_id" json:"sessionId"`
	IdentityID  string       `db:"identity_id" json:"identityId,omitempty"`
	Kind        CheckoutKind `db:"kind" json:"kind"`
	Recurrence  Recurrence   `db:"recurrence" json:"recurrence"`
	Members     []Member     `db:"payload" json:"members,omitempty"`
	RenewFrom   *time.Time   `db:"renew_from" json:"renewFrom,omitempty"`
	AmountCents int64        `db:"amount_cents" json:"amountCents"`
	CreatedAt   time.Time    `db:"created_at" json:"createdAt"`
	FinalizedAt *time.Time   `db:"finalized_at" json:"finalizedAt,omitempty"`
}
