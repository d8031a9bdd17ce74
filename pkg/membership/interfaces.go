// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"time"

	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/types"
)

// StorageInterface is the subset of internal/storage used by the membership package.
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	ListPricing(ctx context.Context) ([]types.PricingRule, error)
	UpsertPricing(ctx context.Context, r *types.PricingRule) error

	GetProfile(ctx context.Context, identityID string) (*types.Profile, error)
	ListRoles(ctx context.Context, identityID string) ([]types.Role, error)
	AddRole(ctx context.Context, identityID string, role types.Role) error
	RemoveRole(ctx context.Context, identityID string, role types.Role) error

	SaveCheckoutIntent(ctx context.Context, i *types.CheckoutIntent) error
	GetCheckoutIntent(ctx context.Context, sessionID string) (*types.CheckoutIntent, error)
	MarkIntentFinalized(ctx context.Context, sessionID string) error

	UpsertHousehold(ctx context.Context, h *types.Household) (string, bool, error)
	ReplaceMembers(ctx context.Context, householdID string, members []types.Member) error
	GetHousehold(ctx context.Context, id string) (*types.Household, error)
	GetHouseholdByIdentity(ctx context.Context, identityID string) (*types.Household, error)
	GetHouseholdBySession(ctx context.Context, sessionID string) (*types.Household, error)
	GetHouseholdBySubscription(ctx context.Context, subscriptionID string) (*types.Household, error)
	ExtendHousehold(ctx context.Context, subscriptionID string, start, end time.Time) (bool, error)
	RevokeHousehold(ctx context.Context, id string) error
	ListHouseholds(ctx context.Context, f storage.ListFilter) (*types.Page[types.Household], error)
}

// PaymentsInterface is the subset of internal/payments used by the membership package.
type PaymentsInterface interface {
	CreateCheckoutSession(ctx context.Context, req *payments.CheckoutRequest) (*payments.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*payments.Session, error)
}

type ServiceInterface interface {
	Pricing(ctx context.Context) ([]types.PricingRule, error)
	SetPricing(ctx context.Context, actorID string, rule *types.PricingRule) error

	Quote(ctx context.Context, members []MemberInput) (*Quote, error)
	CreateCheckout(ctx context.Context, identityID string, req *CheckoutRequest) (*payments.CheckoutSession, error)
	Renew(ctx context.Context, identityID string) (*payments.CheckoutSession, error)

	Finalize(ctx context.Context, sessionID string) (*types.Household, error)
	ApplyRenewal(ctx context.Context, invoice *payments.Invoice) (*types.Household, error)
	Lookup(ctx context.Context, identityID, sessionID string) (*LookupResult, error)

	MyMembership(ctx context.Context, identityID string) (*types.Household, error)
	Revoke(ctx context.Context, actorID, householdID string) error
	ListHouseholds(ctx context.Context, f storage.ListFilter) (*types.Page[types.Household], error)
}
