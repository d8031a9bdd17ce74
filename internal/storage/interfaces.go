// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/communityhub/portal/internal/types"
)

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	RoleStorageInterface
	MembershipStorageInterface
	DonationStorageInterface
	IntakeStorageInterface
}

type RoleStorageInterface interface {
	ListRoles(ctx context.Context, identityID string) ([]types.Role, error)
	ListRoleAssignments(ctx context.Context, identityID string) ([]types.RoleAssignment, error)
	AddRole(ctx context.Context, identityID string, role types.Role) error
	RemoveRole(ctx context.Context, identityID string, role types.Role) error
	ReplaceRoles(ctx context.Context, identityID string, role types.Role) error
	GetProfile(ctx context.Context, identityID string) (*types.Profile, error)
	UpsertProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
}

type MembershipStorageInterface interface {
	ListPricing(ctx context.Context) ([]types.PricingRule, error)
	UpsertPricing(ctx context.Context, r *types.PricingRule) error
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
	ListHouseholds(ctx context.Context, f ListFilter) (*types.Page[types.Household], error)
}

type DonationStorageInterface interface {
	CreateDonation(ctx context.Context, d *types.Donation) (*types.Donation, error)
	CreateDonationProof(ctx context.Context, p *types.DonationProof) error
	UpsertDonationByExternalRef(ctx context.Context, d *types.Donation) (*types.Donation, error)
	SetDonationStatusByExternalRef(ctx context.Context, ref string, status types.DonationStatus) error
	GetDonation(ctx context.Context, id string) (*types.Donation, error)
	GetDonationByExternalRef(ctx context.Context, ref string) (*types.Donation, error)
	TransitionDonationStatus(ctx context.Context, id string, from, to types.DonationStatus) error
	ListDonations(ctx context.Context, f ListFilter) (*types.Page[types.Donation], error)
	ExportDonations(ctx context.Context, f ListFilter) ([]types.Donation, error)
	SummarizeDonations(ctx context.Context, f ListFilter) (*types.DonationSummary, error)
}

type IntakeStorageInterface interface {
	CreateContactMessage(ctx context.Context, m *types.ContactMessage) (string, error)
	GetContactMessage(ctx context.Context, id string) (*types.ContactMessage, error)
	ListContactMessages(ctx context.Context, f ListFilter) (*types.Page[types.ContactMessage], error)
	ExportContactMessages(ctx context.Context, f ListFilter) ([]types.ContactMessage, error)
	UpdateContactMessage(ctx context.Context, id string, u MessageUpdate) error

	CreateVolunteerSignup(ctx context.Context, v *types.VolunteerSignup) (string, error)
	GetVolunteerSignup(ctx context.Context, id string) (*types.VolunteerSignup, error)
	ListVolunteerSignups(ctx context.Context, f ListFilter) (*types.Page[types.VolunteerSignup], error)
	ExportVolunteerSignups(ctx context.Context, f ListFilter) ([]types.VolunteerSignup, error)
	UpdateVolunteerSignup(ctx context.Context, id string, u SignupUpdate) error

	CreateSocialRequest(ctx context.Context, r *types.SocialServiceRequest) (string, error)
	GetSocialRequest(ctx context.Context, id string) (*types.SocialServiceRequest, error)
	ListSocialRequests(ctx context.Context, f ListFilter) (*types.Page[types.SocialServiceRequest], error)
	ExportSocialRequests(ctx context.Context, f ListFilter) ([]types.SocialServiceRequest, error)
	UpdateSocialRequest(ctx context.Context, id string, u RequestUpdate) error
}
