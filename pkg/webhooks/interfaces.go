// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/types"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	UpsertProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	AddRole(ctx context.Context, identityID string, role types.Role) error
}

// ProviderInterface verifies and decodes payment provider events.
type ProviderInterface interface {
	ParseWebhook(payload []byte, signature string) (*payments.Event, error)
}

// MembershipInterface is the subset of pkg/membership driven by payment events.
type MembershipInterface interface {
	Finalize(ctx context.Context, sessionID string) (*types.Household, error)
	ApplyRenewal(ctx context.Context, invoice *payments.Invoice) (*types.Household, error)
}

// DonationsInterface is the subset of pkg/donations driven by payment events.
type DonationsInterface interface {
	RecordCheckout(ctx context.Context, session *payments.Session) (*types.Donation, error)
	MarkAsync(ctx context.Context, session *payments.Session, succeeded bool) (*types.Donation, error)
	RecordInvoice(ctx context.Context, invoice *payments.Invoice) (*types.Donation, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity *KratosIdentity) error
	HandlePaymentEvent(ctx context.Context, event *payments.Event) error
}
