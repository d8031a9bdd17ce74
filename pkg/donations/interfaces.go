// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package donations

import (
	"context"

	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/types"
)

// StorageInterface is the subset of internal/storage used by the donations package.
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	SaveCheckoutIntent(ctx context.Context, i *types.CheckoutIntent) error

	CreateDonation(ctx context.Context, d *types.Donation) (*types.Donation, error)
	CreateDonationProof(ctx context.Context, p *types.DonationProof) error
	UpsertDonationByExternalRef(ctx context.Context, d *types.Donation) (*types.Donation, error)
	GetDonation(ctx context.Context, id string) (*types.Donation, error)
	TransitionDonationStatus(ctx context.Context, id string, from, to types.DonationStatus) error

	ListDonations(ctx context.Context, f storage.ListFilter) (*types.Page[types.Donation], error)
	ExportDonations(ctx context.Context, f storage.ListFilter) ([]types.Donation, error)
	SummarizeDonations(ctx context.Context, f storage.ListFilter) (*types.DonationSummary, error)
}

type PaymentsInterface interface {
	CreateCheckoutSession(ctx context.Context, req *payments.CheckoutRequest) (*payments.CheckoutSession, error)
}

// ObjectStoreInterface is the subset of internal/objectstore used for proof files.
type ObjectStoreInterface interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

type ServiceInterface interface {
	CreateCheckout(ctx context.Context, identityID string, req *CheckoutRequest) (*payments.CheckoutSession, error)
	RecordCheckout(ctx context.Context, session *payments.Session) (*types.Donation, error)
	MarkAsync(ctx context.Context, session *payments.Session, succeeded bool) (*types.Donation, error)
	RecordInvoice(ctx context.Context, invoice *payments.Invoice) (*types.Donation, error)

	SubmitManual(ctx context.Context, identityID string, req *ManualRequest, proof *ProofFile) (string, error)
	Transition(ctx context.Context, actorID, id string, req *TransitionRequest) (*types.Donation, error)

	List(ctx context.Context, f storage.ListFilter) (*types.Page[types.Donation], error)
	Export(ctx context.Context, f storage.ListFilter) ([]types.Donation, error)
	Summary(ctx context.Context, f storage.ListFilter) (*Summary, error)
}
