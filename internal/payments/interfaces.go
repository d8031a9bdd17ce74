// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
)

// ProviderInterface is the hosted checkout provider.
type ProviderInterface interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	// ParseWebhook verifies the signature header before decoding payload.
	ParseWebhook(payload []byte, signature string) (*Event, error)
}
