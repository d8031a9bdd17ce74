// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"time"

	"github.com/communityhub/portal/internal/types"
)

const (
	EventCheckoutCompleted          = "checkout.session.completed"
	EventCheckoutAsyncPaymentOK     = "checkout.session.async_payment_succeeded"
	EventCheckoutAsyncPaymentFailed = "checkout.session.async_payment_failed"
	EventChargeRefunded             = "charge.refunded"
	EventInvoicePaid                = "invoice.paid"
)

// BillingReasonSubscriptionCreate marks the first invoice of a subscription,
// which is paid through its checkout session.
const BillingReasonSubscriptionCreate = "subscription_create"

// Metadata keys attached to every checkout session.
const (
	MetadataIdentityID = "identity_id"
	MetadataKind       = "kind"
	MetadataRecurrence = "recurrence"
	MetadataMembers    = "members"
	MetadataRenewFrom  = "renew_from"
	MetadataFund       = "fund"
)

type LineItem struct {
	Name        string
	AmountCents int64
	Quantity    int64
}

type CheckoutRequest struct {
	Recurrence    types.Recurrence
	LineItems     []LineItem
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
	Donation      bool
}

type CheckoutSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// Session is the provider's view of a checkout session.
type Session struct {
	ID             string
	Complete       bool
	Paid           bool
	AmountTotal    int64
	Metadata       map[string]string
	CustomerID     string
	CustomerEmail  string
	CustomerName   string
	SubscriptionID string
	// PeriodStart and PeriodEnd are set for subscription sessions.
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Created     time.Time
}

// Invoice is a paid subscription invoice. Metadata is the subscription's,
// copied from the checkout session that created it.
type Invoice struct {
	ID             string
	SubscriptionID string
	CustomerID     string
	CustomerEmail  string
	CustomerName   string
	AmountPaid     int64
	BillingReason  string
	Metadata       map[string]string
	// PeriodStart and PeriodEnd is the subscription period the invoice pays for.
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Created     time.Time
}

type Event struct {
	ID      string
	Type    string
	Session *Session
	Invoice *Invoice
}
