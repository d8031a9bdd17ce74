// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"time"
)

type PaymentMethod string

const (
	MethodStripe PaymentMethod = "stripe"
	MethodZelle  PaymentMethod = "zelle"
	MethodBank   PaymentMethod = "bank"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case MethodStripe, MethodZelle, MethodBank:
		return m, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

type DonationStatus string

const (
	DonationPending     DonationStatus = "pending"
	DonationSucceeded   DonationStatus = "succeeded"
	DonationFailed      DonationStatus = "failed"
	DonationRefunded    DonationStatus = "refunded"
	DonationNeedsReview DonationStatus = "needs_review"
)

func ParseDonationStatus(s string) (DonationStatus, error) {
	switch st := DonationStatus(s); st {
	case DonationPending, DonationSucceeded, DonationFailed, DonationRefunded, DonationNeedsReview:
		return st, nil
	}
	return "", fmt.Errorf("unknown donation status %q", s)
}

type Donation struct {
	ID          string         `db:"id" json:"id"`
	IdentityID  *string        `db:"identity_id" json:"identityId,omitempty"`
	DonorName   string         `db:"donor_name" json:"donorName"`
	DonorEmail  string         `db:"donor_email" json:"donorEmail"`
	Method      PaymentMethod  `db:"method" json:"method"`
	Status      DonationStatus `db:"status" json:"status"`
	AmountCents int64          `db:"amount_cents" json:"amountCents"`
	Fund        string         `db:"fund" json:"fund"`
	Recurrence  Recurrence     `db:"recurrence" json:"recurrence"`
	ExternalRef *string        `db:"external_ref" json:"externalRef,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`

	Proof *DonationProof `json:"proof,omitempty"`
}

// DonationProof is the evidence attached to a manually confirmed payment.
type DonationProof struct {
	DonationID     string     `db:"donation_id" json:"donationId"`
	TransferDate   *time.Time `db:"transfer_date" json:"transferDate,omitempty"`
	ProofURL       string     `db:"proof_url" json:"proofUrl,omitempty"`
	ProofObjectKey string     `db:"proof_object_key" json:"proofObjectKey,omitempty"`
	TransactionID  string     `db:"transaction_id" json:"transactionId,omitempty"`
	Reference      string     `db:"reference" json:"reference,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

type DonationSummary struct {
	ByMethod []AmountTotal `json:"byMethod"`
	ByFund   []AmountTotal `json:"byFund"`
}
