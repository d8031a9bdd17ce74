// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package donations

type CheckoutRequest struct {
	AmountCents int64  `json:"amountCents" validate:"gte=100"`
	Fund        string `json:"fund" validate:"required,max=100"`
	Recurrence  string `json:"recurrence" validate:"omitempty,oneof=one_time yearly monthly"`
	DonorName   string `json:"donorName" validate:"max=200"`
	DonorEmail  string `json:"donorEmail" validate:"omitempty,email,max=254"`
}

// ManualRequest is a donor's claim of a bank transfer or Zelle payment.
// The method specific rules are checked by the service so every failing
// field is reported at once.
type ManualRequest struct {
	DonorName     string `json:"donorName" validate:"required,max=200"`
	DonorEmail    string `json:"donorEmail" validate:"required,email,max=254"`
	AmountCents   int64  `json:"amountCents"`
	Method        string `json:"method"`
	Fund          string `json:"fund" validate:"max=100"`
	TransactionID string `json:"transactionId" validate:"max=100"`
	Reference     string `json:"reference" validate:"max=100"`
	TransferDate  string `json:"transferDate"`
	ProofURL      string `json:"proofUrl" validate:"omitempty,url,max=2000"`
}

// ProofFile is an uploaded proof of payment.
type ProofFile struct {
	Name string
	Data []byte
}

// TransitionRequest moves a donation to Status. Confirmed must be set, the
// review screen asks before sending it.
type TransitionRequest struct {
	Status    string `json:"status"`
	Confirmed bool   `json:"confirmed"`
}

type MethodTotal struct {
	Method string `json:"method"`
	Total  int64  `json:"total"`
}

type FundTotal struct {
	Fund  string `json:"fund"`
	Total int64  `json:"total"`
}

type Summary struct {
	ByMethod []MethodTotal `json:"byMethod"`
	ByFund   []FundTotal   `json:"byFund"`
}
