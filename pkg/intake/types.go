// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intake

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type VolunteerRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email,max=254"`
	Phone        string `json:"phone" validate:"max=50"`
	Interests    string `json:"interests" validate:"max=2000"`
	Availability string `json:"availability" validate:"max=2000"`
}

type SocialRequest struct {
	Name                 string `json:"name" validate:"required,max=200"`
	Email                string `json:"email" validate:"required,email,max=254"`
	Phone                string `json:"phone" validate:"max=50"`
	Reason               string `json:"reason" validate:"required,max=100"`
	Description          string `json:"description" validate:"required,max=5000"`
	AmountRequestedCents int64  `json:"amountRequestedCents" validate:"gte=0"`
}
