// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type MessageStatus string

const (
	MessageNew    MessageStatus = "new"
	MessageSeen   MessageStatus = "seen"
	MessageClosed MessageStatus = "closed"
)

type ContactMessage struct {
	ID        string        `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Email     string        `db:"email" json:"email"`
	Subject   string        `db:"subject" json:"subject"`
	Body      string        `db:"body" json:"body"`
	Status    MessageStatus `db:"status" json:"status"`
	Notes     string        `db:"notes" json:"notes"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`
}

type SignupStatus string

const (
	SignupPending   SignupStatus = "pending"
	SignupConfirmed SignupStatus = "confirmed"
	SignupDeclined  SignupStatus = "declined"
)

type VolunteerSignup struct {
	ID           string       `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	Email        string       `db:"email" json:"email"`
	Phone        string       `db:"phone" json:"phone"`
	Interests    string       `db:"interests" json:"interests"`
	Availability string       `db:"availability" json:"availability"`
	Status       SignupStatus `db:"status" json:"status"`
	Notes        string       `db:"notes" json:"notes"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updatedAt"`
}

type RequestStatus string

const (
	RequestNew      RequestStatus = "new"
	RequestInReview RequestStatus = "in_review"
	RequestApproved RequestStatus = "approved"
	RequestDeclined RequestStatus = "declined"
	RequestComplete RequestStatus = "completed"
	RequestArchived RequestStatus = "archived"
)

type SocialServiceRequest struct {
	ID                   string        `db:"id" json:"id"`
	RequesterName        string        `db:"requester_name" json:"requesterName"`
	Email                string        `db:"email" json:"email"`
	Phone                string        `db:"phone" json:"phone"`
	Reason               string        `db:"reason" json:"reason"`
	Description          string        `db:"description" json:"description"`
	AmountRequestedCents int64         `db:"amount_requested_cents" json:"amountRequestedCents"`
	Status               RequestStatus `db:"status" json:"status"`
	AssignedTo           *string       `db:"assigned_to" json:"assignedTo,omitempty"`
	AdminNotes           string        `db:"admin_notes" json:"adminNotes"`
	CreatedAt            time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time     `db:"updated_at" json:"updatedAt"`
}
