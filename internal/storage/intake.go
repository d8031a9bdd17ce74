// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/communityhub/portal/internal/types"
)

var messageSpec = listSpec{
	table:      "contact_messages",
	columns:    []string{"id", "name", "email", "subject", "body", "status", "notes", "created_at", "updated_at"},
	searchCols: []string{"name", "email", "subject"},
	filterCols: map[string]string{"status": "status"},
	createdCol: "created_at",
}

var volunteerSpec = listSpec{
	table:      "volunteer_signups",
	columns:    []string{"id", "name", "email", "phone", "interests", "availability", "status", "notes", "created_at", "updated_at"},
	searchCols: []string{"name", "email", "interests"},
	filterCols: map[string]string{"status": "status"},
	createdCol: "created_at",
}

var socialRequestSpec = listSpec{
	table: "social_service_requests",
	columns: []string{
		"id", "requester_name", "email", "phone", "reason", "description", "amount_requested_cents",
		"status", "assigned_to", "admin_notes", "created_at", "updated_at",
	},
	searchCols: []string{"requester_name", "email", "description"},
	filterCols: map[string]string{
		"status":     "status",
		"reason":     "reason",
		"assignedTo": "assigned_to",
	},
	createdCol: "created_at",
	amountCol:  "amount_requested_cents",
}

// MessageUpdate holds the admin editable fields of a contact message, nil
// fields are left untouched.
type MessageUpdate struct {
	Status *types.MessageStatus
	Notes  *string
}

type SignupUpdate struct {
	Status *types.SignupStatus
	Notes  *string
}

// RequestUpdate changes a social service request. When Status is set the
// update only applies while the request is still in From. An empty
// AssignedTo clears the assignment.
type RequestUpdate struct {
	Status     *types.RequestStatus
	From       types.RequestStatus
	AssignedTo *string
	AdminNotes *string
}

func scanMessage(row sq.RowScanner) (types.ContactMessage, error) {
	var m types.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Status, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func scanSignup(row sq.RowScanner) (types.VolunteerSignup, error) {
	var v types.VolunteerSignup
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Interests, &v.Availability, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func scanRequest(row sq.RowScanner) (types.SocialServiceRequest, error) {
	var r types.SocialServiceRequest
	err := row.Scan(
		&r.ID, &r.RequesterName, &r.Email, &r.Phone, &r.Reason, &r.Description, &r.AmountRequestedCents,
		&r.Status, &r.AssignedTo, &r.AdminNotes, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (s *Storage) CreateContactMessage(ctx context.Context, m *types.ContactMessage) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateContactMessage")
	defer span.End()

	return s.insertWithID(ctx, "contact_messages",
		[]string{"name", "email", "subject", "body", "status"},
		m.Name, m.Email, m.Subject, m.Body, types.MessageNew,
	)
}

func (s *Storage) CreateVolunteerSignup(ctx context.Context, v *types.VolunteerSignup) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateVolunteerSignup")
	defer span.End()

	return s.insertWithID(ctx, "volunteer_signups",
		[]string{"name", "email", "phone", "interests", "availability", "status"},
		v.Name, v.Email, v.Phone, v.Interests, v.Availability, types.SignupPending,
	)
}

func (s *Storage) CreateSocialRequest(ctx context.Context, r *types.SocialServiceRequest) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSocialRequest")
	defer span.End()

	return s.insertWithID(ctx, "social_service_requests",
		[]string{"requester_name", "email", "phone", "reason", "description", "amount_requested_cents", "status"},
		r.RequesterName, r.Email, r.Phone, r.Reason, r.Description, r.AmountRequestedCents, types.RequestNew,
	)
}

func (s *Storage) insertWithID(ctx context.Context, table string, columns []string, values ...interface{}) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	_, err = s.db.Statement(ctx).
		Insert(table).
		Columns(append([]string{"id"}, columns...)...).
		Values(append([]interface{}{id}, values...)...).
		ExecContext(ctx)
	if err != nil {
		return "", mapWriteError(err, "insert into "+table)
	}

	return id, nil
}

func (s *Storage) GetContactMessage(ctx context.Context, id string) (*types.ContactMessage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetContactMessage")
	defer span.End()

	m, err := getOne(ctx, s, messageSpec, sq.Eq{"id": id}, scanMessage)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) ListContactMessages(ctx context.Context, f ListFilter) (*types.Page[types.ContactMessage], error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListContactMessages")
	defer span.End()

	return listPage(ctx, s, messageSpec, f, scanMessage)
}

func (s *Storage) ExportContactMessages(ctx context.Context, f ListFilter) ([]types.ContactMessage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExportContactMessages")
	defer span.End()

	return exportRows(ctx, s, messageSpec, f, scanMessage)
}

func (s *Storage) UpdateContactMessage(ctx context.Context, id string, u MessageUpdate) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateContactMessage")
	defer span.End()

	set := map[string]interface{}{}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}

	return s.updateWhere(ctx, "contact_messages", set, sq.Eq{"id": id}, false)
}

func (s *Storage) GetVolunteerSignup(ctx context.Context, id string) (*types.VolunteerSignup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetVolunteerSignup")
	defer span.End()

	v, err := getOne(ctx, s, volunteerSpec, sq.Eq{"id": id}, scanSignup)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Storage) ListVolunteerSignups(ctx context.Context, f ListFilter) (*types.Page[types.VolunteerSignup], error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListVolunteerSignups")
	defer span.End()

	return listPage(ctx, s, volunteerSpec, f, scanSignup)
}

func (s *Storage) ExportVolunteerSignups(ctx context.Context, f ListFilter) ([]types.VolunteerSignup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExportVolunteerSignups")
	defer span.End()

	return exportRows(ctx, s, volunteerSpec, f, scanSignup)
}

func (s *Storage) UpdateVolunteerSignup(ctx context.Context, id string, u SignupUpdate) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateVolunteerSignup")
	defer span.End()

	set := map[string]interface{}{}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}

	return s.updateWhere(ctx, "volunteer_signups", set, sq.Eq{"id": id}, false)
}

func (s *Storage) GetSocialRequest(ctx context.Context, id string) (*types.SocialServiceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSocialRequest")
	defer span.End()

	r, err := getOne(ctx, s, socialRequestSpec, sq.Eq{"id": id}, scanRequest)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Storage) ListSocialRequests(ctx context.Context, f ListFilter) (*types.Page[types.SocialServiceRequest], error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSocialRequests")
	defer span.End()

	return listPage(ctx, s, socialRequestSpec, f, scanRequest)
}

func (s *Storage) ExportSocialRequests(ctx context.Context, f ListFilter) ([]types.SocialServiceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExportSocialRequests")
	defer span.End()

	return exportRows(ctx, s, socialRequestSpec, f, scanRequest)
}

func (s *Storage) UpdateSocialRequest(ctx context.Context, id string, u RequestUpdate) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSocialRequest")
	defer span.End()

	set := map[string]interface{}{}
	where := sq.Eq{"id": id}

	if u.Status != nil {
		set["status"] = *u.Status
		where["status"] = u.From
	}
	if u.AssignedTo != nil {
		if *u.AssignedTo == "" {
			set["assigned_to"] = nil
		} else {
			set["assigned_to"] = *u.AssignedTo
		}
	}
	if u.AdminNotes != nil {
		set["admin_notes"] = *u.AdminNotes
	}

	return s.updateWhere(ctx, "social_service_requests", set, where, u.Status != nil)
}
