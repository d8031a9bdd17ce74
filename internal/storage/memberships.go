// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/communityhub/portal/internal/types"
)

var householdSpec = listSpec{
	table: "membership_households",
	columns: []string{
		"id", "identity_id", "status", "start_date", "end_date", "recurrence",
		"provider_customer_id", "provider_subscription_id", "last_session_id",
		"total_cents", "created_at", "updated_at",
	},
	searchCols: []string{"identity_id", "last_session_id", "provider_subscription_id"},
	filterCols: map[string]string{
		"status":     "status",
		"recurrence": "recurrence",
	},
	createdCol: "created_at",
	amountCol:  "total_cents",
}

func scanHousehold(row sq.RowScanner) (types.Household, error) {
	var h types.Household
	err := row.Scan(
		&h.ID, &h.IdentityID, &h.Status, &h.StartDate, &h.EndDate, &h.Recurrence,
		&h.ProviderCustomerID, &h.ProviderSubscriptionID, &h.LastSessionID,
		&h.TotalCents, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// SaveCheckoutIntent records what a checkout session is paying for. Saving the
// same session twice keeps the first record.
func (s *Storage) SaveCheckoutIntent(ctx context.Context, i *types.CheckoutIntent) error {
	ctx, span := s.tracer.Start(ctx, "storage.SaveCheckoutIntent")
	defer span.End()

	members := i.Members
	if members == nil {
		members = []types.Member{}
	}

	payload, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("failed to encode intent payload: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("checkout_intents").
		Columns("session_id", "identity_id", "kind", "recurrence", "payload", "renew_from", "amount_cents").
		Values(i.SessionID, i.IdentityID, i.Kind, i.Recurrence, payload, i.RenewFrom, i.AmountCents).
		Suffix("ON CONFLICT (session_id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return mapWriteError(err, "save checkout intent")
	}

	return nil
}

func (s *Storage) GetCheckoutIntent(ctx context.Context, sessionID string) (*types.CheckoutIntent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCheckoutIntent")
	defer span.End()

	var (
		i         types.CheckoutIntent
		payload   []byte
		renewFrom sql.NullTime
		finalized sql.NullTime
	)

	err := s.db.Statement(ctx).
		Select("session_id", "identity_id", "kind", "recurrence", "payload", "renew_from", "amount_cents", "created_at", "finalized_at").
		From("checkout_intents").
		Where(sq.Eq{"session_id": sessionID}).
		QueryRowContext(ctx).
		Scan(&i.SessionID, &i.IdentityID, &i.Kind, &i.Recurrence, &payload, &renewFrom, &i.AmountCents, &i.CreatedAt, &finalized)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get checkout intent: %w", err)
	}

	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &i.Members); err != nil {
			return nil, fmt.Errorf("failed to decode intent payload: %w", err)
		}
	}
	i.RenewFrom = timePtr(renewFrom)
	i.FinalizedAt = timePtr(finalized)

	return &i, nil
}

func (s *Storage) MarkIntentFinalized(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkIntentFinalized")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("checkout_intents").
		Set("finalized_at", sq.Expr("COALESCE(finalized_at, now())")).
		Where(sq.Eq{"session_id": sessionID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark intent finalized: %w", err)
	}

	return nil
}

// UpsertHousehold writes the household of h.IdentityID. The write is skipped
// when the stored row already comes from h.LastSessionID or covers a later
// period; applied reports whether the row changed.
func (s *Storage) UpsertHousehold(ctx context.Context, h *types.Household) (id string, applied bool, err error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertHousehold")
	defer span.End()

	hid, err := newID()
	if err != nil {
		return "", false, err
	}

	err = s.db.Statement(ctx).
		Insert("membership_households").
		Columns(
			"id", "identity_id", "status", "start_date", "end_date", "recurrence",
			"provider_customer_id", "provider_subscription_id", "last_session_id", "total_cents",
		).
		Values(
			hid, h.IdentityID, types.HouseholdActive, h.StartDate, h.EndDate, h.Recurrence,
			h.ProviderCustomerID, h.ProviderSubscriptionID, h.LastSessionID, h.TotalCents,
		).
		Suffix(`ON CONFLICT (identity_id) DO UPDATE SET
			status = EXCLUDED.status,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			recurrence = EXCLUDED.recurrence,
			provider_customer_id = EXCLUDED.provider_customer_id,
			provider_subscription_id = EXCLUDED.provider_subscription_id,
			last_session_id = EXCLUDED.last_session_id,
			total_cents = EXCLUDED.total_cents,
			updated_at = now()
		WHERE membership_households.last_session_id <> EXCLUDED.last_session_id
			AND membership_households.end_date <= EXCLUDED.end_date
		RETURNING id`).
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		if isNoRows(err) {
			return "", false, nil
		}
		return "", false, mapWriteError(err, "upsert household")
	}

	return id, true, nil
}

// ReplaceMembers stores members at their positions and drops any position
// beyond the new list.
func (s *Storage) ReplaceMembers(ctx context.Context, householdID string, members []types.Member) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReplaceMembers")
	defer span.End()

	if len(members) > 0 {
		q := s.db.Statement(ctx).
			Insert("membership_members").
			Columns("household_id", "position", "full_name", "age", "category", "price_cents")
		for _, m := range members {
			q = q.Values(householdID, m.Position, m.FullName, m.Age, m.Category, m.PriceCents)
		}

		_, err := q.Suffix(`ON CONFLICT (household_id, position) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			age = EXCLUDED.age,
			category = EXCLUDED.category,
			price_cents = EXCLUDED.price_cents`).
			ExecContext(ctx)
		if err != nil {
			return mapWriteError(err, "upsert members")
		}
	}

	_, err := s.db.Statement(ctx).
		Delete("membership_members").
		Where(sq.And{sq.Eq{"household_id": householdID}, sq.GtOrEq{"position": len(members)}}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to trim members: %w", err)
	}

	return nil
}

func (s *Storage) GetHouseholdByIdentity(ctx context.Context, identityID string) (*types.Household, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetHouseholdByIdentity")
	defer span.End()

	return s.getHousehold(ctx, sq.Eq{"identity_id": identityID})
}

func (s *Storage) GetHouseholdBySession(ctx context.Context, sessionID string) (*types.Household, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetHouseholdBySession")
	defer span.End()

	return s.getHousehold(ctx, sq.Eq{"last_session_id": sessionID})
}

func (s *Storage) GetHouseholdBySubscription(ctx context.Context, subscriptionID string) (*types.Household, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetHouseholdBySubscription")
	defer span.End()

	return s.getHousehold(ctx, sq.Eq{"provider_subscription_id": subscriptionID})
}

// ExtendHousehold moves the household paid by subscriptionID to a later
// billing period. Revoked households and periods not later than the stored
// one are left alone, applied reports whether the row changed.
func (s *Storage) ExtendHousehold(ctx context.Context, subscriptionID string, start, end time.Time) (applied bool, err error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExtendHousehold")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("membership_households").
		Set("start_date", start).
		Set("end_date", end).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"provider_subscription_id": subscriptionID},
			sq.NotEq{"status": types.HouseholdRevoked},
			sq.Lt{"end_date": end},
		}).
		ExecContext(ctx)
	if err != nil {
		return false, mapWriteError(err, "extend household")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n > 0, nil
}

func (s *Storage) GetHousehold(ctx context.Context, id string) (*types.Household, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetHousehold")
	defer span.End()

	return s.getHousehold(ctx, sq.Eq{"id": id})
}

func (s *Storage) getHousehold(ctx context.Context, where sq.Sqlizer) (*types.Household, error) {
	h, err := getOne(ctx, s, householdSpec, where, scanHousehold)
	if err != nil {
		return nil, err
	}

	members, err := s.listMembers(ctx, []string{h.ID})
	if err != nil {
		return nil, err
	}
	h.Members = members[h.ID]
	if h.Members == nil {
		h.Members = []types.Member{}
	}

	return &h, nil
}

func (s *Storage) listMembers(ctx context.Context, householdIDs []string) (map[string][]types.Member, error) {
	out := make(map[string][]types.Member, len(householdIDs))
	if len(householdIDs) == 0 {
		return out, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("household_id", "position", "full_name", "age", "category", "price_cents").
		From("membership_members").
		Where(sq.Eq{"household_id": householdIDs}).
		OrderBy("household_id", "position").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			householdID string
			m           types.Member
		)
		if err := rows.Scan(&householdID, &m.Position, &m.FullName, &m.Age, &m.Category, &m.PriceCents); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		out[householdID] = append(out[householdID], m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return out, nil
}

// RevokeHousehold ends the membership today. Rows are never deleted.
func (s *Storage) RevokeHousehold(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeHousehold")
	defer span.End()

	return s.updateWhere(ctx, "membership_households", map[string]interface{}{
		"status":   types.HouseholdRevoked,
		"end_date": sq.Expr("CURRENT_DATE"),
	}, sq.Eq{"id": id}, false)
}

func (s *Storage) ListHouseholds(ctx context.Context, f ListFilter) (*types.Page[types.Household], error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListHouseholds")
	defer span.End()

	page, err := listPage(ctx, s, householdSpec, f, scanHousehold)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(page.Items))
	for i, h := range page.Items {
		ids[i] = h.ID
	}

	members, err := s.listMembers(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range page.Items {
		page.Items[i].Members = members[page.Items[i].ID]
		if page.Items[i].Members == nil {
			page.Items[i].Members = []types.Member{}
		}
	}

	return page, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
