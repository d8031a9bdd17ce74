// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/communityhub/portal/internal/types"
)

var donationSpec = listSpec{
	table: "donations d LEFT JOIN donation_proofs p ON p.donation_id = d.id",
	columns: []string{
		"d.id", "d.identity_id", "d.donor_name", "d.donor_email", "d.method", "d.status",
		"d.amount_cents", "d.fund", "d.recurrence", "d.external_ref", "d.created_at", "d.updated_at",
		"p.donation_id", "p.transfer_date", "p.proof_url", "p.proof_object_key",
		"p.transaction_id", "p.reference", "p.created_at",
	},
	searchCols: []string{"d.donor_name", "d.donor_email", "d.fund"},
	filterCols: map[string]string{
		"method": "d.method",
		"status": "d.status",
		"fund":   "d.fund",
	},
	createdCol: "d.created_at",
	amountCol:  "d.amount_cents",
}

func scanDonation(row sq.RowScanner) (types.Donation, error) {
	var (
		d                            types.Donation
		proofID, url, key, txID, ref sql.NullString
		transferDate, proofCreated   sql.NullTime
	)

	err := row.Scan(
		&d.ID, &d.IdentityID, &d.DonorName, &d.DonorEmail, &d.Method, &d.Status,
		&d.AmountCents, &d.Fund, &d.Recurrence, &d.ExternalRef, &d.CreatedAt, &d.UpdatedAt,
		&proofID, &transferDate, &url, &key, &txID, &ref, &proofCreated,
	)
	if err != nil {
		return d, err
	}

	if proofID.Valid {
		d.Proof = &types.DonationProof{
			DonationID:     proofID.String,
			TransferDate:   timePtr(transferDate),
			ProofURL:       url.String,
			ProofObjectKey: key.String,
			TransactionID:  txID.String,
			Reference:      ref.String,
			CreatedAt:      proofCreated.Time,
		}
	}

	return d, nil
}

func (s *Storage) CreateDonation(ctx context.Context, d *types.Donation) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDonation")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	out := *d
	out.ID = id

	err = s.db.Statement(ctx).
		Insert("donations").
		Columns("id", "identity_id", "donor_name", "donor_email", "method", "status", "amount_cents", "fund", "recurrence", "external_ref").
		Values(id, d.IdentityID, d.DonorName, d.DonorEmail, d.Method, d.Status, d.AmountCents, d.Fund, d.Recurrence, d.ExternalRef).
		Suffix("RETURNING created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err, "create donation")
	}

	return &out, nil
}

func (s *Storage) CreateDonationProof(ctx context.Context, p *types.DonationProof) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDonationProof")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("donation_proofs").
		Columns("donation_id", "transfer_date", "proof_url", "proof_object_key", "transaction_id", "reference").
		Values(p.DonationID, p.TransferDate, p.ProofURL, p.ProofObjectKey, p.TransactionID, p.Reference).
		ExecContext(ctx)
	if err != nil {
		return mapWriteError(err, "create donation proof")
	}

	return nil
}

// UpsertDonationByExternalRef records a provider-backed donation. A row that
// already left pending keeps its status, so replayed events never undo a
// reviewer decision.
func (s *Storage) UpsertDonationByExternalRef(ctx context.Context, d *types.Donation) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertDonationByExternalRef")
	defer span.End()

	if d.ExternalRef == nil || *d.ExternalRef == "" {
		return nil, fmt.Errorf("upsert donation: external reference is required")
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	_, err = s.db.Statement(ctx).
		Insert("donations").
		Columns("id", "identity_id", "donor_name", "donor_email", "method", "status", "amount_cents", "fund", "recurrence", "external_ref").
		Values(id, d.IdentityID, d.DonorName, d.DonorEmail, d.Method, d.Status, d.AmountCents, d.Fund, d.Recurrence, d.ExternalRef).
		Suffix(`ON CONFLICT (external_ref) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = now()
		WHERE donations.status = 'pending'`).
		ExecContext(ctx)
	if err != nil {
		return nil, mapWriteError(err, "upsert donation")
	}

	return s.GetDonationByExternalRef(ctx, *d.ExternalRef)
}

// SetDonationStatusByExternalRef moves a pending provider donation to status.
// ErrConflict means the donation is not pending anymore.
func (s *Storage) SetDonationStatusByExternalRef(ctx context.Context, ref string, status types.DonationStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetDonationStatusByExternalRef")
	defer span.End()

	return s.updateWhere(ctx, "donations", map[string]interface{}{"status": status},
		sq.Eq{"external_ref": ref, "status": types.DonationPending}, true)
}

func (s *Storage) GetDonation(ctx context.Context, id string) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDonation")
	defer span.End()

	d, err := getOne(ctx, s, donationSpec, sq.Eq{"d.id": id}, scanDonation)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Storage) GetDonationByExternalRef(ctx context.Context, ref string) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDonationByExternalRef")
	defer span.End()

	d, err := getOne(ctx, s, donationSpec, sq.Eq{"d.external_ref": ref}, scanDonation)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// TransitionDonationStatus applies from -> to as a compare-and-set. ErrConflict
// means another reviewer changed the status first.
func (s *Storage) TransitionDonationStatus(ctx context.Context, id string, from, to types.DonationStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionDonationStatus")
	defer span.End()

	return s.updateWhere(ctx, "donations", map[string]interface{}{"status": to},
		sq.Eq{"id": id, "status": from}, true)
}

func (s *Storage) ListDonations(ctx context.Context, f ListFilter) (*types.Page[types.Donation], error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDonations")
	defer span.End()

	return listPage(ctx, s, donationSpec, f, scanDonation)
}

func (s *Storage) ExportDonations(ctx context.Context, f ListFilter) ([]types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExportDonations")
	defer span.End()

	return exportRows(ctx, s, donationSpec, f, scanDonation)
}

func (s *Storage) SummarizeDonations(ctx context.Context, f ListFilter) (*types.DonationSummary, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SummarizeDonations")
	defer span.End()

	where := f.where(donationSpec)

	byMethod, err := s.sumDonations(ctx, "d.method", where)
	if err != nil {
		return nil, err
	}

	byFund, err := s.sumDonations(ctx, "d.fund", where)
	if err != nil {
		return nil, err
	}

	return &types.DonationSummary{ByMethod: byMethod, ByFund: byFund}, nil
}

func (s *Storage) sumDonations(ctx context.Context, col string, where sq.And) ([]types.AmountTotal, error) {
	rows, err := applyWhere(
		s.db.Statement(ctx).Select(col, "COALESCE(SUM(d.amount_cents), 0)").From(donationSpec.table),
		where,
	).
		GroupBy(col).
		OrderBy(col).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum donations by %s: %w", col, err)
	}
	defer rows.Close()

	totals := make([]types.AmountTotal, 0)
	for rows.Next() {
		var t types.AmountTotal
		if err := rows.Scan(&t.Key, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan donation total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return totals, nil
}
