// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package donations

import (
	"github.com/communityhub/portal/internal/types"
	"github.com/communityhub/portal/pkg/admin"
)

var csvHeader = []string{
	"id", "created_at", "donor_name", "donor_email", "method", "status", "amount_cents",
	"fund", "recurrence", "external_ref", "transaction_id", "reference", "transfer_date", "proof",
}

func csvRows(items []types.Donation) [][]string {
	rows := make([][]string, len(items))
	for i, d := range items {
		var ref string
		if d.ExternalRef != nil {
			ref = *d.ExternalRef
		}

		var txnID, reference, transferDate, proof string
		if p := d.Proof; p != nil {
			txnID, reference = p.TransactionID, p.Reference
			if p.TransferDate != nil {
				transferDate = p.TransferDate.Format(dateLayout)
			}
			proof = p.ProofURL
			if proof == "" {
				proof = p.ProofObjectKey
			}
		}

		rows[i] = []string{
			d.ID, admin.Timestamp(d.CreatedAt), d.DonorName, d.DonorEmail, string(d.Method), string(d.Status),
			admin.Cents(d.AmountCents), d.Fund, string(d.Recurrence), ref, txnID, reference, transferDate, proof,
		}
	}
	return rows
}
