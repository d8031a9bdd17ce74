// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/communityhub/portal/internal/types"
)

// WriteCSV streams header and rows as an attachment.
func WriteCSV(w http.ResponseWriter, name string, header []string, rows [][]string) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s.csv"`, name, time.Now().UTC().Format("20060102")))
	w.WriteHeader(http.StatusOK)

	return EncodeCSV(w, header, rows)
}

// EncodeCSV writes RFC 4180 records: fields holding a comma, a quote or a
// line break are quoted and quotes are doubled.
func EncodeCSV(out io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	return cw.Error()
}

func Cents(c int64) string {
	return strconv.FormatInt(c, 10)
}

func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var MessageHeader = []string{"id", "created_at", "name", "email", "subject", "body", "status", "notes"}

func MessageRows(items []types.ContactMessage) [][]string {
	rows := make([][]string, len(items))
	for i, m := range items {
		rows[i] = []string{m.ID, Timestamp(m.CreatedAt), m.Name, m.Email, m.Subject, m.Body, string(m.Status), m.Notes}
	}
	return rows
}

var SignupHeader = []string{"id", "created_at", "name", "email", "phone", "interests", "availability", "status", "notes"}

func SignupRows(items []types.VolunteerSignup) [][]string {
	rows := make([][]string, len(items))
	for i, v := range items {
		rows[i] = []string{v.ID, Timestamp(v.CreatedAt), v.Name, v.Email, v.Phone, v.Interests, v.Availability, string(v.Status), v.Notes}
	}
	return rows
}

var RequestHeader = []string{
	"id", "created_at", "requester_name", "email", "phone", "reason", "description",
	"amount_requested_cents", "status", "assigned_to", "admin_notes",
}

func RequestRows(items []types.SocialServiceRequest) [][]string {
	rows := make([][]string, len(items))
	for i, r := range items {
		rows[i] = []string{
			r.ID, Timestamp(r.CreatedAt), r.RequesterName, r.Email, r.Phone, r.Reason, r.Description,
			Cents(r.AmountRequestedCents), string(r.Status), optional(r.AssignedTo), r.AdminNotes,
		}
	}
	return rows
}
