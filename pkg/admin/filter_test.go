// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"errors"
	"math"
	"net/url"
	"testing"
	"time"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/storage"
)

func TestParseFilter(t *testing.T) {
	q, _ := url.ParseQuery("q=+zakat+&method=zelle&status=pending&unknown=x&from=2026-01-01&to=2026-01-31&page=2&pageSize=25&sort=-amount")

	f, err := ParseFilter(q, "method", "status", "fund")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Query != "zakat" {
		t.Errorf("expected trimmed query, got %q", f.Query)
	}
	if len(f.Equals) != 2 || f.Equals["method"] != "zelle" || f.Equals["status"] != "pending" {
		t.Errorf("unexpected equals %v", f.Equals)
	}
	if !f.From.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) || !f.To.Equal(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected range %v %v", f.From, f.To)
	}
	if f.Page != 2 || f.PageSize != 25 || f.Sort != storage.SortAmountDesc {
		t.Errorf("unexpected paging %+v", f)
	}
}

func TestParseFilterDefaults(t *testing.T) {
	f, err := ParseFilter(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Sort != storage.SortCreatedDesc || f.Page != 0 || f.PageSize != 0 || f.From != nil {
		t.Fatalf("unexpected defaults %+v", f)
	}
}

func TestParseFilterAcceptsLastPage(t *testing.T) {
	q, _ := url.ParseQuery("page=9223372036854775&pageSize=1000")

	f, err := ParseFilter(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offset := (f.Page - 1) * f.PageSize; offset > math.MaxInt64 {
		t.Fatalf("offset %d does not fit a BIGINT", offset)
	}
}

func TestParseFilterRejects(t *testing.T) {
	tests := []struct {
		query string
		field string
	}{
		{query: "page=0", field: "page"},
		{query: "page=abc", field: "page"},
		{query: "page=9223372036854776", field: "page"},
		{query: "page=18446744073709551615", field: "page"},
		{query: "pageSize=1001", field: "pageSize"},
		{query: "pageSize=0", field: "pageSize"},
		{query: "sort=name", field: "sort"},
		{query: "from=01/02/2026", field: "from"},
		{query: "from=2026-02-01&to=2026-01-01", field: "to"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)

			_, err := ParseFilter(q)

			var verr *httptypes.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Fatalf("expected field %s in %v", tt.field, verr.Fields)
			}
		})
	}
}
