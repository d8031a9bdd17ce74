// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/storage"
)

const (
	dateLayout  = "2006-01-02"
	maxPageSize = 1000
	maxQueryLen = 200
	// maxPage keeps the row offset of the largest page within a BIGINT.
	maxPage = math.MaxInt64 / maxPageSize
)

// ParseFilter reads the shared listing query parameters. Only the equality
// filters named in equals are honoured.
func ParseFilter(q url.Values, equals ...string) (storage.ListFilter, error) {
	f := storage.ListFilter{
		Query:  strings.TrimSpace(q.Get("q")),
		Equals: make(map[string]string),
		Sort:   storage.SortCreatedDesc,
	}
	verr := new(httptypes.ValidationError)

	if len(f.Query) > maxQueryLen {
		verr.Add("q", "must be at most "+strconv.Itoa(maxQueryLen)+" characters")
	}

	for _, name := range equals {
		if v := strings.TrimSpace(q.Get(name)); v != "" {
			f.Equals[name] = v
		}
	}

	if v := q.Get("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			verr.Add("from", "must be a date formatted as YYYY-MM-DD")
		} else {
			f.From = &t
		}
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			verr.Add("to", "must be a date formatted as YYYY-MM-DD")
		} else {
			f.To = &t
		}
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		verr.Add("to", "must not be before from")
	}

	if v := q.Get("page"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n < 1 || n > maxPage {
			verr.Add("page", "must be between 1 and "+strconv.FormatUint(maxPage, 10))
		}
		f.Page = n
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n < 1 || n > maxPageSize {
			verr.Add("pageSize", "must be between 1 and "+strconv.Itoa(maxPageSize))
		}
		f.PageSize = n
	}

	if v := q.Get("sort"); v != "" {
		switch v {
		case storage.SortCreatedAsc, storage.SortCreatedDesc, storage.SortAmountAsc, storage.SortAmountDesc:
			f.Sort = v
		default:
			verr.Add("sort", "must be one of: created_at -created_at amount -amount")
		}
	}

	if err := verr.Err(); err != nil {
		return storage.ListFilter{}, err
	}

	return f, nil
}

// WantsCSV reports whether the listing was requested as a CSV download.
func WantsCSV(q url.Values) bool {
	return strings.EqualFold(q.Get("format"), "csv")
}
