// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// ExportLimit caps the number of rows a CSV export may return.
const ExportLimit uint64 = 10000

const (
	SortCreatedAsc  = "created_at"
	SortCreatedDesc = "-created_at"
	SortAmountAsc   = "amount"
	SortAmountDesc  = "-amount"
)

// ListFilter is the filter set shared by every back office listing. List,
// export and summary queries built from the same ListFilter use the same
// WHERE clause.
type ListFilter struct {
	// Query is matched case-insensitively as a substring of the searchable columns.
	Query string
	// Equals maps filter names to required values, names unknown to the entity are ignored.
	Equals map[string]string
	// From and To bound the creation date, both inclusive.
	From *time.Time
	To   *time.Time

	Page     uint64
	PageSize uint64
	Sort     string
}

type listSpec struct {
	table      string
	columns    []string
	searchCols []string
	filterCols map[string]string
	createdCol string
	amountCol  string
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (f ListFilter) where(spec listSpec) sq.And {
	where := sq.And{}

	if q := strings.TrimSpace(f.Query); q != "" && len(spec.searchCols) > 0 {
		pattern := "%" + escapeLike(q) + "%"
		or := sq.Or{}
		for _, c := range spec.searchCols {
			or = append(or, sq.ILike{c: pattern})
		}
		where = append(where, or)
	}

	keys := make([]string, 0, len(f.Equals))
	for k := range f.Equals {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		col, ok := spec.filterCols[k]
		if !ok || f.Equals[k] == "" {
			continue
		}
		where = append(where, sq.Eq{col: f.Equals[k]})
	}

	if f.From != nil {
		where = append(where, sq.GtOrEq{spec.createdCol: startOfDay(*f.From)})
	}
	if f.To != nil {
		where = append(where, sq.Lt{spec.createdCol: startOfDay(*f.To).AddDate(0, 0, 1)})
	}

	return where
}

func (f ListFilter) orderBy(spec listSpec) string {
	col, dir := spec.createdCol, "DESC"

	switch f.Sort {
	case SortCreatedAsc:
		dir = "ASC"
	case SortAmountAsc, SortAmountDesc:
		if spec.amountCol != "" {
			col = spec.amountCol
			if f.Sort == SortAmountAsc {
				dir = "ASC"
			}
		}
	}

	if col == spec.createdCol {
		return col + " " + dir
	}

	// secondary key keeps pages stable when amounts tie
	return col + " " + dir + ", " + spec.createdCol + " DESC"
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func applyWhere(q sq.SelectBuilder, where sq.And) sq.SelectBuilder {
	if len(where) == 0 {
		return q
	}
	return q.Where(where)
}
