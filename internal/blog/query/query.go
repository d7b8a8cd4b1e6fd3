// Package query turns untrusted list parameters into a bounded ListQuery and
// renders it as SQL for the supported dialects. Nothing from the caller is
// ever spliced into SQL text: filters become bind arguments and sort keys are
// looked up in an allow-list.
package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50

	// MaxPage keeps Offset from overflowing at any limit.
	MaxPage = math.MaxInt / MaxLimit
)

// Params are the raw query-string values of a post listing.
type Params struct {
	Page      string
	Limit     string
	Author    string
	Search    string
	Published string
	SortBy    string
	Order     string
}

// ListQuery is a validated, bounded post listing.
type ListQuery struct {
	Page      int
	Limit     int
	Author    string
	Search    string
	Published *bool
	SortBy    string // column, always from sortColumns
	Desc      bool
}

// sortColumns maps accepted sortBy values to columns of the posts table as
// aliased "p" in list queries.
var sortColumns = map[string]string{
	"id":         "p.id",
	"title":      "p.title",
	"author":     "p.author",
	"published":  "p.published",
	"views":      "p.view_count",
	"viewcount":  "p.view_count",
	"view_count": "p.view_count",
	"createdat":  "p.created_at",
	"created_at": "p.created_at",
	"updatedat":  "p.updated_at",
	"updated_at": "p.updated_at",
}

const defaultSortColumn = "p.created_at"

// Parse validates p. Page and limit must be integers of at least 1; page may
// not exceed MaxPage and limit is capped at MaxLimit.
func Parse(p Params) (ListQuery, error) {
	var fields []string

	q := ListQuery{
		Page:   DefaultPage,
		Limit:  DefaultLimit,
		Author: strings.TrimSpace(p.Author),
		Search: strings.TrimSpace(p.Search),
		SortBy: defaultSortColumn,
		Desc:   true,
	}

	switch page, ok := parsePositive(p.Page, DefaultPage); {
	case !ok:
		fields = append(fields, "Page must be a positive integer")
	case page > MaxPage:
		fields = append(fields, "Page must be at most "+strconv.Itoa(MaxPage))
	default:
		q.Page = page
	}

	if limit, ok := parsePositive(p.Limit, DefaultLimit); ok {
		q.Limit = min(limit, MaxLimit)
	} else {
		fields = append(fields, "Limit must be a positive integer")
	}

	if s := strings.TrimSpace(p.Published); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			fields = append(fields, "Published must be true or false")
		} else {
			q.Published = &b
		}
	}

	if s := strings.TrimSpace(p.SortBy); s != "" {
		col, ok := sortColumns[strings.ToLower(s)]
		if !ok {
			fields = append(fields, "sortBy must be one of: id, title, author, published, views, createdAt, updatedAt")
		} else {
			q.SortBy = col
		}
	}

	switch strings.ToLower(strings.TrimSpace(p.Order)) {
	case "", "desc":
		q.Desc = true
	case "asc":
		q.Desc = false
	default:
		fields = append(fields, "order must be asc or desc")
	}

	if len(fields) > 0 {
		return ListQuery{}, domain.Validation("Invalid query parameters", fields...)
	}
	return q, nil
}

func parsePositive(raw string, def int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// WithPublished returns a copy of q with the visibility filter replaced.
func (q ListQuery) WithPublished(published *bool) ListQuery {
	q.Published = published
	return q
}

// Offset is the number of rows skipped before the current page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
