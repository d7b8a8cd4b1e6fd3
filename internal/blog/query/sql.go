package query

import (
	"strconv"
	"strings"
)

// Dialect selects placeholder syntax.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Placeholder returns the bind marker for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Where renders the filter as a WHERE clause (empty when there are no
// filters) and its arguments. Placeholders are numbered after the first
// `offset` arguments already bound by the caller.
func (q ListQuery) Where(d Dialect, offset int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return d.Placeholder(offset + len(args))
	}

	if q.Published != nil {
		conds = append(conds, "p.published = "+next(*q.Published))
	}
	if q.Author != "" {
		conds = append(conds, `p.author_lc LIKE `+next(likePattern(q.Author))+` ESCAPE '\'`)
	}
	if q.Search != "" {
		pattern := likePattern(q.Search)
		conds = append(conds,
			`(p.title_lc LIKE `+next(pattern)+` ESCAPE '\' OR p.content_lc LIKE `+next(pattern)+` ESCAPE '\')`)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// OrderBy renders the ORDER BY clause. The id tiebreak keeps pages stable
// when many rows share a sort value.
func (q ListQuery) OrderBy() string {
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	if q.SortBy == "p.id" {
		return "ORDER BY p.id " + dir
	}
	return "ORDER BY " + q.SortBy + " " + dir + ", p.id " + dir
}

// Fold is the case folding applied both to the *_lc shadow columns on write
// and to filter patterns. SQLite's LOWER only folds ASCII, so matching never
// relies on the database for it.
func Fold(s string) string { return strings.ToLower(s) }

// likePattern builds a folded contains pattern with LIKE wildcards in s
// escaped.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(Fold(s)) + "%"
}
