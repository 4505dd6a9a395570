package sqlstore

import (
	"strings"

	"github.com/samber/lo"
)

// Query accumulates a SELECT statement and its bound parameters.
//
// Fragments are appended in call order and parameters follow the same order,
// so the final argument list is always [base..., predicates..., limit, offset].
// Placeholders are written as "?" and rebound by the Dialect at execution time.
type Query struct {
	base       string
	args       []any
	predicates []string
	orderBy    string
	paginated  bool
	limit      int
	offset     int
}

// NewQuery starts a statement from a fixed SELECT ... FROM ... JOIN ... text.
func NewQuery(base string, args ...any) *Query {
	return &Query{base: strings.TrimSpace(base), args: args}
}

// Where adds a predicate. Multiple predicates are joined with AND.
func (q *Query) Where(predicate string, args ...any) *Query {
	q.predicates = append(q.predicates, predicate)
	q.args = append(q.args, args...)
	return q
}

// OrderBy sets the ORDER BY expression.
func (q *Query) OrderBy(expr string) *Query {
	q.orderBy = expr
	return q
}

// Paginate appends LIMIT ? OFFSET ? bound to the given values.
func (q *Query) Paginate(limit, offset int) *Query {
	q.paginated = true
	q.limit = limit
	q.offset = offset
	return q
}

// Build returns the statement text and its ordered parameters.
func (q *Query) Build() (string, []any) {
	var b strings.Builder
	b.WriteString(q.base)

	if len(q.predicates) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.predicates, " AND "))
	}
	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.orderBy)
	}

	args := append([]any(nil), q.args...)
	if q.paginated {
		b.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, q.limit, q.offset)
	}
	return b.String(), args
}

func placeholders(n int) string {
	return strings.Join(lo.Times(n, func(int) string { return "?" }), ", ")
}

func insertSQL(table string, columns []string) string {
	return "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + placeholders(len(columns)) + ")"
}

func updateSQL(table string, columns []string) string {
	sets := lo.Map(columns, func(c string, _ int) string { return c + " = ?" })
	return "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"
}

func deleteSQL(table string) string {
	return "DELETE FROM " + table + " WHERE id = ?"
}

// columnArgs returns the values for columns in order. Missing columns bind as NULL.
func columnArgs(columns []string, values map[string]any) []any {
	return lo.Map(columns, func(c string, _ int) any { return values[c] })
}
