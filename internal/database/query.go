package database

import (
	"strings"

	"gorm.io/gorm"
)

// Clause is one WHERE fragment with its bind arguments.
type Clause struct {
	expr string
	args []any
}

// Expr returns the SQL fragment, with ? placeholders for the arguments.
func (c Clause) Expr() string { return c.expr }

// Args returns the bind arguments.
func (c Clause) Args() []any {
	args := make([]any, len(c.args))
	copy(args, c.args)
	return args
}

// Query accumulates WHERE clauses, ordering, and pagination for a GORM
// session. Methods return a modified copy, so calls chain:
//
//	database.NewQuery().Equal("op_co", "Ohio").OrderDesc("id").Apply(db)
type Query struct {
	clauses []Clause
	orders  []string
	limit   int
	offset  int
}

// NewQuery creates a new empty Query.
func NewQuery() Query {
	return Query{}
}

// Where appends a raw clause with bind arguments.
func (q Query) Where(expr string, args ...any) Query {
	q.clauses = append(q.clauses, Clause{expr: expr, args: args})
	return q
}

// Equal filters on field = value.
func (q Query) Equal(field string, value any) Query {
	return q.Where(field+" = ?", value)
}

// NotEqual filters on field != value.
func (q Query) NotEqual(field string, value any) Query {
	return q.Where(field+" != ?", value)
}

// Like filters on a SQL LIKE pattern.
func (q Query) Like(field string, pattern string) Query {
	return q.Where(field+" LIKE ?", pattern)
}

// In filters on membership. values must be a slice.
func (q Query) In(field string, values any) Query {
	return q.Where(field+" IN ?", values)
}

// Between filters on an inclusive range.
func (q Query) Between(field string, low, high any) Query {
	return q.Where(field+" BETWEEN ? AND ?", low, high)
}

// OrderAsc appends ascending ordering on a field.
func (q Query) OrderAsc(field string) Query {
	q.orders = append(q.orders, field+" ASC")
	return q
}

// OrderDesc appends descending ordering on a field.
func (q Query) OrderDesc(field string) Query {
	q.orders = append(q.orders, field+" DESC")
	return q
}

// Limit sets the result limit. Zero means no limit.
func (q Query) Limit(limit int) Query {
	q.limit = limit
	return q
}

// Offset sets the result offset.
func (q Query) Offset(offset int) Query {
	q.offset = offset
	return q
}

// Clauses returns the accumulated WHERE fragments.
func (q Query) Clauses() []Clause {
	result := make([]Clause, len(q.clauses))
	copy(result, q.clauses)
	return result
}

// Orders returns the accumulated ordering terms, e.g. "id DESC".
func (q Query) Orders() []string {
	result := make([]string, len(q.orders))
	copy(result, q.orders)
	return result
}

// LimitValue returns the limit value (0 means no limit).
func (q Query) LimitValue() int {
	return q.limit
}

// OffsetValue returns the offset value.
func (q Query) OffsetValue() int {
	return q.offset
}

// Apply attaches the query to a GORM session.
func (q Query) Apply(db *gorm.DB) *gorm.DB {
	for _, c := range q.clauses {
		db = db.Where(c.expr, c.args...)
	}

	if len(q.orders) > 0 {
		db = db.Order(strings.Join(q.orders, ", "))
	}

	if q.limit > 0 {
		db = db.Limit(q.limit)
	}

	if q.offset > 0 {
		db = db.Offset(q.offset)
	}

	return db
}
