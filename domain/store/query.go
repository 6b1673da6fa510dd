// Package store provides the query machinery shared by all entity
// stores: options, conditions, ordering, and the generic store
// contract.
package store

// Option narrows or shapes a store query.
type Option func(Query) Query

// Query is the assembled form of a set of options.
type Query struct {
	conditions []Condition
	wheres     []Where
	orders     []Order
	limit      int
	offset     int
}

// Build assembles options into a Query.
func Build(options ...Option) Query {
	var q Query
	for _, opt := range options {
		q = opt(q)
	}
	return q
}

// Conditions returns the equality conditions.
func (q Query) Conditions() []Condition {
	result := make([]Condition, len(q.conditions))
	copy(result, q.conditions)
	return result
}

// Wheres returns the raw WHERE clauses.
func (q Query) Wheres() []Where {
	result := make([]Where, len(q.wheres))
	copy(result, q.wheres)
	return result
}

// Orders returns the query ordering specifications.
func (q Query) Orders() []Order {
	result := make([]Order, len(q.orders))
	copy(result, q.orders)
	return result
}

// LimitValue returns the limit (0 means no limit).
func (q Query) LimitValue() int {
	return q.limit
}

// OffsetValue returns the offset.
func (q Query) OffsetValue() int {
	return q.offset
}

// Condition matches a column against a value by equality. Anything
// beyond equality goes through Where.
type Condition struct {
	field string
	value any
}

// Field returns the condition field name.
func (c Condition) Field() string { return c.field }

// Value returns the condition value.
func (c Condition) Value() any { return c.value }

// Where is a raw parameterized WHERE clause for filters equality cannot
// express, such as LIKE matches or IN lists.
type Where struct {
	clause string
	args   []any
}

// Clause returns the SQL fragment with ? placeholders.
func (w Where) Clause() string { return w.clause }

// Args returns the placeholder arguments.
func (w Where) Args() []any {
	result := make([]any, len(w.args))
	copy(result, w.args)
	return result
}

// Order represents one ordering term.
type Order struct {
	field     string
	ascending bool
}

// Field returns the order field name.
func (o Order) Field() string { return o.field }

// Ascending returns true for ASC, false for DESC.
func (o Order) Ascending() bool { return o.ascending }

// WithCondition adds a field = value equality condition.
// Domain packages use this to define their own typed options.
func WithCondition(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, value: value})
		return q
	}
}

// WithWhere adds a raw parameterized WHERE clause.
func WithWhere(clause string, args ...any) Option {
	return func(q Query) Query {
		q.wheres = append(q.wheres, Where{clause: clause, args: args})
		return q
	}
}

// WithID filters by the "id" column.
func WithID(id int64) Option {
	return WithCondition("id", id)
}

// WithLimit sets the maximum number of results.
func WithLimit(n int) Option {
	return func(q Query) Query {
		q.limit = n
		return q
	}
}

// WithOffset sets the result offset.
func WithOffset(n int) Option {
	return func(q Query) Query {
		q.offset = n
		return q
	}
}

// WithOrderAsc adds ascending ordering on a field.
func WithOrderAsc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: true})
		return q
	}
}

// WithOrderDesc adds descending ordering on a field.
func WithOrderDesc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: false})
		return q
	}
}

// WithPagination returns limit and offset options for a page.
func WithPagination(limit, offset int) []Option {
	return []Option{WithLimit(limit), WithOffset(offset)}
}
