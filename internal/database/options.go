package database

import (
	"gorm.io/gorm"

	"github.com/meterlab/meterlab/domain/store"
)

// ApplyOptions builds a store.Query from the options and attaches its
// filters, ordering, and pagination to a GORM session.
func ApplyOptions(db *gorm.DB, options ...store.Option) *gorm.DB {
	q := store.Build(options...)

	db = applyWhere(db, q)

	for _, ord := range q.Orders() {
		if ord.Ascending() {
			db = db.Order(ord.Field() + " ASC")
		} else {
			db = db.Order(ord.Field() + " DESC")
		}
	}

	if q.LimitValue() > 0 {
		db = db.Limit(q.LimitValue())
	}

	if q.OffsetValue() > 0 {
		db = db.Offset(q.OffsetValue())
	}

	return db
}

// ApplyConditions attaches only the WHERE filters, for COUNT and DELETE
// statements where ordering and pagination have no place.
func ApplyConditions(db *gorm.DB, options ...store.Option) *gorm.DB {
	return applyWhere(db, store.Build(options...))
}

func applyWhere(db *gorm.DB, q store.Query) *gorm.DB {
	for _, cond := range q.Conditions() {
		db = db.Where(cond.Field()+" = ?", cond.Value())
	}

	for _, where := range q.Wheres() {
		db = db.Where(where.Clause(), where.Args()...)
	}

	return db
}
