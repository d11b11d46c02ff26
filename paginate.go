package paginator

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrUnknownField is wrapped when a filter or order field has no entry in the
// state's ColumnMapping. It surfaces before any SQL is built.
var ErrUnknownField = errors.New("unknown field")

// Paginate applies the state's intent to db and returns the refreshed state:
// pageMax recomputed from the filtered record count, page clamped into
// [1, pageMax], data holding the fetched rows. All other fields carry over
// unchanged.
//
// db must already be scoped to the dataset (model or table, plus any fixed
// conditions). The algorithm:
//
//  1. Resolve the page size default if none was chosen.
//  2. Turn non-empty filters into a conjunction of case-insensitive
//     substring predicates.
//  3. Count matching records; derive pageMax (never below 1, always 1 for
//     PerPageAll).
//  4. Clamp the requested page, apply ordering and limit/offset, preload any
//     expand hints, fetch the rows.
//
// Database errors propagate wrapped and unretried; that policy belongs to
// the caller.
func (s *State[T]) Paginate(db *gorm.DB) (*State[T], error) {
	ret := s.clone()
	ret.perPage = ResolvePerPage(ret.perPage, ret.perPageItems)

	conjunction, err := ret.filterConjunction()
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}
	if expr := conjunction.toGORMExpression(); expr != nil {
		db = db.Clauses(expr)
	}

	var total int64
	err = db.Session(&gorm.Session{}).Count(&total).Error
	if err != nil {
		return nil, fmt.Errorf("cannot count records: %w", err)
	}

	ret.pageMax = PageMax(total, ret.perPage)
	ret.page = ClampPage(ret.page, ret.pageMax)

	if ret.orderBy != nil {
		column, err := resolveColumn(ret.orderBy.Column, ret.columns)
		if err != nil {
			return nil, fmt.Errorf("cannot paginate: %w", err)
		}

		orderBy := OrderBy{Column: column, Direction: ret.orderBy.Direction}
		if err = orderBy.validate(); err != nil {
			return nil, fmt.Errorf("cannot paginate: %w", err)
		}

		db = orderBy.Apply(db)
	}

	if ret.perPage != PerPageAll {
		db = db.Limit(ret.perPage).Offset((ret.page - 1) * ret.perPage)
	}

	for _, relation := range ret.expand {
		db = db.Preload(relation)
	}

	rows := make([]T, 0, ret.perPage)
	err = db.Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}
	ret.data = rows

	return ret, nil
}

// filterConjunction resolves the non-empty filter entries into substring
// predicates against real column names.
func (s *State[T]) filterConjunction() (tConjunction, error) {
	applied := s.filters.applied()

	ret := make(tConjunction, 0, len(applied))
	for _, item := range applied {
		column, err := resolveColumn(item.Field, s.columns)
		if err != nil {
			return nil, err
		}
		if err = validateColumnName(column); err != nil {
			return nil, err
		}

		ret = append(ret, tContains{
			Column: column,
			Value:  item.Value,
		})
	}

	return ret, nil
}
