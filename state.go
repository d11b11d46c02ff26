package paginator

import "slices"

// State holds the pagination intent of one listing view: the active sort
// pair, the ordered filter list, the requested page, the page size and its
// allowed choices, plus the results of the last Paginate call.
//
// State is immutable by convention: every With* builder and every transition
// returns a modified copy, the receiver is never changed. Concurrent requests
// over the same logical listing must each work on their own snapshot; how the
// replacement is persisted (last-write-wins, compare-and-swap) is up to the
// session layer that owns it.
type State[T any] struct {
	orderBy      *OrderBy
	filters      Filters
	page         int
	pageMax      int
	perPage      int
	perPageItems []int
	columns      ColumnMapping
	expand       []string
	data         []T
}

// NewState returns an unordered, unfiltered state on page 1 with no page
// size chosen yet. The effective page size stays unresolved until Paginate,
// so that WithPerPageItems set afterwards can still supply the default.
func NewState[T any]() *State[T] {
	return &State[T]{
		page:    1,
		pageMax: 1,
		perPage: perPageUnset,
	}
}

// clone returns a copy whose slice fields are safe to replace independently.
func (s *State[T]) clone() *State[T] {
	if s == nil {
		return NewState[T]()
	}

	ret := *s
	if s.orderBy != nil {
		orderBy := *s.orderBy
		ret.orderBy = &orderBy
	}
	ret.filters = s.filters.Clone()
	ret.perPageItems = slices.Clone(s.perPageItems)
	ret.expand = slices.Clone(s.expand)

	return &ret
}

// WithOrder sets the sort pair explicitly.
func (s *State[T]) WithOrder(orderBy OrderBy) *State[T] {
	ret := s.clone()
	ret.orderBy = &orderBy

	return ret
}

// WithToggledOrder applies the 3-way sort toggle for field: clicking the
// active ascending column flips to descending, the active descending column
// flips back to ascending, any other column resets to ascending on it.
func (s *State[T]) WithToggledOrder(field string) *State[T] {
	ret := s.clone()
	orderBy := ToggleOrder(ret.orderBy, field)
	ret.orderBy = &orderBy

	return ret
}

// WithoutOrder drops the sort pair, leaving row order to the data source.
func (s *State[T]) WithoutOrder() *State[T] {
	ret := s.clone()
	ret.orderBy = nil

	return ret
}

// WithFilters replaces the whole filter list. Empty-string values are kept:
// they stay visible in the form but never constrain the query.
func (s *State[T]) WithFilters(filters Filters) *State[T] {
	ret := s.clone()
	ret.filters = filters.Clone()

	return ret
}

// WithFilter sets a single filter entry, preserving list order.
func (s *State[T]) WithFilter(field, value string) *State[T] {
	ret := s.clone()
	ret.filters = ret.filters.Set(field, value)

	return ret
}

// WithPage stores the requested page verbatim. No bounds check happens here:
// Paginate clamps into [1, pageMax] once the page count is known.
func (s *State[T]) WithPage(page int) *State[T] {
	ret := s.clone()
	ret.page = page

	return ret
}

// WithPerPage sets the page size and resets the page to 1. The reset is
// mandatory: a new page size invalidates the previous page offset.
func (s *State[T]) WithPerPage(perPage int) *State[T] {
	ret := s.clone()
	ret.perPage = perPage
	ret.page = 1

	return ret
}

// WithPerPageItems sets the allowed page-size choices. The first entry is
// the default page size when none was chosen; PerPageAll is a valid choice.
func (s *State[T]) WithPerPageItems(items ...int) *State[T] {
	ret := s.clone()
	ret.perPageItems = slices.Clone(items)

	return ret
}

// WithColumns sets the field-to-column binding used at the query boundary.
// With a non-nil mapping, filter and order fields outside of it fail with
// ErrUnknownField instead of reaching SQL.
func (s *State[T]) WithColumns(columns ColumnMapping) *State[T] {
	ret := s.clone()
	ret.columns = columns

	return ret
}

// WithExpand sets eager-loading hints passed through to gorm Preload during
// the fetch. The names are opaque to the pagination logic.
func (s *State[T]) WithExpand(relations ...string) *State[T] {
	ret := s.clone()
	ret.expand = slices.Clone(relations)

	return ret
}

// GetOrder returns a copy of the active sort pair, or nil when unordered.
func (s *State[T]) GetOrder() *OrderBy {
	if s == nil || s.orderBy == nil {
		return nil
	}

	orderBy := *s.orderBy

	return &orderBy
}

// GetFilters returns a copy of the filter list in rendering order.
func (s *State[T]) GetFilters() Filters {
	if s == nil {
		return nil
	}

	return s.filters.Clone()
}

// GetPage returns the current page as stored: the clamped value after a
// Paginate call, the verbatim request before one.
func (s *State[T]) GetPage() int {
	if s == nil {
		return 1
	}

	return s.page
}

// GetPageMax returns the page count computed by the last Paginate call.
// Always >= 1.
func (s *State[T]) GetPageMax() int {
	if s == nil {
		return 1
	}

	return s.pageMax
}

// GetPerPage returns the effective page size, applying the default rule when
// none was chosen: first of the page-size choices, else DefaultPerPage.
func (s *State[T]) GetPerPage() int {
	if s == nil {
		return DefaultPerPage
	}

	return ResolvePerPage(s.perPage, s.perPageItems)
}

// GetPerPageItems returns a copy of the allowed page-size choices.
func (s *State[T]) GetPerPageItems() []int {
	if s == nil {
		return nil
	}

	return slices.Clone(s.perPageItems)
}

// GetData returns the page of rows fetched by the last Paginate call.
func (s *State[T]) GetData() []T {
	if s == nil {
		return nil
	}

	return s.data
}

// HasPrevPage reports whether a previous page exists.
func (s *State[T]) HasPrevPage() bool {
	return s.GetPage() > 1
}

// HasNextPage reports whether a next page exists.
func (s *State[T]) HasNextPage() bool {
	return s.GetPage() < s.GetPageMax()
}

// PageWindow returns the page-number sequence for navigation controls with
// the default window radius.
func (s *State[T]) PageWindow() []PageMarker {
	return PageWindow(s.GetPage(), s.GetPageMax(), DefaultWindowDelta)
}
