package paginator

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// ErrInvalidParameter is wrapped by ApplyParams when a string-encoded integer
// parameter cannot be parsed.
var ErrInvalidParameter = errors.New("invalid parameter")

// RawParams is intended for UI payloads: every value arrives as it left the
// form. For proper code generation, inline it:
//
//	type MyListingRequest struct {
//	    Paging RawParams `json:",inline"`
//	}
//
// Absent fields are no-ops: the corresponding part of the state stays
// untouched.
type RawParams struct {
	// OrderBy - field name whose header was clicked. Toggles the sort pair.
	OrderBy string `json:"order_by,omitempty"`
	// Page - string-encoded requested page number, 1-based.
	Page string `json:"page,omitempty"`
	// PerPageNb - string-encoded page size. "0" means all records on a
	// single page. Changing the page size resets the page to 1.
	PerPageNb string `json:"per_page_nb,omitempty"`
	// Filters - replacement filter mapping, field name to filter text.
	// A nil map leaves the current filters untouched.
	Filters map[string]string `json:"filters,omitempty"`
}

// ApplyParams derives a new state from raw UI parameters. The four
// transitions are applied in a fixed order: sort toggle, page size (with its
// page-1 reset), page, filters. Page size runs before page so that an
// explicit page in the same payload survives the reset.
//
// A malformed integer aborts the whole update with an ErrInvalidParameter
// wrap; see ApplyParamsPartial for the lenient policy.
func ApplyParams[T any](s *State[T], p RawParams) (*State[T], error) {
	ret := s.clone()

	if p.OrderBy != "" {
		ret = ret.WithToggledOrder(p.OrderBy)
	}

	if p.PerPageNb != "" {
		perPage, err := parseIntParam("per_page_nb", p.PerPageNb)
		if err != nil {
			return nil, err
		}

		ret = ret.WithPerPage(perPage)
	}

	if p.Page != "" {
		page, err := parseIntParam("page", p.Page)
		if err != nil {
			return nil, err
		}

		ret = ret.WithPage(page)
	}

	if p.Filters != nil {
		ret = ret.WithFilters(replacementFilters(s.GetFilters(), p.Filters))
	}

	return ret, nil
}

// ApplyParamsPartial is ApplyParams with the lenient policy: a malformed
// integer field is skipped and the prior value kept, so garbled client input
// never loses the rest of the update.
func ApplyParamsPartial[T any](s *State[T], p RawParams) *State[T] {
	if _, err := strconv.Atoi(p.PerPageNb); err != nil {
		p.PerPageNb = ""
	}
	if _, err := strconv.Atoi(p.Page); err != nil {
		p.Page = ""
	}

	ret, err := ApplyParams(s, p)
	if err != nil {
		// Unreachable: every fallible field was pre-validated above.
		panic(fmt.Errorf("cannot apply pre-validated params: %w", err))
	}

	return ret
}

// replacementFilters orders an incoming filter map for storage. Fields
// already present keep their previous position, new fields are appended in
// sorted order, so rendering stays stable across repeated submissions.
func replacementFilters(prev Filters, next map[string]string) Filters {
	ret := make(Filters, 0, len(next))
	for _, item := range prev {
		if value, ok := next[item.Field]; ok {
			ret = append(ret, Filter{Field: item.Field, Value: value})
		}
	}

	newFields := lo.Reject(lo.Keys(next), func(field string, _ int) bool {
		_, ok := prev.Get(field)
		return ok
	})
	slices.Sort(newFields)
	for _, field := range newFields {
		ret = append(ret, Filter{Field: field, Value: next[field]})
	}

	return ret
}

func parseIntParam(name, raw string) (int, error) {
	ret, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' is not a valid integer for '%s'", ErrInvalidParameter, raw, name)
	}

	return ret, nil
}
