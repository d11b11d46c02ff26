package paginator

const (
	// PerPageAll disables limiting: every matching record on a single page.
	PerPageAll = 0
	// DefaultPerPage is used when no page size was chosen and the listing
	// declares no page-size choices.
	DefaultPerPage = 10

	// perPageUnset marks a State whose page size was never chosen.
	perPageUnset = -1
)

// IsResolvedPerPage resolves a possibly-unset page size against the listing's
// page-size choices. Returns the effective page size and whether the input
// was already an explicit value.
func IsResolvedPerPage(perPage int, choices []int) (int, bool) {
	if perPage >= 0 {
		return perPage, true
	} else if len(choices) > 0 {
		return choices[0], false
	}

	return DefaultPerPage, false
}

// ResolvePerPage returns the effective page size: the value itself when set,
// otherwise the first of choices, otherwise DefaultPerPage.
func ResolvePerPage(perPage int, choices []int) int {
	ret, _ := IsResolvedPerPage(perPage, choices)
	return ret
}

// PageMax returns the number of available pages for total records at the
// given page size. Never less than 1; PerPageAll always yields a single page.
func PageMax(total int64, perPage int) int {
	if perPage == PerPageAll || total <= 0 {
		return 1
	}

	return 1 + int((total-1)/int64(perPage))
}

// ClampPage caps page into [1, pageMax]. Out-of-range requests are never an
// error: too large lands on the last page, zero or negative on the first.
func ClampPage(page, pageMax int) int {
	if page > pageMax {
		page = pageMax
	}
	if page < 1 {
		page = 1
	}

	return page
}
