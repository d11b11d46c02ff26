package paginator

// DefaultWindowDelta is the window radius around the current page used by
// State.PageWindow.
const DefaultWindowDelta = 1

// PageMarker is one element of the rendered page-number sequence.
type PageMarker struct {
	// Number is the literal page number. Zero for gap markers.
	Number int
	// IsGap marks a collapsed run of hidden pages, rendered as an ellipsis.
	IsGap bool
	// IsCurrent flags the active page for styling.
	IsCurrent bool
}

// PageWindow computes the sequence of page markers to render: the first and
// last pages, every page within delta of currentPage, and a single gap marker
// per hidden run in between.
//
// A single-page listing yields an empty sequence, no navigation is needed.
// currentPage is expected to lie within [1, totalPages]; Paginate guarantees
// that for any state it returns.
//
// Example: currentPage=4, totalPages=9, delta=1 renders as
//
//	[1] … [3] [4] [5] … [9]
func PageWindow(currentPage, totalPages, delta int) []PageMarker {
	if totalPages <= 1 {
		return nil
	}

	ret := make([]PageMarker, 0, totalPages)
	for page := 1; page <= totalPages; page++ {
		inWindow := page >= currentPage-delta && page <= currentPage+delta
		if page != 1 && page != totalPages && !inWindow {
			// Collapse consecutive gaps into a single marker.
			if len(ret) > 0 && ret[len(ret)-1].IsGap {
				continue
			}

			ret = append(ret, PageMarker{IsGap: true})
			continue
		}

		ret = append(ret, PageMarker{
			Number:    page,
			IsCurrent: page == currentPage,
		})
	}

	return ret
}
