package paginator

// Package paginator provides page-number pagination state for GORM-backed
// listing views.
//
// Overview
//
// A listing view holds a State: the active sort pair, an ordered list of
// text filters, the requested page, the page size and its allowed choices,
// and the last fetched page of rows. On each user interaction the caller
// derives a new State (ApplyParams or the With* builders), then calls
// Paginate to refresh the row data and the page count.
//
// Key concepts
//   - State: immutable-by-convention pagination intent plus last results.
//     Every transition returns a replacement, the receiver is never mutated.
//   - Paginate: applies filters, ordering and limit/offset to a GORM query,
//     counts matching rows and clamps the requested page into range.
//   - PageWindow: computes the compact page-number sequence (with gap
//     markers) shown in navigation controls.
//
// See the examples directory for usage details.
