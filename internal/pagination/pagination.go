// Package pagination provides a bounded page utility for already-ordered
// collections.
package pagination

import "strconv"

// DefaultPerPage is the standard page size for post listings.
const DefaultPerPage = 10

// Page is a bounded window into an ordered collection. The page number is
// always valid: requesting a missing, non-numeric, or out-of-range page never
// errors, it falls back (page 1 for junk input, the last page for overshoot).
type Page struct {
	Number     int
	PerPage    int
	TotalItems int
	TotalPages int
}

// Paginate resolves a raw page parameter against a collection of totalItems
// entries split into perPage-sized pages.
func Paginate(totalItems int, pageParam string, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages == 0 {
		// An empty collection still has one (empty) page.
		totalPages = 1
	}

	number, err := strconv.Atoi(pageParam)
	if err != nil || number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Offset returns the item offset of the first entry on this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// Limit returns the maximum number of entries on this page.
func (p Page) Limit() int {
	return p.PerPage
}

// HasPrevious reports whether a page exists before this one.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// HasNext reports whether a page exists after this one.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// PreviousNumber returns the previous page number, clamped at 1.
func (p Page) PreviousNumber() int {
	if p.Number > 1 {
		return p.Number - 1
	}
	return 1
}

// NextNumber returns the next page number, clamped at the last page.
func (p Page) NextNumber() int {
	if p.Number < p.TotalPages {
		return p.Number + 1
	}
	return p.TotalPages
}
