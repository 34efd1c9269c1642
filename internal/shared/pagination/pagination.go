package pagination

// Pagination is 1-based with a fixed page size. Out-of-range requests
// clamp to the nearest valid page instead of erroring, so a stale link
// to page 3 of a shrunken list serves the last page rather than a 404.

// Page describes a resolved page of a result set.
type Page struct {
	Number    int `json:"page"`
	Size      int `json:"page_size"`
	PageCount int `json:"page_count"`
	Total     int `json:"total"`
}

// Resolve clamps the requested page against the total item count.
// An empty result set still has exactly one (empty) page.
func Resolve(requested, size, total int) Page {
	if size < 1 {
		size = 1
	}

	pageCount := (total + size - 1) / size
	if pageCount < 1 {
		pageCount = 1
	}

	page := requested
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	return Page{
		Number:    page,
		Size:      size,
		PageCount: pageCount,
		Total:     total,
	}
}

// Offset is the row offset for a resolved page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
