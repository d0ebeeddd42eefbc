package paginator

import "math"

// Adjust normalizes the pagination parameters to valid values.
// Invalid pages become the first page; limits outside the allowed set
// fall back to the default.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// ClampPage clamps the page into [1, ceil(total/limit)]. Out-of-range page
// requests land on the nearest valid page instead of returning nothing.
func (p *PaginateQuery) ClampPage(total int) {
	if p.Page < 1 {
		p.Page = 1
		return
	}
	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))
	if totalPages < 1 {
		totalPages = 1
	}
	if p.Page > totalPages {
		p.Page = totalPages
	}
}

// Paginate slices items to the query's page after clamping it. Slice bounds
// are clamped to the collection length; there is no wraparound. The returned
// paginator's Total counts the full (already filtered) collection.
func Paginate[T any](items []T, q PaginateQuery) ([]T, Paginator) {
	q.Adjust()
	q.ClampPage(len(items))

	start := (q.Page - 1) * int(q.Limit)
	if start > len(items) {
		start = len(items)
	}
	end := start + int(q.Limit)
	if end > len(items) {
		end = len(items)
	}

	page := items[start:end]
	return page, Paginator{
		Total:       int64(len(items)),
		Count:       int64(len(page)),
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}

// TotalPages calculates the total number of pages.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

// HasNextPage checks if there is a next page available.
func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

// HasPreviousPage checks if there is a previous page available.
func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

// ToResponse converts the paginator to a response format.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}
