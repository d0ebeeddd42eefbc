package paginator

import "testing"

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{"valid passes through", PaginateQuery{Page: 3, Limit: 50}, 3, 50},
		{"zero page becomes first", PaginateQuery{Page: 0, Limit: 30}, 1, 30},
		{"negative page becomes first", PaginateQuery{Page: -5, Limit: 30}, 1, 30},
		{"zero limit becomes default", PaginateQuery{Page: 1, Limit: 0}, 1, DefaultLimit},
		{"oversized limit capped", PaginateQuery{Page: 1, Limit: 1000}, 1, MaxLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.in
			q.Adjust()
			if q.Page != tc.wantPage || q.Limit != tc.wantLimit {
				t.Errorf("Adjust(%+v) = page %d limit %d, want %d/%d",
					tc.in, q.Page, q.Limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int64
		total int
		want  int
	}{
		{"within range", 2, 30, 100, 2},
		{"last page exactly", 4, 30, 100, 4},
		{"past the end clamps to last", 9, 30, 100, 4},
		{"empty collection clamps to one", 7, 30, 0, 1},
		{"total equal to limit", 2, 50, 50, 1},
		{"one item past a boundary", 3, 50, 101, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := PaginateQuery{Page: tc.page, Limit: tc.limit}
			q.ClampPage(tc.total)
			if q.Page != tc.want {
				t.Errorf("ClampPage(page=%d, limit=%d, total=%d) = %d, want %d",
					tc.page, tc.limit, tc.total, q.Page, tc.want)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := seq(75)

	page, p := Paginate(items, PaginateQuery{Page: 2, Limit: 30})
	if len(page) != 30 || page[0] != 31 || page[29] != 60 {
		t.Fatalf("page 2: got %d items starting %d", len(page), page[0])
	}
	if p.Total != 75 || p.Count != 30 || p.CurrentPage != 2 {
		t.Errorf("paginator %+v", p)
	}

	page, p = Paginate(items, PaginateQuery{Page: 3, Limit: 30})
	if len(page) != 15 || page[0] != 61 {
		t.Fatalf("last partial page: got %d items starting %d", len(page), page[0])
	}
	if p.HasNextPage() {
		t.Error("last page should not have a next page")
	}
	if !p.HasPreviousPage() {
		t.Error("last page should have a previous page")
	}
}

func TestPaginateClampsOutOfRangePage(t *testing.T) {
	items := seq(40)

	// page 99 of a two-page collection lands on page 2, not an empty slice
	page, p := Paginate(items, PaginateQuery{Page: 99, Limit: 30})
	if p.CurrentPage != 2 {
		t.Errorf("current page %d, want 2", p.CurrentPage)
	}
	if len(page) != 10 || page[0] != 31 {
		t.Errorf("got %d items starting %v", len(page), page)
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	page, p := Paginate([]int{}, PaginateQuery{Page: 5, Limit: 30})
	if len(page) != 0 {
		t.Errorf("expected empty page, got %v", page)
	}
	if p.CurrentPage != 1 || p.Total != 0 || p.Count != 0 {
		t.Errorf("paginator %+v", p)
	}
	if p.TotalPages() != 0 || p.HasNextPage() || p.HasPreviousPage() {
		t.Errorf("empty collection derived values wrong: %+v", p.ToResponse())
	}
}

// Changing the page size re-clamps against the new page count, which is how
// a size change resets a deep page back into range.
func TestPaginateSizeChangeReclamps(t *testing.T) {
	items := seq(120)

	_, p := Paginate(items, PaginateQuery{Page: 4, Limit: 30})
	if p.CurrentPage != 4 {
		t.Fatalf("setup: current page %d", p.CurrentPage)
	}

	_, p = Paginate(items, PaginateQuery{Page: 4, Limit: 200})
	if p.CurrentPage != 1 {
		t.Errorf("after growing the page size, current page %d, want 1", p.CurrentPage)
	}
}

func TestPaginatorToResponse(t *testing.T) {
	_, p := Paginate(seq(101), PaginateQuery{Page: 2, Limit: 50})
	r := p.ToResponse()
	if r.TotalPages != 3 {
		t.Errorf("total pages %d, want 3", r.TotalPages)
	}
	if !r.HasNext || !r.HasPrev {
		t.Errorf("page 2 of 3 should have both neighbors: %+v", r)
	}
}
