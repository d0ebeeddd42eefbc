package paginator

const (
	// DefaultPage is the default page number when an invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is the default number of items per page when an invalid limit is provided.
	DefaultLimit = 30
	// MaxLimit is the maximum number of items per page.
	MaxLimit = 200
)

// AllowedLimits are the page sizes the UI exposes. The paginator itself
// accepts any positive limit; delivery layers snap to this set.
var AllowedLimits = []int64{30, 50, 100, 150, 200}
