package query

const (
	// MaxLimit caps the number of items returned in a single page.
	MaxLimit = 100
	// DefaultLimit is used when no limit was requested.
	DefaultLimit = MaxLimit
)

// Params describes one page request.
type Params struct {
	Condition Condition
	// Cursor is the backend continuation token of the previous page, empty for the first page.
	Cursor string
	Limit  int
}

// PageSize returns the limit clamped to [1, MaxLimit].
func (p Params) PageSize() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}
