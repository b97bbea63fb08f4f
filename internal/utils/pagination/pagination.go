// Package pagination normalizes page-based pagination parameters.
package pagination

const (
	// DefaultPerPage is used when the caller sends no page size.
	DefaultPerPage = 20
	// MaxPerPage caps the page size regardless of what the caller asks for.
	MaxPerPage = 20
)

// Clamp normalizes a (page, perPage) pair: pages start at 1 and the page
// size is bounded to [1, MaxPerPage]. Out-of-range values are clamped, not
// rejected.
func Clamp(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// Offset converts a normalized (page, perPage) pair into a SQL offset.
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}
