// Package query defines shared filtering and pagination primitives for
// repository list operations.
package query

// PageFilter carries pagination parameters.
type PageFilter struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps pagination to sane bounds.
func (f *PageFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

// Offset returns the row offset for the current page.
func (f PageFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// SortFilter carries sorting parameters. SortBy must be validated
// against a per-repository whitelist before reaching SQL.
type SortFilter struct {
	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
}

// BaseFilter combines pagination and sorting.
type BaseFilter struct {
	PageFilter
	SortFilter
}
