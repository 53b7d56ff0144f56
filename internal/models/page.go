package models

// PageRequest is a 1-based pagination request.
type PageRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Validate rejects out-of-contract pagination input. Silently clamping
// would report a wrong total row count, so invalid input is an error.
func (p PageRequest) Validate() error {
	if p.Page < 1 {
		return NewValidationError("Page must be at least 1")
	}
	if p.Size <= 0 {
		return NewValidationError("Page size must be positive")
	}
	return nil
}

// Offset returns the row offset for the requested page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}

// PostPage is a single page of post view records together with the
// total row count of the permission-filtered set and the echoed
// pagination request.
type PostPage struct {
	Items      []PostView  `json:"items"`
	TotalCount int64       `json:"total_count"`
	Request    PageRequest `json:"request"`
}

// Count returns the number of items on this page.
func (p *PostPage) Count() int {
	return len(p.Items)
}
