// Package dto contains the request and response shapes of the CMS API.
package dto

// DefaultPageSize is the page size used when the client sends none.
const DefaultPageSize = 10

// MaxPageSize caps the page size a client may request.
const MaxPageSize = 100

// ListOpts are the common list query inputs shared by every collection.
type ListOpts struct {
	// Page is 1-based.
	Page  int
	Limit int
	// Search is a free-text filter matched case-insensitively across
	// the entity's text fields.
	Search string
	// Admin requests the unrestricted listing; when false only
	// publicly visible documents are returned.
	Admin bool
}

// Skip returns the number of documents to skip for the page.
func (o ListOpts) Skip() int64 {
	return int64((o.Page - 1) * o.Limit)
}

// Pagination describes the page window of a list response.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination computes the page window from the total count matched
// by the same filter that produced the page slice.
func NewPagination(page, limit int, totalCount int64) Pagination {
	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
