package models

// PaginationParams holds page/limit query parameters.
// Offsets derive as (Page-1)*Limit.
type PaginationParams struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta describes one page of a paginated listing.
type PageMeta struct {
	TotalItems   int64 `json:"totalItems"`
	ItemCount    int   `json:"itemCount"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
}

// Page wraps a slice of items with pagination metadata.
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// NewPage builds the response envelope for one page of results.
// TotalPages is ceil(totalItems / limit).
func NewPage[T any](items []T, totalItems int64, params PaginationParams) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := int((totalItems + int64(params.Limit) - 1) / int64(params.Limit))
	return Page[T]{
		Items: items,
		Meta: PageMeta{
			TotalItems:   totalItems,
			ItemCount:    len(items),
			ItemsPerPage: params.Limit,
			TotalPages:   totalPages,
			CurrentPage:  params.Page,
		},
	}
}
