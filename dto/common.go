package dto

import (
	"strconv"

	"hotel-reservation-api/constants"
	"hotel-reservation-api/response"
)

// ListQuery holds the 1-based page and page size of a list request
type ListQuery struct {
	Page    int
	PerPage int
}

// Offset returns the number of rows to skip
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// ParseListQuery reads page / per_page; missing or invalid values fall back to defaults
func ParseListQuery(pageStr, perPageStr string) ListQuery {
	q := ListQuery{Page: constants.DefaultPage, PerPage: constants.DefaultPerPage}

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage > 0 {
			q.Page = parsedPage
		}
	}
	if perPageStr != "" {
		if parsedPerPage, err := strconv.Atoi(perPageStr); err == nil && parsedPerPage > 0 {
			q.PerPage = parsedPerPage
		}
	}
	if q.PerPage > constants.MaxPerPage {
		q.PerPage = constants.MaxPerPage
	}
	return q
}

// Page is one page of a filtered list together with the total row count
type Page[T any] struct {
	Items   []T
	Page    int
	PerPage int
	Total   int64
}

// Pagination converts the page metadata to its wire form
func (p Page[T]) Pagination() response.Pagination {
	return response.NewPagination(p.Page, p.PerPage, p.Total)
}

// MapPage converts the items of a page, keeping its metadata
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Page[R]{Items: items, Page: p.Page, PerPage: p.PerPage, Total: p.Total}
}
