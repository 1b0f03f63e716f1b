package common

import (
	"net/http"
	"strconv"
)

// Pagination holds pagination metadata for list responses.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
}

// PageRequest is a parsed page/limit pair.
type PageRequest struct {
	Page    int
	PerPage int
}

// Limit returns PerPage as the int32 the generated queries expect.
func (p PageRequest) Limit() int32 { return int32(p.PerPage) }

// Offset returns the row offset of the requested page.
func (p PageRequest) Offset() int32 {
	if p.Page < 1 {
		return 0
	}
	return int32((p.Page - 1) * p.PerPage)
}

// Meta builds the pagination block for a response with total rows.
func (p PageRequest) Meta(total int64) Pagination {
	return Pagination{Page: p.Page, PerPage: p.PerPage, TotalItems: int(total)}
}

// ParsePagination extracts page and limit query parameters, capping limit at maxPerPage when positive.
func ParsePagination(r *http.Request, defaultPerPage, maxPerPage int) PageRequest {
	req := PageRequest{Page: 1, PerPage: defaultPerPage}
	if req.PerPage < 1 {
		req.PerPage = 20
	}
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		req.Page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		req.PerPage = l
	}
	if maxPerPage > 0 && req.PerPage > maxPerPage {
		req.PerPage = maxPerPage
	}
	return req
}
