package api

import (
	"net/url"
	"strconv"
)

// FilterAll is the sentinel status value meaning "no status filter".
// It is never serialized into a query string.
const FilterAll = "all"

// ListParams carries the filter and pagination state for list endpoints.
type ListParams struct {
	Status string
	Search string
	Page   int
	Limit  int
	// Extra holds resource-specific filters keyed by query parameter name.
	Extra map[string]string
}

// Pagination is the page metadata returned by list endpoints.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	Total       int `json:"total"`
	Limit       int `json:"limit"`
}

// Query serializes the params additively: only present, non-default fields
// appear. A status of FilterAll is treated as absent.
func (p ListParams) Query() url.Values {
	q := url.Values{}
	if p.Status != "" && p.Status != FilterAll {
		q.Set("status", p.Status)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	for k, v := range p.Extra {
		if v != "" && v != FilterAll {
			q.Set(k, v)
		}
	}
	return q
}
