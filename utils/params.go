package utils

import (
	"net/http"
	"strconv"
)

// ParsePage reads the 1-based "page" query param, defaulting to 1.
func ParsePage(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate slices a 1-based page of size perPage out of total items,
// returning the [start, end) bounds and whether more pages follow.
func Paginate(total, page, perPage int) (start, end int, hasMore bool) {
	start = (page - 1) * perPage
	if start > total {
		start = total
	}
	end = start + perPage
	if end > total {
		end = total
	}
	return start, end, end < total
}
