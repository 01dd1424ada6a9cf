package listmanager

import "github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"

// Paginate returns the page-th slice of view with pageSize records per page.
// Pages are 1-based. A page past the end yields an empty slice, however
// large. The result is a copy.
func Paginate(view []types.Record, page, pageSize int) []types.Record {
	if pageSize <= 0 || page <= 0 || page > PageCount(len(view), pageSize) {
		return []types.Record{}
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(view)-start)
	out := make([]types.Record, end-start)
	copy(out, view[start:end])
	return out
}

// PageCount returns the number of pages needed for n records.
func PageCount(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 0
	}
	return 1 + (n-1)/pageSize
}
