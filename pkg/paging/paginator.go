package paging

import "github.com/matst80/slask-inventory/pkg/types"

const DefaultPageSize = 25

type Paginator struct {
	PageSize int
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{PageSize: pageSize}
}

func (p *Paginator) size() int {
	if p == nil || p.PageSize <= 0 {
		return DefaultPageSize
	}
	return p.PageSize
}

// Bounds returns the half open index range of the page, clipped to count.
// A page past the end yields an empty range.
func (p *Paginator) Bounds(count, page int) (start, end int) {
	if page < types.FirstPage {
		page = types.FirstPage
	}
	size := p.size()
	// compare in pages first, page*size overflows for huge page numbers
	if page-1 >= p.TotalPages(count) {
		return count, count
	}
	start = (page - 1) * size
	end = min(start+size, count)
	return start, end
}

func (p *Paginator) Apply(records []types.VehicleRecord, page int) []types.VehicleRecord {
	start, end := p.Bounds(len(records), page)
	return records[start:end:end]
}

// TotalPages is ceil(count/size), zero for an empty result.
func (p *Paginator) TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count-1)/p.size() + 1
}

// Clamp limits a requested page to the navigable range [1, totalPages].
func Clamp(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < types.FirstPage {
		page = types.FirstPage
	}
	return page
}

var defaultPaginator = NewPaginator(DefaultPageSize)

func Apply(records []types.VehicleRecord, page int) []types.VehicleRecord {
	return defaultPaginator.Apply(records, page)
}

func TotalPages(count int) int {
	return defaultPaginator.TotalPages(count)
}
