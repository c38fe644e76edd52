package dtos

const (
	DefaultPageSize = 10
	// MaxPageSize bounds result materialization; requests above it are
	// clamped rather than rejected.
	MaxPageSize = 100
)

// PagingParams carries a normalized page/pageSize pair. Build one through
// NewPagingParams so out-of-range input collapses to the defaults.
type PagingParams struct {
	Page     int
	PageSize int
}

func NewPagingParams(page, pageSize int) PagingParams {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return PagingParams{Page: page, PageSize: pageSize}
}

func (p PagingParams) Offset() int { return (p.Page - 1) * p.PageSize }
func (p PagingParams) Limit() int  { return p.PageSize }

// PagedResult is the paged envelope: one page of items plus the echoed
// paging parameters and the total unfiltered count.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

func NewPagedResult[T any](items []T, p PagingParams, total int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{Items: items, Page: p.Page, PageSize: p.PageSize, TotalCount: total}
}
