package dto

// Paginated wraps a list payload with its total row count.
type Paginated[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}

func NewPaginated[T any](results []T, count int64) Paginated[T] {
	if results == nil {
		results = []T{}
	}
	return Paginated[T]{Count: count, Results: results}
}

// ListQuery binds the shared limit/offset/search query parameters.
type ListQuery struct {
	Search string `form:"search"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}
