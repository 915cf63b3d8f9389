package dto

// ListResponse is the envelope of every collection endpoint.
type ListResponse[T any] struct {
	Documents []T `json:"documents"`
	Total     int `json:"total"`
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Documents: items, Total: len(items)}
}

// Map converts a slice with fn and wraps the result in a ListResponse.
func Map[S, T any](items []S, fn func(S) T) ListResponse[T] {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return NewList(out)
}

func idStrings(ids []int64) []string {
	out := make([]string, len(ids))
	for i, v := range ids {
		out[i] = formatID(v)
	}
	return out
}
