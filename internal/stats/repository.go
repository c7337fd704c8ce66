package stats

import "context"

// Repository provides category-scoped access to dashboard statistics.
// Categories are open-ended strings; an unknown category lists as empty.
// ReplaceCategory swaps a category's full tile set in one operation.
type Repository interface {
	ListByCategory(ctx context.Context, category string) ([]Stat, error)
	ReplaceCategory(ctx context.Context, category string, entries []Stat) ([]Stat, error)
}
