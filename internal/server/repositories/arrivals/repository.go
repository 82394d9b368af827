package arrivals

import (
	"context"
)

// Repository stores one arrival flag per guest id. Upsert is last write wins.
type Repository interface {
	All(ctx context.Context) (map[string]bool, error)
	Upsert(ctx context.Context, id string, arrived bool) error
}
