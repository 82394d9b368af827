package client

import "context"

// Health is the informational answer of the arrival store.
type Health struct {
	OK bool `json:"ok"`
	DB bool `json:"db"`
}

// ArrivalStore is the remote key/value store of arrival flags keyed by
// guest id. Writes are upserts and the last one wins.
type ArrivalStore interface {
	Arrivals(ctx context.Context) (map[string]bool, error)
	SetArrived(ctx context.Context, id string, arrived bool) error
	Health(ctx context.Context) (Health, error)
}
