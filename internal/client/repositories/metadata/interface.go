// Package metadata is the local durable key/value store of the CLI. The
// guest service keeps its snapshot and the event title here.
package metadata

import (
	"context"
)

// Repository stores opaque values by key. Get reports a missing key with
// ok == false and a nil error. Clear drops every key.
type Repository interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}
