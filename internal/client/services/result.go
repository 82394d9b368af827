package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/guestkeeper/internal/client/client"
)

// Boundary names a call that leaves the in-memory guest list.
type Boundary string

const (
	BoundarySnapshotRead  Boundary = "snapshot_read"
	BoundarySnapshotWrite Boundary = "snapshot_write"
	BoundaryArrivalsFetch Boundary = "arrivals_fetch"
	BoundaryArrivalWrite  Boundary = "arrival_write"
)

// Kind classifies the outcome of a boundary call.
type Kind string

const (
	KindOK          Kind = "ok"
	KindAbsent      Kind = "absent"
	KindMalformed   Kind = "malformed"
	KindUnavailable Kind = "unavailable"
	KindRejected    Kind = "rejected"
	KindStorage     Kind = "storage"
)

// Result is the explicit outcome of a boundary call. The guest service
// always degrades to the last known good state, so a non-OK Result is
// informational: callers may log or display it but never have to handle it.
type Result struct {
	Boundary Boundary
	Kind     Kind
	Err      error
}

func (r Result) OK() bool { return r.Kind == KindOK }

func ok(b Boundary) Result { return Result{Boundary: b, Kind: KindOK} }

// remoteKind maps an arrival-store error onto a Kind.
func remoteKind(err error) Kind {
	if errors.Is(err, client.ErrUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return KindUnavailable
	}
	if code, ok := client.StatusCode(err); ok {
		if code < http.StatusInternalServerError {
			return KindRejected
		}
		return KindStorage
	}
	return KindMalformed
}
