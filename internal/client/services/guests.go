package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/guestkeeper/internal/client/client"
	"github.com/dmitrijs2005/guestkeeper/internal/client/models"
	"github.com/dmitrijs2005/guestkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/guestkeeper/internal/common"
	"github.com/dmitrijs2005/guestkeeper/internal/dbx"
	"github.com/dmitrijs2005/guestkeeper/internal/logging"
	"github.com/google/uuid"
)

// Keys of the local store.
const (
	KeyGuests = "guests"
	KeyTitle  = "title"
)

// GuestService holds the session's guest list. The list is replaced as a
// whole on every change, so a slice handed out by Guests is never modified
// afterwards.
type GuestService struct {
	store        metadata.Repository
	remote       client.ArrivalStore
	txdb         dbx.TxBeginner
	logger       logging.Logger
	onResult     func(Result)
	defaultTitle string
	newID        func() string

	mu     sync.Mutex
	guests []models.Guest
	title  string

	// persistMu orders writes of the guests key; the list is read under it
	// so the last write always carries the newest list.
	persistMu sync.Mutex

	pending sync.WaitGroup
}

type Option func(*GuestService)

func WithLogger(l logging.Logger) Option {
	return func(s *GuestService) { s.logger = l }
}

// WithResultHook registers fn to receive every non-OK boundary Result. It
// may be called from background goroutines.
func WithResultHook(fn func(Result)) Option {
	return func(s *GuestService) { s.onResult = fn }
}

func WithDefaultTitle(title string) Option {
	return func(s *GuestService) { s.defaultTitle = title }
}

// WithTransactions lets Import write the guest list and the title in one
// SQLite transaction instead of two separate writes.
func WithTransactions(db dbx.TxBeginner) Option {
	return func(s *GuestService) { s.txdb = db }
}

func NewGuestService(store metadata.Repository, remote client.ArrivalStore, opts ...Option) *GuestService {
	s := &GuestService{
		store:        store,
		remote:       remote,
		logger:       logging.Nop{},
		defaultTitle: models.DefaultTitle,
		newID:        uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.With("module", "guests")
	s.guests = models.DefaultGuests()
	s.title = s.defaultTitle
	return s
}

func (s *GuestService) report(ctx context.Context, r Result) Result {
	if r.OK() {
		return r
	}
	s.logger.Warn(ctx, "boundary call degraded",
		"boundary", string(r.Boundary), "kind", string(r.Kind), "error", fmt.Sprint(r.Err))
	if s.onResult != nil {
		s.onResult(r)
	}
	return r
}

// Guests returns a copy of the current list.
func (s *GuestService) Guests() []models.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Clone(s.guests)
}

func (s *GuestService) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// Load replaces the in-memory state with the stored snapshot and title.
// Anything unusable falls back to the built-in defaults.
func (s *GuestService) Load(ctx context.Context) Result {
	list, res := s.readSnapshot(ctx)
	title := s.readTitle(ctx)

	s.mu.Lock()
	s.guests = list
	s.title = title
	s.mu.Unlock()

	if res.Kind == KindAbsent {
		s.logger.Info(ctx, "no stored guest list, using defaults", "guests", len(list))
		return res
	}
	return s.report(ctx, res)
}

func (s *GuestService) readSnapshot(ctx context.Context) ([]models.Guest, Result) {
	raw, found, err := s.store.Get(ctx, KeyGuests)
	if err != nil {
		return models.DefaultGuests(), Result{Boundary: BoundarySnapshotRead, Kind: KindStorage, Err: err}
	}
	if !found || len(raw) == 0 {
		return models.DefaultGuests(), Result{Boundary: BoundarySnapshotRead, Kind: KindAbsent}
	}

	var list []models.Guest
	if err := json.Unmarshal(raw, &list); err != nil {
		return models.DefaultGuests(), Result{Boundary: BoundarySnapshotRead, Kind: KindMalformed,
			Err: fmt.Errorf("%w: %v", common.ErrorMalformedSnapshot, err)}
	}
	if list == nil {
		return models.DefaultGuests(), Result{Boundary: BoundarySnapshotRead, Kind: KindMalformed,
			Err: fmt.Errorf("%w: not a list", common.ErrorMalformedSnapshot)}
	}
	return list, ok(BoundarySnapshotRead)
}

func (s *GuestService) readTitle(ctx context.Context) string {
	raw, found, err := s.store.Get(ctx, KeyTitle)
	if err != nil {
		s.report(ctx, Result{Boundary: BoundarySnapshotRead, Kind: KindStorage, Err: err})
		return s.defaultTitle
	}
	if t := strings.TrimSpace(string(raw)); found && t != "" {
		return t
	}
	return s.defaultTitle
}

// Persist writes the whole list to the local store.
func (s *GuestService) Persist(ctx context.Context) Result {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	data, err := json.Marshal(s.Guests())
	if err != nil {
		return s.report(ctx, Result{Boundary: BoundarySnapshotWrite, Kind: KindMalformed, Err: err})
	}
	if err := s.store.Set(ctx, KeyGuests, data); err != nil {
		return s.report(ctx, Result{Boundary: BoundarySnapshotWrite, Kind: KindStorage, Err: err})
	}
	return ok(BoundarySnapshotWrite)
}

// Reset wipes the local store and returns to the built-in guest list and
// the default title. A failed wipe leaves the session unchanged.
func (s *GuestService) Reset(ctx context.Context) Result {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return s.report(ctx, Result{Boundary: BoundarySnapshotWrite, Kind: KindStorage, Err: err})
	}

	s.mu.Lock()
	s.guests = models.DefaultGuests()
	s.title = s.defaultTitle
	s.mu.Unlock()

	s.logger.Info(ctx, "local data reset to defaults")
	return ok(BoundarySnapshotWrite)
}

// SetTitle stores a new event title. Blank titles reset to the default.
func (s *GuestService) SetTitle(ctx context.Context, title string) Result {
	title = strings.TrimSpace(title)
	if title == "" {
		title = s.defaultTitle
	}

	s.mu.Lock()
	s.title = title
	s.mu.Unlock()

	if err := s.store.Set(ctx, KeyTitle, []byte(title)); err != nil {
		return s.report(ctx, Result{Boundary: BoundarySnapshotWrite, Kind: KindStorage, Err: err})
	}
	return ok(BoundarySnapshotWrite)
}

// ReconcileArrivals overwrites every local arrival flag with the remote
// map, once. An empty map or a failed fetch leaves the list untouched.
//
// A SetArrived issued while the fetch is in flight is overwritten by the
// remote value; the last write to the local list wins.
func (s *GuestService) ReconcileArrivals(ctx context.Context) Result {
	remote, err := s.remote.Arrivals(ctx)
	if err != nil {
		return s.report(ctx, Result{Boundary: BoundaryArrivalsFetch, Kind: remoteKind(err), Err: err})
	}
	if len(remote) == 0 {
		s.logger.Info(ctx, "remote arrival map is empty, keeping local flags")
		return ok(BoundaryArrivalsFetch)
	}

	s.mu.Lock()
	next := models.Clone(s.guests)
	for i := range next {
		next[i].Arrived = remote[next[i].ID]
	}
	s.guests = next
	s.mu.Unlock()

	s.logger.Info(ctx, "arrivals reconciled", "remote", len(remote), "guests", len(next))
	s.Persist(ctx)
	return ok(BoundaryArrivalsFetch)
}

// SetArrived updates one guest locally, persists the list and forwards the
// flag to the remote store in the background. It reports whether the id
// exists; unknown ids change nothing and reach no remote.
func (s *GuestService) SetArrived(ctx context.Context, id string, arrived bool) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.guests {
		if s.guests[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	next := models.Clone(s.guests)
	next[idx].Arrived = arrived
	s.guests = next
	s.mu.Unlock()

	s.Persist(ctx)

	s.pending.Add(1)
	go func(ctx context.Context) {
		defer s.pending.Done()
		if err := s.remote.SetArrived(ctx, id, arrived); err != nil {
			s.report(ctx, Result{Boundary: BoundaryArrivalWrite, Kind: remoteKind(err), Err: err})
		}
	}(context.WithoutCancel(ctx))

	return true
}

// Wait blocks until background remote writes have finished.
func (s *GuestService) Wait() {
	s.pending.Wait()
}
