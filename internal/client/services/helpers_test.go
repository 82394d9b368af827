package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/guestkeeper/internal/client/client"
	"github.com/dmitrijs2005/guestkeeper/internal/client/models"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := client.InitDatabase(context.Background(), "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type setCall struct {
	id      string
	arrived bool
}

// fakeRemote is an ArrivalStore whose responses are scripted by the test.
type fakeRemote struct {
	mu       sync.Mutex
	arrivals map[string]bool
	fetchErr error
	setErr   error
	calls    []setCall

	// when set, Arrivals signals started and waits for release
	started chan struct{}
	release chan struct{}
}

func (f *fakeRemote) Arrivals(ctx context.Context) (map[string]bool, error) {
	if f.started != nil {
		close(f.started)
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make(map[string]bool, len(f.arrivals))
	for k, v := range f.arrivals {
		out[k] = v
	}
	return out, nil
}

func (f *fakeRemote) SetArrived(ctx context.Context, id string, arrived bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, setCall{id, arrived})
	return f.setErr
}

func (f *fakeRemote) Health(ctx context.Context) (client.Health, error) {
	return client.Health{OK: true}, nil
}

func (f *fakeRemote) Calls() []setCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]setCall(nil), f.calls...)
}

// memStore is a metadata.Repository kept in a map, with injectable errors.
type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	setErr error
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data = map[string][]byte{}
	return nil
}

func threeGuests() []models.Guest {
	return []models.Guest{
		{ID: "id1", Name: "Ana", InviteName: "Ana & Rui", Group: models.GroupFamily, Status: models.StatusConfirmed},
		{ID: "id2", Name: "Bruno", InviteName: "Bruno", Group: models.GroupFriends, Status: models.StatusPending, Accommodation: models.AccommodationSandi},
		{ID: "id3", Name: "Carla", InviteName: "Carla", Group: models.GroupFriends, Status: models.StatusWillNotAttend},
	}
}

func ids(list []models.Guest) []string {
	out := make([]string, len(list))
	for i, g := range list {
		out[i] = g.ID
	}
	return out
}

func arrivedByID(list []models.Guest) map[string]bool {
	out := make(map[string]bool, len(list))
	for _, g := range list {
		out[g.ID] = g.Arrived
	}
	return out
}

// gatedStore holds the first write of the guests key until release is
// closed, so a test can interleave other work with an in-flight persist.
type gatedStore struct {
	*memStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedStore() *gatedStore {
	return &gatedStore{memStore: newMemStore(), entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedStore) Set(ctx context.Context, key string, value []byte) error {
	if key == KeyGuests {
		first := false
		g.once.Do(func() { first = true })
		if first {
			close(g.entered)
			<-g.release
		}
	}
	return g.memStore.Set(ctx, key, value)
}

func (g *gatedStore) stored(t *testing.T) []models.Guest {
	t.Helper()
	g.mu.Lock()
	raw := g.data[KeyGuests]
	g.mu.Unlock()
	var list []models.Guest
	require.NoError(t, json.Unmarshal(raw, &list))
	return list
}
