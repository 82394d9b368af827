package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/guestkeeper/internal/client/export"
	"github.com/dmitrijs2005/guestkeeper/internal/client/guestlist"
	"github.com/dmitrijs2005/guestkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	guests []models.Guest
	title  string
}

func (s staticSource) Guests() []models.Guest { return models.Clone(s.guests) }
func (s staticSource) Title() string          { return s.title }

type fakePublisher struct {
	name, contentType string
	body              []byte
	err               error
}

func (p *fakePublisher) Publish(ctx context.Context, name, contentType string, body []byte) (string, error) {
	p.name, p.contentType, p.body = name, contentType, body
	if p.err != nil {
		return "", p.err
	}
	return "https://bucket/" + name, nil
}

func newExport(t *testing.T, opts ...ExportOption) (*ExportService, string) {
	t.Helper()
	dir := t.TempDir()
	svc := NewExportService(staticSource{guests: threeGuests(), title: "Gala"}, dir, opts...)
	svc.now = func() time.Time { return time.Date(2024, 7, 5, 18, 30, 0, 0, time.UTC) }
	return svc, dir
}

func TestExport_CSVRendersFilteredList(t *testing.T) {
	svc, dir := newExport(t)
	friends := models.GroupFriends

	a, err := svc.Export(context.Background(), export.FormatCSV, guestlist.FilterState{Group: &friends})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "guests-2024-07-05.csv"), a.Path)
	assert.Equal(t, 2, a.Rows)
	assert.Empty(t, a.URL)

	b, err := os.ReadFile(a.Path)
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, "\ufeff"))
	assert.Contains(t, s, "Group: Friends")
	assert.Contains(t, s, "Bruno")
	assert.NotContains(t, s, "Ana & Rui")
}

func TestExport_PrintOpensBrowser(t *testing.T) {
	var opened string
	svc, _ := newExport(t, WithOpener(func(p string) error { opened = p; return nil }))

	a, err := svc.Export(context.Background(), export.FormatHTML, guestlist.FilterState{})
	require.NoError(t, err)
	assert.Equal(t, a.Path, opened)
	assert.True(t, strings.HasSuffix(a.Path, "guests-2024-07-05.html"))
}

func TestExport_OpenFailureIsNotFatal(t *testing.T) {
	svc, _ := newExport(t, WithOpener(func(string) error { return errors.New("no display") }))
	_, err := svc.Export(context.Background(), export.FormatHTML, guestlist.FilterState{})
	assert.NoError(t, err)
}

func TestExport_PublishesPDF(t *testing.T) {
	pub := &fakePublisher{}
	svc, _ := newExport(t, WithPublisher(pub))

	a, err := svc.Export(context.Background(), export.FormatPDF, guestlist.FilterState{})
	require.NoError(t, err)
	assert.Equal(t, "https://bucket/guests-2024-07-05.pdf", a.URL)
	assert.Equal(t, "application/pdf", pub.contentType)
	assert.True(t, strings.HasPrefix(string(pub.body), "%PDF-"))

	onDisk, err := os.ReadFile(a.Path)
	require.NoError(t, err)
	assert.Equal(t, onDisk, pub.body)
}

func TestExport_PublishFailureKeepsLocalFile(t *testing.T) {
	svc, _ := newExport(t, WithPublisher(&fakePublisher{err: errors.New("denied")}))

	a, err := svc.Export(context.Background(), export.FormatCSV, guestlist.FilterState{})
	require.NoError(t, err)
	assert.Empty(t, a.URL)
	assert.FileExists(t, a.Path)
}

func TestExport_PrintIsNeverPublished(t *testing.T) {
	pub := &fakePublisher{}
	svc, _ := newExport(t, WithPublisher(pub))

	_, err := svc.Export(context.Background(), export.FormatHTML, guestlist.FilterState{})
	require.NoError(t, err)
	assert.Empty(t, pub.name)
}

func TestExport_UnknownFormat(t *testing.T) {
	svc, dir := newExport(t)
	_, err := svc.Export(context.Background(), export.Format("xls"), guestlist.FilterState{})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
