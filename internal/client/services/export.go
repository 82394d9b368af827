package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/guestkeeper/internal/client/export"
	"github.com/dmitrijs2005/guestkeeper/internal/client/guestlist"
	"github.com/dmitrijs2005/guestkeeper/internal/client/models"
	"github.com/dmitrijs2005/guestkeeper/internal/filex"
	"github.com/dmitrijs2005/guestkeeper/internal/logging"
)

// GuestSource is the read side of GuestService used by exports.
type GuestSource interface {
	Guests() []models.Guest
	Title() string
}

// Publisher uploads a finished artifact and returns a link to it.
type Publisher interface {
	Publish(ctx context.Context, name, contentType string, body []byte) (string, error)
}

// Artifact describes a written export.
type Artifact struct {
	Path   string
	Format export.Format
	Rows   int
	URL    string
}

type ExportService struct {
	source    GuestSource
	dir       string
	publisher Publisher
	opener    func(string) error
	logger    logging.Logger
	now       func() time.Time
}

type ExportOption func(*ExportService)

// WithPublisher uploads CSV and PDF artifacts after they are written.
func WithPublisher(p Publisher) ExportOption {
	return func(s *ExportService) { s.publisher = p }
}

// WithOpener sets the function that shows print documents to the user.
func WithOpener(fn func(string) error) ExportOption {
	return func(s *ExportService) { s.opener = fn }
}

func WithExportLogger(l logging.Logger) ExportOption {
	return func(s *ExportService) { s.logger = l }
}

func NewExportService(source GuestSource, dir string, opts ...ExportOption) *ExportService {
	s := &ExportService{
		source: source,
		dir:    dir,
		logger: logging.Nop{},
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.With("module", "export")
	return s
}

// Export renders the filtered guest list in format f and writes it to the
// export directory. Print documents are opened in the browser; other
// artifacts are published when a publisher is configured. A failed publish
// or open is logged and does not fail the export.
func (s *ExportService) Export(ctx context.Context, f export.Format, filter guestlist.FilterState) (Artifact, error) {
	generatedAt := s.now()
	rows := guestlist.Apply(s.source.Guests(), filter)
	table := export.Project(rows, s.source.Title(), filter, generatedAt)

	var buf bytes.Buffer
	if err := export.Encode(&buf, f, table); err != nil {
		return Artifact{}, fmt.Errorf("encode %s: %w", f, err)
	}

	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return Artifact{}, fmt.Errorf("export dir: %w", err)
	}
	name := export.Filename(f, generatedAt)
	path, err := filex.WriteFileAtomic(dir, name, buf.Bytes())
	if err != nil {
		return Artifact{}, fmt.Errorf("write %s: %w", name, err)
	}

	a := Artifact{Path: path, Format: f, Rows: len(table.Rows)}
	s.logger.Info(ctx, "export written", "format", string(f), "path", path, "rows", a.Rows)

	switch {
	case f == export.FormatHTML && s.opener != nil:
		if err := s.opener(path); err != nil {
			s.logger.Warn(ctx, "cannot open print view", "path", path, "error", err.Error())
		}
	case f != export.FormatHTML && s.publisher != nil:
		url, err := s.publisher.Publish(ctx, name, export.ContentType(f), buf.Bytes())
		if err != nil {
			s.logger.Warn(ctx, "publish failed", "path", path, "error", err.Error())
			break
		}
		a.URL = url
	}
	return a, nil
}
