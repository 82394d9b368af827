package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/guestkeeper/internal/client/models"
	"github.com/dmitrijs2005/guestkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/guestkeeper/internal/common"
	"github.com/dmitrijs2005/guestkeeper/internal/dbx"
)

// importRecord is the lenient shape accepted from import files. Enum fields
// are plain strings so that labels ("Will not attend") parse as well.
type importRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	InviteName    string `json:"inviteName"`
	Group         string `json:"group"`
	Accommodation string `json:"accommodation"`
	Status        string `json:"status"`
	Arrived       bool   `json:"arrived"`
}

type importDocument struct {
	Title  string         `json:"title"`
	Guests []importRecord `json:"guests"`
}

// ParseImport decodes an import file: either a bare JSON array of guests or
// an object {"title": ..., "guests": [...]}. Records without an id get a new
// one; a missing status means Pending.
func (s *GuestService) ParseImport(data []byte) ([]models.Guest, string, error) {
	data = bytes.TrimSpace(data)
	var doc importDocument
	switch {
	case len(data) == 0:
		return nil, "", fmt.Errorf("%w: empty document", common.ErrorValidation)
	case data[0] == '[':
		if err := json.Unmarshal(data, &doc.Guests); err != nil {
			return nil, "", fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}
	case data[0] == '{':
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, "", fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}
		if doc.Guests == nil {
			return nil, "", fmt.Errorf("%w: guests list is missing", common.ErrorValidation)
		}
	default:
		return nil, "", fmt.Errorf("%w: expected a JSON array of guests", common.ErrorValidation)
	}

	seen := make(map[string]int, len(doc.Guests))
	out := make([]models.Guest, 0, len(doc.Guests))
	for i, rec := range doc.Guests {
		g, err := s.fromRecord(rec)
		if err != nil {
			return nil, "", fmt.Errorf("%w: guest #%d: %v", common.ErrorValidation, i, err)
		}
		if j, dup := seen[g.ID]; dup {
			return nil, "", fmt.Errorf("%w: guest #%d: duplicate id %q (first at #%d)", common.ErrorValidation, i, g.ID, j)
		}
		seen[g.ID] = i
		out = append(out, g)
	}
	return out, strings.TrimSpace(doc.Title), nil
}

func (s *GuestService) fromRecord(rec importRecord) (models.Guest, error) {
	g := models.Guest{
		ID:         strings.TrimSpace(rec.ID),
		Name:       strings.TrimSpace(rec.Name),
		InviteName: strings.TrimSpace(rec.InviteName),
		Status:     models.StatusPending,
		Arrived:    rec.Arrived,
	}
	if g.Name == "" {
		return g, errors.New("name is empty")
	}
	if g.ID == "" {
		g.ID = s.newID()
	}

	var err error
	if g.Group, err = models.ParseGroup(rec.Group); err != nil {
		return g, err
	}
	if strings.TrimSpace(rec.Status) != "" {
		if g.Status, err = models.ParseStatus(rec.Status); err != nil {
			return g, err
		}
	}
	if strings.TrimSpace(rec.Accommodation) != "" {
		if g.Accommodation, err = models.ParseAccommodation(rec.Accommodation); err != nil {
			return g, err
		}
	}
	return g, g.Validate()
}

// Import replaces the whole guest list (and the title, when the document has
// one). Nothing changes unless both the parse and the write succeed.
func (s *GuestService) Import(ctx context.Context, data []byte) (int, error) {
	list, title, err := s.ParseImport(data)
	if err != nil {
		return 0, err
	}
	snapshot, err := json.Marshal(list)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	write := func(ctx context.Context, repo metadata.Repository) error {
		if err := repo.Set(ctx, KeyGuests, snapshot); err != nil {
			return err
		}
		if title != "" {
			return repo.Set(ctx, KeyTitle, []byte(title))
		}
		return nil
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if s.txdb != nil {
		err = dbx.WithTx(ctx, s.txdb, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return write(ctx, metadata.NewSQLiteRepository(tx))
		})
	} else {
		err = write(ctx, s.store)
	}
	if err != nil {
		s.report(ctx, Result{Boundary: BoundarySnapshotWrite, Kind: KindStorage, Err: err})
		return 0, fmt.Errorf("import: %w", err)
	}

	s.mu.Lock()
	s.guests = list
	if title != "" {
		s.title = title
	}
	s.mu.Unlock()

	s.logger.Info(ctx, "guest list imported", "guests", len(list))
	return len(list), nil
}
