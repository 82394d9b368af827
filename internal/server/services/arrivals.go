package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/guestkeeper/internal/common"
	"github.com/dmitrijs2005/guestkeeper/internal/server/models"
	"github.com/dmitrijs2005/guestkeeper/internal/server/repositories/repomanager"
)

// Health is the payload of the health endpoint.
type Health struct {
	OK bool `json:"ok"`
	DB bool `json:"db"`
}

type ArrivalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewArrivalService binds the service to a backend. db is nil for the
// in-memory backend.
func NewArrivalService(db *sql.DB, repomanager repomanager.RepositoryManager) *ArrivalService {
	return &ArrivalService{db: db, repomanager: repomanager}
}

// All returns every stored arrival flag keyed by guest id.
func (s *ArrivalService) All(ctx context.Context) (map[string]bool, error) {
	return s.repomanager.Arrivals(s.db).All(ctx)
}

// SetArrived records the flag for one guest; the newest write wins.
func (s *ArrivalService) SetArrived(ctx context.Context, rec models.ArrivalRecord) error {
	if strings.TrimSpace(rec.ID) == "" {
		return fmt.Errorf("%w: empty guest id", common.ErrorValidation)
	}
	return s.repomanager.Arrivals(s.db).Upsert(ctx, rec.ID, rec.Arrived)
}

func (s *ArrivalService) Health(ctx context.Context) Health {
	return Health{OK: true, DB: s.repomanager.Persistent()}
}
