package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/guestkeeper/internal/dbx"
	"github.com/dmitrijs2005/guestkeeper/internal/server/repositories/arrivals"
)

// InMemoryRepositoryManager serves one shared in-process repository and
// ignores the db handle it is given.
type InMemoryRepositoryManager struct {
	arrivals *arrivals.MemoryRepository
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{arrivals: arrivals.NewMemoryRepository()}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Arrivals(dbx.DBTX) arrivals.Repository {
	return m.arrivals
}

func (m *InMemoryRepositoryManager) Persistent() bool { return false }
