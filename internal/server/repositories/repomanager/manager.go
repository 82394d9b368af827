package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/guestkeeper/internal/dbx"
	"github.com/dmitrijs2005/guestkeeper/internal/server/repositories/arrivals"
)

// RepositoryManager selects the storage backend once at startup. Services
// receive it at construction instead of reaching for a global.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Arrivals(db dbx.DBTX) arrivals.Repository
	// Persistent reports whether arrivals survive a restart.
	Persistent() bool
}
