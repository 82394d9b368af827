package arrivals

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/guestkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) All(ctx context.Context) (map[string]bool, error) {
	query := `SELECT id, arrived FROM arrivals`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var (
			id      string
			arrived bool
		)
		if err := rows.Scan(&id, &arrived); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out[id] = arrived
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, id string, arrived bool) error {
	query :=
		`INSERT INTO arrivals (id, arrived) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET arrived = EXCLUDED.arrived
		 `

	if _, err := r.db.ExecContext(ctx, query, id, arrived); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
