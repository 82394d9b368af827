package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/guestkeeper/internal/common"
	"github.com/dmitrijs2005/guestkeeper/internal/server/models"
	"github.com/dmitrijs2005/guestkeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrivalService_InMemory(t *testing.T) {
	svc := NewArrivalService(nil, repomanager.NewInMemoryRepositoryManager())
	ctx := context.Background()

	got, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, svc.SetArrived(ctx, models.ArrivalRecord{ID: "guest-001", Arrived: true}))
	require.NoError(t, svc.SetArrived(ctx, models.ArrivalRecord{ID: "guest-002", Arrived: true}))
	require.NoError(t, svc.SetArrived(ctx, models.ArrivalRecord{ID: "guest-001", Arrived: false}))

	got, err = svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"guest-001": false, "guest-002": true}, got)
	assert.Equal(t, Health{OK: true, DB: false}, svc.Health(ctx))
}

func TestArrivalService_RejectsEmptyID(t *testing.T) {
	svc := NewArrivalService(nil, repomanager.NewInMemoryRepositoryManager())

	err := svc.SetArrived(context.Background(), models.ArrivalRecord{ID: "  ", Arrived: true})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestArrivalService_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	svc := NewArrivalService(db, repomanager.NewPostgresRepositoryManager())
	ctx := context.Background()

	mock.ExpectExec(`INSERT\s+INTO\s+arrivals`).WithArgs("guest-003", true).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, svc.SetArrived(ctx, models.ArrivalRecord{ID: "guest-003", Arrived: true}))

	mock.ExpectQuery(`SELECT\s+id,\s*arrived\s+FROM\s+arrivals`).WillReturnError(errors.New("db down"))
	_, err = svc.All(ctx)
	assert.ErrorContains(t, err, "db down")

	assert.Equal(t, Health{OK: true, DB: true}, svc.Health(ctx))
	require.NoError(t, mock.ExpectationsWereMet())
}
