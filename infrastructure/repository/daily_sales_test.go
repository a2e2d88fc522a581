package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &postgres.Connection{DB: db}, mock
}

func TestDailySalesRepository_LockAggregates(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewDailySalesRepository(conn)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(aggregatesLockKey).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := conn.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return repo.LockAggregates(ctx)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailySalesRepository_ReplacePeriod(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	aggregate := &domain.DailySalesAggregate{
		ID:        "daily-1",
		StoreID:   "store-1",
		StoreCode: "000001",
		StoreName: "Loja Centro",
		Date:      time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		PDV:       decimal.RequireFromString("100"),
		DANFE:     decimal.RequireFromString("50"),
		Exchange:  decimal.RequireFromString("30"),
		Total:     decimal.RequireFromString("120"),
	}

	tests := []struct {
		name       string
		storeIDs   []string
		aggregates []*domain.DailySalesAggregate
		setup      func(mock sqlmock.Sqlmock)
	}{
		{
			name:       "Apaga só os dias fora do recálculo e faz upsert dos demais",
			storeIDs:   []string{"store-1"},
			aggregates: []*domain.DailySalesAggregate{aggregate},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM daily_sales WHERE store_id IN ($1) AND date >= $2 AND date <= $3 AND "+dailyKeyExpr+" NOT IN ($4)")).
					WithArgs("store-1", "2025-01-01", "2025-01-31", "store-1|2025-01-15").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(`INSERT INTO daily_sales .+ ON CONFLICT \(store_id, date\) DO UPDATE SET`).
					WithArgs("daily-1", "store-1", "000001", "Loja Centro", "2025-01-15",
						aggregate.PDV, aggregate.DANFE, aggregate.Exchange, aggregate.Total).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:       "Sem agregados apaga o período inteiro das lojas",
			storeIDs:   []string{"store-1"},
			aggregates: []*domain.DailySalesAggregate{},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM daily_sales WHERE store_id IN ($1) AND date >= $2 AND date <= $3")).
					WithArgs("store-1", "2025-01-01", "2025-01-31").
					WillReturnResult(sqlmock.NewResult(0, 3))
			},
		},
		{
			name:       "Sem lojas não toca no banco",
			storeIDs:   []string{},
			aggregates: []*domain.DailySalesAggregate{aggregate},
			setup:      func(mock sqlmock.Sqlmock) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			err := NewDailySalesRepository(conn).ReplacePeriod(context.Background(), tt.storeIDs, start, end, tt.aggregates)

			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
