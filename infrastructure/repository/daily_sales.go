package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

// aggregatesLockKey identifica o advisory lock que serializa a reescrita dos agregados
const aggregatesLockKey int64 = 7310001

const (
	dailySalesTable  = "daily_sales ds"
	dailySalesFields = "ds.id, ds.store_id, ds.store_code, ds.store_name, ds.date, ds.pdv, ds.danfe, ds.exchange, ds.total, ds.created_at, ds.updated_at"
)

type DailySalesRepository interface {
	LockAggregates(ctx context.Context) error
	ReplacePeriod(ctx context.Context, storeIDs []string, startDate, endDate time.Time, aggregates []*domain.DailySalesAggregate) error
	ListByPeriod(ctx context.Context, storeIDs []string, startDate, endDate time.Time) ([]*domain.DailySalesAggregate, error)
}

type dailySalesRepository struct {
	conn *postgres.Connection
}

func NewDailySalesRepository(conn *postgres.Connection) DailySalesRepository {
	return &dailySalesRepository{
		conn: conn,
	}
}

// LockAggregates segura o advisory lock dos agregados até o fim da transação corrente.
// Execuções de domínios diferentes recalculam os mesmos dias, então a segunda espera a primeira
// terminar e relê as vendas já confirmadas.
func (r *dailySalesRepository) LockAggregates(ctx context.Context) error {
	if _, err := r.conn.Querier(ctx).ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", aggregatesLockKey); err != nil {
		return execError(err)
	}
	return nil
}

// ReplacePeriod grava os agregados diários recalculados das lojas no período com upsert e
// apaga os dias que deixaram de ter vendas, em vez de manter um total antigo.
func (r *dailySalesRepository) ReplacePeriod(
	ctx context.Context,
	storeIDs []string,
	startDate, endDate time.Time,
	aggregates []*domain.DailySalesAggregate,
) error {
	if len(storeIDs) == 0 {
		return nil
	}

	deleteBuilder := squirrel.
		Delete("daily_sales").
		Where(squirrel.Eq{"store_id": storeIDs}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar)

	if len(aggregates) > 0 {
		deleteBuilder = deleteBuilder.Where(squirrel.NotEq{dailyKeyExpr: dailyKeys(aggregates)})
	}

	deleteQuery, deleteArgs, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Querier(ctx).ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return execError(err)
	}

	for _, batch := range chunk(aggregates, batchSize) {
		query := squirrel.StatementBuilder.
			Insert("daily_sales").
			Columns("id", "store_id", "store_code", "store_name", "date", "pdv", "danfe", "exchange", "total").
			PlaceholderFormat(squirrel.Dollar)

		for _, aggregate := range batch {
			query = query.Values(
				aggregate.ID,
				aggregate.StoreID,
				aggregate.StoreCode,
				aggregate.StoreName,
				aggregate.Date.Format(time.DateOnly),
				aggregate.PDV,
				aggregate.DANFE,
				aggregate.Exchange,
				aggregate.Total,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (store_id, date) DO UPDATE SET
				store_code = EXCLUDED.store_code,
				store_name = EXCLUDED.store_name,
				pdv = EXCLUDED.pdv,
				danfe = EXCLUDED.danfe,
				exchange = EXCLUDED.exchange,
				total = EXCLUDED.total,
				updated_at = NOW()
		`)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.Querier(ctx).ExecContext(ctx, sqlQuery, args...); err != nil {
			return execError(err)
		}
	}

	return nil
}

const dailyKeyExpr = "store_id || '|' || date::text"

// dailyKeys monta as chaves no mesmo formato de dailyKeyExpr
func dailyKeys(aggregates []*domain.DailySalesAggregate) []string {
	keys := make([]string, 0, len(aggregates))
	for _, aggregate := range aggregates {
		keys = append(keys, aggregate.StoreID+"|"+aggregate.Date.Format(time.DateOnly))
	}
	return keys
}

func (r *dailySalesRepository) ListByPeriod(ctx context.Context, storeIDs []string, startDate, endDate time.Time) ([]*domain.DailySalesAggregate, error) {
	builder := squirrel.
		Select(dailySalesFields).
		From(dailySalesTable).
		Where(squirrel.GtOrEq{"ds.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ds.date": endDate.Format(time.DateOnly)}).
		OrderBy("ds.store_code ASC", "ds.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(storeIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"ds.store_id": storeIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	aggregates := make([]*domain.DailySalesAggregate, 0)
	for rows.Next() {
		aggregate := &domain.DailySalesAggregate{}
		err := rows.Scan(
			&aggregate.ID,
			&aggregate.StoreID,
			&aggregate.StoreCode,
			&aggregate.StoreName,
			&aggregate.Date,
			&aggregate.PDV,
			&aggregate.DANFE,
			&aggregate.Exchange,
			&aggregate.Total,
			&aggregate.CreatedAt,
			&aggregate.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado diário: %w", err)
		}
		aggregates = append(aggregates, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}
