package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

const (
	yearlySalesTable  = "yearly_sales ys"
	yearlySalesFields = "ys.id, ys.store_id, ys.store_code, ys.store_name, ys.year, ys.total, ys.created_at, ys.updated_at"
)

type YearlySalesRepository interface {
	Upsert(ctx context.Context, aggregates []*domain.YearlySalesAggregate) error
	ListByYears(ctx context.Context, storeIDs []string, startYear, endYear int) ([]*domain.YearlySalesAggregate, error)
}

type yearlySalesRepository struct {
	conn *postgres.Connection
}

func NewYearlySalesRepository(conn *postgres.Connection) YearlySalesRepository {
	return &yearlySalesRepository{
		conn: conn,
	}
}

func (r *yearlySalesRepository) Upsert(ctx context.Context, aggregates []*domain.YearlySalesAggregate) error {
	for _, batch := range chunk(aggregates, batchSize) {
		query := squirrel.StatementBuilder.
			Insert("yearly_sales").
			Columns("id", "store_id", "store_code", "store_name", "year", "total").
			PlaceholderFormat(squirrel.Dollar)

		for _, aggregate := range batch {
			query = query.Values(
				aggregate.ID,
				aggregate.StoreID,
				aggregate.StoreCode,
				aggregate.StoreName,
				aggregate.Year,
				aggregate.Total,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (store_id, year) DO UPDATE SET
				store_code = EXCLUDED.store_code,
				store_name = EXCLUDED.store_name,
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

func (r *yearlySalesRepository) ListByYears(ctx context.Context, storeIDs []string, startYear, endYear int) ([]*domain.YearlySalesAggregate, error) {
	builder := squirrel.
		Select(yearlySalesFields).
		From(yearlySalesTable).
		Where(squirrel.GtOrEq{"ys.year": startYear}).
		Where(squirrel.LtOrEq{"ys.year": endYear}).
		OrderBy("ys.store_code ASC", "ys.year ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(storeIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"ys.store_id": storeIDs})
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

	aggregates := make([]*domain.YearlySalesAggregate, 0)
	for rows.Next() {
		aggregate := &domain.YearlySalesAggregate{}
		err := rows.Scan(
			&aggregate.ID,
			&aggregate.StoreID,
			&aggregate.StoreCode,
			&aggregate.StoreName,
			&aggregate.Year,
			&aggregate.Total,
			&aggregate.CreatedAt,
			&aggregate.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado anual: %w", err)
		}
		aggregates = append(aggregates, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}
