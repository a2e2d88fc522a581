package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

const (
	monthlySalesTable  = "monthly_sales ms"
	monthlySalesFields = "ms.id, ms.store_id, ms.store_code, ms.store_name, ms.year_month, ms.total, ms.created_at, ms.updated_at"
)

type MonthlySalesRepository interface {
	Upsert(ctx context.Context, aggregates []*domain.MonthlySalesAggregate) error
	ListByYear(ctx context.Context, storeIDs []string, year int) ([]*domain.MonthlySalesAggregate, error)
}

type monthlySalesRepository struct {
	conn *postgres.Connection
}

func NewMonthlySalesRepository(conn *postgres.Connection) MonthlySalesRepository {
	return &monthlySalesRepository{
		conn: conn,
	}
}

// Upsert substitui o total do mês; nunca soma ao valor existente
func (r *monthlySalesRepository) Upsert(ctx context.Context, aggregates []*domain.MonthlySalesAggregate) error {
	for _, batch := range chunk(aggregates, batchSize) {
		query := squirrel.StatementBuilder.
			Insert("monthly_sales").
			Columns("id", "store_id", "store_code", "store_name", "year_month", "total").
			PlaceholderFormat(squirrel.Dollar)

		for _, aggregate := range batch {
			query = query.Values(
				aggregate.ID,
				aggregate.StoreID,
				aggregate.StoreCode,
				aggregate.StoreName,
				aggregate.YearMonth,
				aggregate.Total,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (store_id, year_month) DO UPDATE SET
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

func (r *monthlySalesRepository) ListByYear(ctx context.Context, storeIDs []string, year int) ([]*domain.MonthlySalesAggregate, error) {
	builder := squirrel.
		Select(monthlySalesFields).
		From(monthlySalesTable).
		Where(squirrel.Like{"ms.year_month": fmt.Sprintf("%04d-%%", year)}).
		OrderBy("ms.store_code ASC", "ms.year_month ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(storeIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"ms.store_id": storeIDs})
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

	aggregates := make([]*domain.MonthlySalesAggregate, 0)
	for rows.Next() {
		aggregate := &domain.MonthlySalesAggregate{}
		err := rows.Scan(
			&aggregate.ID,
			&aggregate.StoreID,
			&aggregate.StoreCode,
			&aggregate.StoreName,
			&aggregate.YearMonth,
			&aggregate.Total,
			&aggregate.CreatedAt,
			&aggregate.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado mensal: %w", err)
		}
		aggregates = append(aggregates, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}
