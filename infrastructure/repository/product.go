package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

const productsTable = "products p"

type ProductRepository interface {
	ExistingRefCodes(ctx context.Context, refCodes []string) (map[string]struct{}, error)
	InsertBatch(ctx context.Context, products []*domain.Product) (int64, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ExistingRefCodes(ctx context.Context, refCodes []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{})
	if len(refCodes) == 0 {
		return existing, nil
	}

	query, args, err := squirrel.
		Select("p.product_ref_code").
		From(productsTable).
		Where(squirrel.Expr("p.product_ref_code = ANY(?)", pq.Array(refCodes))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var refCode string
		if err := rows.Scan(&refCode); err != nil {
			return nil, fmt.Errorf("erro ao escanear referência de produto: %w", err)
		}
		existing[refCode] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return existing, nil
}

// InsertBatch nunca atualiza produtos já cadastrados: a primeira sincronização prevalece
func (r *productRepository) InsertBatch(ctx context.Context, products []*domain.Product) (int64, error) {
	var inserted int64

	for _, batch := range chunk(products, batchSize) {
		query := squirrel.StatementBuilder.
			Insert("products").
			Columns("id", "product_ref_code", "product_code", "section", "product_group", "subgroup", "brand", "description").
			PlaceholderFormat(squirrel.Dollar)

		for _, product := range batch {
			query = query.Values(
				product.ID,
				product.ProductRefCode,
				product.ProductCode,
				product.Section,
				product.Group,
				product.Subgroup,
				product.Brand,
				product.Description,
			)
		}

		query = query.Suffix("ON CONFLICT (product_ref_code) DO NOTHING")

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := r.conn.Querier(ctx).ExecContext(ctx, sqlQuery, args...)
		if err != nil {
			return inserted, execError(err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}
		inserted += rowsAffected
	}

	return inserted, nil
}
