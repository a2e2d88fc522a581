package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

const (
	rawSalesTable = "raw_sales rs"
	rawSaleFields = "rs.id, rs.sale_code, rs.item_sequence, rs.store_code, rs.employee_code, rs.product_ref_code, " +
		"rs.origin_code, rs.operation_code, rs.sale_date, rs.quantity, rs.unit_price, rs.total_price, rs.created_at"
)

type SaleRepository interface {
	ExistingKeys(ctx context.Context, keys []domain.SaleKey) (map[domain.SaleKey]struct{}, error)
	InsertBatch(ctx context.Context, sales []*domain.SaleRecord) (int64, error)
	ListByPeriod(ctx context.Context, storeCodes []string, startDate, endDate time.Time) ([]*domain.SaleRecord, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ExistingKeys consulta em uma única ida ao banco quais chaves naturais já estão gravadas
func (r *saleRepository) ExistingKeys(ctx context.Context, keys []domain.SaleKey) (map[domain.SaleKey]struct{}, error) {
	existing := make(map[domain.SaleKey]struct{})
	if len(keys) == 0 {
		return existing, nil
	}

	requested := make(map[domain.SaleKey]struct{}, len(keys))
	saleCodes := make([]string, 0, len(keys))
	seenCodes := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		requested[key] = struct{}{}
		if _, ok := seenCodes[key.SaleCode]; !ok {
			seenCodes[key.SaleCode] = struct{}{}
			saleCodes = append(saleCodes, key.SaleCode)
		}
	}

	query, args, err := squirrel.
		Select("rs.sale_code, rs.product_ref_code, rs.item_sequence").
		From(rawSalesTable).
		Where(squirrel.Expr("rs.sale_code = ANY(?)", pq.Array(saleCodes))).
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
		var key domain.SaleKey
		if err := rows.Scan(&key.SaleCode, &key.ProductRefCode, &key.ItemSequence); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave de venda: %w", err)
		}
		if _, ok := requested[key]; ok {
			existing[key] = struct{}{}
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return existing, nil
}

// InsertBatch grava apenas chaves ausentes e retorna quantas linhas foram de fato inseridas.
// Uma chave gravada por outro escritor entre a consulta e o INSERT é descartada pelo ON CONFLICT.
func (r *saleRepository) InsertBatch(ctx context.Context, sales []*domain.SaleRecord) (int64, error) {
	var inserted int64

	for _, batch := range chunk(sales, batchSize) {
		query := squirrel.StatementBuilder.
			Insert("raw_sales").
			Columns(
				"id", "sale_code", "item_sequence", "store_code", "employee_code", "product_ref_code",
				"origin_code", "operation_code", "sale_date", "quantity", "unit_price", "total_price",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, sale := range batch {
			query = query.Values(
				sale.ID,
				sale.SaleCode,
				sale.ItemSequence,
				sale.StoreCode,
				sale.EmployeeCode,
				sale.ProductRefCode,
				sale.OriginCode,
				sale.OperationCode,
				sale.SaleDate.Format(time.DateOnly),
				sale.Quantity,
				sale.UnitPrice,
				sale.TotalPrice,
			)
		}

		query = query.Suffix("ON CONFLICT (sale_code, product_ref_code, item_sequence) DO NOTHING")

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

func (r *saleRepository) ListByPeriod(ctx context.Context, storeCodes []string, startDate, endDate time.Time) ([]*domain.SaleRecord, error) {
	builder := squirrel.
		Select(rawSaleFields).
		From(rawSalesTable).
		Where(squirrel.GtOrEq{"rs.sale_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"rs.sale_date": endDate.Format(time.DateOnly)}).
		OrderBy("rs.sale_date ASC", "rs.sale_code ASC", "rs.item_sequence ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(storeCodes) > 0 {
		builder = builder.Where(squirrel.Eq{"rs.store_code": storeCodes})
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

	sales := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) scanSale(rows *sql.Rows) (*domain.SaleRecord, error) {
	sale := &domain.SaleRecord{}

	err := rows.Scan(
		&sale.ID,
		&sale.SaleCode,
		&sale.ItemSequence,
		&sale.StoreCode,
		&sale.EmployeeCode,
		&sale.ProductRefCode,
		&sale.OriginCode,
		&sale.OperationCode,
		&sale.SaleDate,
		&sale.Quantity,
		&sale.UnitPrice,
		&sale.TotalPrice,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}
