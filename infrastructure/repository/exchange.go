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
	rawExchangesTable = "raw_exchanges re"
	rawExchangeFields = "re.id, re.document_code, re.store_code, re.operation_code, re.origin_code, re.employee_code, " +
		"re.document_number, re.nfe_key, re.issue_date, re.observation, re.new_sale_number, re.new_sale_nfe_key, " +
		"re.created_at, re.updated_at"
)

type ExchangeRepository interface {
	ExistingKeys(ctx context.Context, keys []domain.ExchangeKey) (map[domain.ExchangeKey]struct{}, error)
	Upsert(ctx context.Context, exchanges []*domain.ExchangeRecord) (inserted int, updated int, err error)
	List(ctx context.Context, filters domain.ExchangeFilters) ([]*domain.ExchangeRecord, error)
}

type exchangeRepository struct {
	conn *postgres.Connection
}

func NewExchangeRepository(conn *postgres.Connection) ExchangeRepository {
	return &exchangeRepository{
		conn: conn,
	}
}

func (r *exchangeRepository) ExistingKeys(ctx context.Context, keys []domain.ExchangeKey) (map[domain.ExchangeKey]struct{}, error) {
	existing := make(map[domain.ExchangeKey]struct{})
	if len(keys) == 0 {
		return existing, nil
	}

	requested := make(map[domain.ExchangeKey]struct{}, len(keys))
	documentCodes := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := requested[key]; !ok {
			documentCodes = append(documentCodes, key.DocumentCode)
		}
		requested[key] = struct{}{}
	}

	query, args, err := squirrel.
		Select("re.document_code, re.store_code").
		From(rawExchangesTable).
		Where(squirrel.Expr("re.document_code = ANY(?)", pq.Array(documentCodes))).
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
		var key domain.ExchangeKey
		if err := rows.Scan(&key.DocumentCode, &key.StoreCode); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave de troca: %w", err)
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

// Upsert sobrescreve todos os campos das trocas existentes. A chave natural nunca muda.
// xmax = 0 identifica as linhas recém-inseridas no RETURNING.
func (r *exchangeRepository) Upsert(ctx context.Context, exchanges []*domain.ExchangeRecord) (int, int, error) {
	var inserted, updated int

	for _, batch := range chunk(exchanges, batchSize) {
		query := squirrel.StatementBuilder.
			Insert("raw_exchanges").
			Columns(
				"id", "document_code", "store_code", "operation_code", "origin_code", "employee_code",
				"document_number", "nfe_key", "issue_date", "observation", "new_sale_number", "new_sale_nfe_key",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, exchange := range batch {
			query = query.Values(
				exchange.ID,
				exchange.DocumentCode,
				exchange.StoreCode,
				exchange.OperationCode,
				exchange.OriginCode,
				exchange.EmployeeCode,
				exchange.DocumentNumber,
				nullString(exchange.NfeKey),
				exchange.IssueDate.Format(time.DateOnly),
				exchange.Observation,
				nullString(exchange.NewSaleNumber),
				nullString(exchange.NewSaleNfeKey),
			)
		}

		query = query.Suffix(`
			ON CONFLICT (document_code, store_code) DO UPDATE SET
				operation_code = EXCLUDED.operation_code,
				origin_code = EXCLUDED.origin_code,
				employee_code = EXCLUDED.employee_code,
				document_number = EXCLUDED.document_number,
				nfe_key = EXCLUDED.nfe_key,
				issue_date = EXCLUDED.issue_date,
				observation = EXCLUDED.observation,
				new_sale_number = EXCLUDED.new_sale_number,
				new_sale_nfe_key = EXCLUDED.new_sale_nfe_key,
				updated_at = NOW()
			RETURNING (xmax = 0) AS inserted
		`)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return inserted, updated, fmt.Errorf("erro ao construir a query: %w", err)
		}

		batchInserted, batchUpdated, err := countUpserted(ctx, r.conn.Querier(ctx), sqlQuery, args)
		if err != nil {
			return inserted, updated, err
		}
		inserted += batchInserted
		updated += batchUpdated
	}

	return inserted, updated, nil
}

func (r *exchangeRepository) List(ctx context.Context, filters domain.ExchangeFilters) ([]*domain.ExchangeRecord, error) {
	builder := squirrel.
		Select(rawExchangeFields).
		From(rawExchangesTable).
		OrderBy("re.issue_date ASC", "re.document_code ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.StoreCode != "" {
		builder = builder.Where(squirrel.Eq{"re.store_code": filters.StoreCode})
	}
	if !filters.StartDate.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{"re.issue_date": filters.StartDate.Format(time.DateOnly)})
	}
	if !filters.EndDate.IsZero() {
		builder = builder.Where(squirrel.LtOrEq{"re.issue_date": filters.EndDate.Format(time.DateOnly)})
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

	exchanges := make([]*domain.ExchangeRecord, 0)
	for rows.Next() {
		exchange, err := r.scanExchange(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear troca: %w", err)
		}
		exchanges = append(exchanges, exchange)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return exchanges, nil
}

func (r *exchangeRepository) scanExchange(rows *sql.Rows) (*domain.ExchangeRecord, error) {
	exchange := &domain.ExchangeRecord{}
	var nfeKey, newSaleNumber, newSaleNfeKey sql.NullString

	err := rows.Scan(
		&exchange.ID,
		&exchange.DocumentCode,
		&exchange.StoreCode,
		&exchange.OperationCode,
		&exchange.OriginCode,
		&exchange.EmployeeCode,
		&exchange.DocumentNumber,
		&nfeKey,
		&exchange.IssueDate,
		&exchange.Observation,
		&newSaleNumber,
		&newSaleNfeKey,
		&exchange.CreatedAt,
		&exchange.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	exchange.NfeKey = stringFromNull(nfeKey)
	exchange.NewSaleNumber = stringFromNull(newSaleNumber)
	exchange.NewSaleNfeKey = stringFromNull(newSaleNfeKey)

	return exchange, nil
}

// countUpserted executa um INSERT ... RETURNING (xmax = 0) e separa inseridos de atualizados
func countUpserted(ctx context.Context, q postgres.Queryer, query string, args []interface{}) (int, int, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, 0, execError(err)
	}
	defer rows.Close()

	var inserted, updated int
	for rows.Next() {
		var wasInserted bool
		if err := rows.Scan(&wasInserted); err != nil {
			return 0, 0, fmt.Errorf("erro ao escanear retorno do upsert: %w", err)
		}
		if wasInserted {
			inserted++
		} else {
			updated++
		}
	}

	if err = rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return inserted, updated, nil
}

func stringFromNull(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}
