package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

const (
	originCodesTable    = "origin_codes"
	operationCodesTable = "operation_codes"
)

// ReferenceRepository lê as tabelas de códigos do legado agrupados por categoria
type ReferenceRepository interface {
	ListOriginCodes(ctx context.Context, categories ...string) ([]*domain.ReferenceCode, error)
	ListOperationCodes(ctx context.Context, categories ...string) ([]*domain.ReferenceCode, error)
}

type referenceRepository struct {
	conn *postgres.Connection
}

func NewReferenceRepository(conn *postgres.Connection) ReferenceRepository {
	return &referenceRepository{
		conn: conn,
	}
}

func (r *referenceRepository) ListOriginCodes(ctx context.Context, categories ...string) ([]*domain.ReferenceCode, error) {
	return r.listCodes(ctx, originCodesTable, categories)
}

func (r *referenceRepository) ListOperationCodes(ctx context.Context, categories ...string) ([]*domain.ReferenceCode, error) {
	return r.listCodes(ctx, operationCodesTable, categories)
}

func (r *referenceRepository) listCodes(ctx context.Context, table string, categories []string) ([]*domain.ReferenceCode, error) {
	builder := squirrel.
		Select("code, category, description").
		From(table).
		OrderBy("category ASC", "code ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(categories) > 0 {
		builder = builder.Where(squirrel.Eq{"category": categories})
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

	codes := make([]*domain.ReferenceCode, 0)
	for rows.Next() {
		code := &domain.ReferenceCode{}
		if err := rows.Scan(&code.Code, &code.Category, &code.Description); err != nil {
			return nil, fmt.Errorf("erro ao escanear código de %s: %w", table, err)
		}
		code.Normalize()
		codes = append(codes, code)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return codes, nil
}
