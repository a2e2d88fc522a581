package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

const (
	storesTable = "stores s"
	storeFields = "s.id, s.code, s.name, s.active, s.created_at, s.updated_at"
)

type StoreRepository interface {
	List(ctx context.Context) ([]*domain.Store, error)
	GetByCode(ctx context.Context, code string) (*domain.Store, error)
	ListCodesMap(ctx context.Context) (map[string]struct{}, error)
	Upsert(ctx context.Context, stores []*domain.Store) (inserted int, updated int, err error)
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

// List retorna todas as lojas ativas ordenadas pelo código
func (r *storeRepository) List(ctx context.Context) ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeFields).
		From(storesTable).
		Where(squirrel.Eq{"s.active": true}).
		OrderBy("s.code ASC").
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

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(&store.ID, &store.Code, &store.Name, &store.Active, &store.CreatedAt, &store.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) GetByCode(ctx context.Context, code string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeFields).
		From(storesTable).
		Where(squirrel.Eq{"s.code": code}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store := &domain.Store{}
	err = r.conn.Querier(ctx).QueryRowContext(ctx, query, args...).
		Scan(&store.ID, &store.Code, &store.Name, &store.Active, &store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return store, nil
}

// ListCodesMap retorna os códigos de todas as lojas, ativas ou não
func (r *storeRepository) ListCodesMap(ctx context.Context) (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("s.code").
		From(storesTable).
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

	codes := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("erro ao escanear código da loja: %w", err)
		}
		codes[code] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return codes, nil
}

func (r *storeRepository) Upsert(ctx context.Context, stores []*domain.Store) (int, int, error) {
	if len(stores) == 0 {
		return 0, 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert("stores").
		Columns("id", "code", "name", "active").
		PlaceholderFormat(squirrel.Dollar)

	for _, store := range stores {
		query = query.Values(store.ID, store.Code, store.Name, store.Active)
	}

	query = query.Suffix(`
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			active = EXCLUDED.active,
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return countUpserted(ctx, r.conn.Querier(ctx), sqlQuery, args)
}
