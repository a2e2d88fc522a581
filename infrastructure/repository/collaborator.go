package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

const collaboratorsTable = "collaborators c"

type CollaboratorRepository interface {
	ExistingKeys(ctx context.Context, keys []domain.CollaboratorKey) (map[domain.CollaboratorKey]struct{}, error)
	Upsert(ctx context.Context, collaborators []*domain.Collaborator) (inserted int, updated int, err error)
}

type collaboratorRepository struct {
	conn *postgres.Connection
}

func NewCollaboratorRepository(conn *postgres.Connection) CollaboratorRepository {
	return &collaboratorRepository{
		conn: conn,
	}
}

func (r *collaboratorRepository) ExistingKeys(ctx context.Context, keys []domain.CollaboratorKey) (map[domain.CollaboratorKey]struct{}, error) {
	existing := make(map[domain.CollaboratorKey]struct{})
	if len(keys) == 0 {
		return existing, nil
	}

	requested := make(map[domain.CollaboratorKey]struct{}, len(keys))
	employeeCodes := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := requested[key]; !ok {
			employeeCodes = append(employeeCodes, key.EmployeeCode)
		}
		requested[key] = struct{}{}
	}

	query, args, err := squirrel.
		Select("c.employee_code, c.store_code").
		From(collaboratorsTable).
		Where(squirrel.Expr("c.employee_code = ANY(?)", pq.Array(employeeCodes))).
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
		var key domain.CollaboratorKey
		if err := rows.Scan(&key.EmployeeCode, &key.StoreCode); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave de funcionário: %w", err)
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

func (r *collaboratorRepository) Upsert(ctx context.Context, collaborators []*domain.Collaborator) (int, int, error) {
	var inserted, updated int

	for _, batch := range chunk(collaborators, batchSize) {
		query := squirrel.StatementBuilder.
			Insert("collaborators").
			Columns("id", "employee_code", "store_code", "name", "job_position_code", "document", "active", "admission_date").
			PlaceholderFormat(squirrel.Dollar)

		for _, collaborator := range batch {
			var admissionDate interface{}
			if collaborator.AdmissionDate != nil {
				admissionDate = collaborator.AdmissionDate.Format(time.DateOnly)
			}

			query = query.Values(
				collaborator.ID,
				collaborator.EmployeeCode,
				collaborator.StoreCode,
				collaborator.Name,
				collaborator.JobPositionCode,
				collaborator.Document,
				collaborator.Active,
				admissionDate,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (employee_code, store_code) DO UPDATE SET
				name = EXCLUDED.name,
				job_position_code = EXCLUDED.job_position_code,
				document = EXCLUDED.document,
				active = EXCLUDED.active,
				admission_date = EXCLUDED.admission_date,
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
