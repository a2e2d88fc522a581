package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

//go:embed sql/*.sql
var scripts embed.FS

const createVersionsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER     PRIMARY KEY,
    name       VARCHAR(255) NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Script é um arquivo NNN_nome.sql
type Script struct {
	Version int
	Name    string
	Body    string
}

// Scripts lista os scripts embutidos em ordem de versão
func Scripts() ([]Script, error) {
	return loadScripts(scripts, "sql")
}

func loadScripts(fsys fs.FS, dir string) ([]Script, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar scripts de migração")
	}

	result := make([]Script, 0, len(entries))
	seen := make(map[int]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}

		version, err := parseVersion(entry.Name())
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[version]; ok {
			return nil, fmt.Errorf("versão %d duplicada em %s e %s", version, previous, entry.Name())
		}
		seen[version] = entry.Name()

		body, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler %s", entry.Name())
		}

		result = append(result, Script{Version: version, Name: entry.Name(), Body: string(body)})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})

	return result, nil
}

func parseVersion(name string) (int, error) {
	prefix, _, found := strings.Cut(name, "_")
	if !found {
		return 0, fmt.Errorf("nome de script fora do padrão NNN_nome.sql: %s", name)
	}

	version, err := strconv.Atoi(prefix)
	if err != nil || version <= 0 {
		return 0, fmt.Errorf("versão inválida no script %s", name)
	}

	return version, nil
}

// Apply executa os scripts ainda não aplicados, cada um na sua transação
func Apply(ctx context.Context, conn *postgres.Connection) (int, error) {
	if _, err := conn.ExecContext(ctx, createVersionsTable); err != nil {
		return 0, errors.Wrap(err, "erro ao criar tabela de versões")
	}

	all, err := Scripts()
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, script := range all {
		done, err := isApplied(ctx, conn, script.Version)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}

		err = conn.RunInTransaction(ctx, func(ctx context.Context) error {
			if _, err := conn.Querier(ctx).ExecContext(ctx, script.Body); err != nil {
				return errors.Wrapf(err, "erro ao aplicar %s", script.Name)
			}

			query, args, err := squirrel.
				Insert("schema_migrations").
				Columns("version", "name").
				Values(script.Version, script.Name).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			_, err = conn.Querier(ctx).ExecContext(ctx, query, args...)
			return err
		})
		if postgres.IsUniqueViolation(err) {
			logrus.WithField("script", script.Name).Info("Script aplicado por outro processo, ignorando")
			continue
		}
		if err != nil {
			return applied, err
		}

		logrus.WithField("script", script.Name).Info("Script de migração aplicado")
		applied++
	}

	return applied, nil
}

func isApplied(ctx context.Context, conn *postgres.Connection, version int) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, errors.Wrap(err, "erro ao consultar versões aplicadas")
	}

	return count > 0, nil
}

// Seed é uma linha inicial de uma tabela de referência
type Seed struct {
	Table string
	Code  domain.ReferenceCode
}

// DefaultSeeds são os códigos iniciais das tabelas de referência.
// Códigos diferentes no legado devem ser cadastrados direto nas tabelas.
func DefaultSeeds() []Seed {
	return []Seed{
		{Table: "origin_codes", Code: domain.ReferenceCode{Code: "1", Category: domain.OriginCategoryPDV, Description: "Venda no PDV"}},
		{Table: "origin_codes", Code: domain.ReferenceCode{Code: "2", Category: domain.OriginCategoryDANFE, Description: "Venda com DANFE"}},
		{Table: "origin_codes", Code: domain.ReferenceCode{Code: "3", Category: domain.OriginCategoryExchange, Description: "Troca"}},
		{Table: "operation_codes", Code: domain.ReferenceCode{Code: "1", Category: domain.OperationCategorySell, Description: "Venda"}},
		{Table: "operation_codes", Code: domain.ReferenceCode{Code: "2", Category: domain.OperationCategoryExchange, Description: "Troca"}},
	}
}

// ApplySeeds insere os códigos iniciais sem sobrescrever cadastros existentes.
// Cada insert roda fora de transação para que uma chave repetida não aborte os demais.
func ApplySeeds(ctx context.Context, conn *postgres.Connection, seeds []Seed) (inserted, existing int, err error) {
	for _, seed := range seeds {
		query, args, err := squirrel.
			Insert(seed.Table).
			Columns("code", "category", "description").
			Values(seed.Code.Code, seed.Code.Category, seed.Code.Description).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return inserted, existing, err
		}

		_, err = conn.ExecContext(ctx, query, args...)
		if postgres.IsUniqueViolation(err) {
			existing++
			continue
		}
		if err != nil {
			return inserted, existing, errors.Wrapf(err, "erro ao inserir código %s em %s", seed.Code.Code, seed.Table)
		}
		inserted++
	}

	return inserted, existing, nil
}
