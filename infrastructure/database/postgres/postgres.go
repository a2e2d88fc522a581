package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-sync-api/internal/config"
)

type Conn interface {
	Querier(context.Context) Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(context.Context) error) error
}

// Transactor abre uma unidade de trabalho; repositórios chamados com o ctx recebido usam a mesma transação
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Querier retorna a transação presente no contexto ou, na ausência dela, o pool de conexões
func (c *Connection) Querier(ctx context.Context) Queryer {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return c.DB
}

// RunInTransaction executa fn dentro de uma transação.
// Chamadas aninhadas reaproveitam a transação já aberta. Quando fn falha, o erro dela é o
// devolvido mesmo que o rollback também falhe.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).WithField("cause", err.Error()).Error("Erro ao desfazer a transação")
		}
		return err
	}

	return tx.Commit()
}
