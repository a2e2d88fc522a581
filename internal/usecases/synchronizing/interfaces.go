package synchronizing

import (
	"context"

	"github.com/vfg2006/sales-sync-api/internal/domain"
)

// Synchronizer executa as sincronizações com o legado. Cada chamada é uma execução completa:
// devolve as contagens ou falha sem gravar nada.
type Synchronizer interface {
	// SyncSales sincroniza itens de venda e produtos do período e recalcula os agregados
	SyncSales(ctx context.Context, period domain.Period) (*domain.SyncRunResult, error)

	// SyncExchanges sincroniza trocas, regravando as já existentes, e recalcula os agregados
	SyncExchanges(ctx context.Context, period domain.Period) (*domain.SyncRunResult, error)

	// SyncCollaborators sincroniza os funcionários das lojas conhecidas
	SyncCollaborators(ctx context.Context, period domain.Period) (*domain.SyncRunResult, error)

	// SyncStores sincroniza o cadastro de lojas; não depende de período
	SyncStores(ctx context.Context) (*domain.SyncRunResult, error)

	// Sync despacha para a sincronização do domínio informado
	Sync(ctx context.Context, syncDomain domain.SyncDomain, period domain.Period) (*domain.SyncRunResult, error)
}
