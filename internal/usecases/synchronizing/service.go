package synchronizing

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy"
	"github.com/vfg2006/sales-sync-api/infrastructure/repository"
	"github.com/vfg2006/sales-sync-api/internal/config"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-sync-api/pkg/log"
)

const defaultMaxPeriodDays = 92

// Repositories agrupa os repositórios usados pelas execuções
type Repositories struct {
	Stores        repository.StoreRepository
	References    repository.ReferenceRepository
	Sales         repository.SaleRepository
	Products      repository.ProductRepository
	Exchanges     repository.ExchangeRepository
	Collaborators repository.CollaboratorRepository
	DailySales    repository.DailySalesRepository
}

type Service struct {
	cfg        *config.Config
	legacy     legacy.LegacyIntegrator
	transactor postgres.Transactor
	repos      Repositories
	maintainer aggregating.Maintainer
	guard      *runGuard
	now        func() time.Time
}

func NewService(
	cfg *config.Config,
	integrator legacy.LegacyIntegrator,
	transactor postgres.Transactor,
	repos Repositories,
	maintainer aggregating.Maintainer,
) Synchronizer {
	return &Service{
		cfg:        cfg,
		legacy:     integrator,
		transactor: transactor,
		repos:      repos,
		maintainer: maintainer,
		guard:      newRunGuard(),
		now:        time.Now,
	}
}

func (s *Service) Sync(ctx context.Context, syncDomain domain.SyncDomain, period domain.Period) (*domain.SyncRunResult, error) {
	switch syncDomain {
	case domain.SyncDomainSales:
		return s.SyncSales(ctx, period)
	case domain.SyncDomainExchanges:
		return s.SyncExchanges(ctx, period)
	case domain.SyncDomainCollaborators:
		return s.SyncCollaborators(ctx, period)
	case domain.SyncDomainStores:
		return s.SyncStores(ctx)
	}
	return nil, NewSyncError(ErrUnknownDomain, CodeSyncFailed, syncDomain, string(syncDomain))
}

// begin valida o período, reserva o domínio e prepara o contexto da execução.
// O release devolvido precisa ser chamado ao fim da execução.
func (s *Service) begin(ctx context.Context, syncDomain domain.SyncDomain, period *domain.Period) (context.Context, func(), error) {
	if period != nil {
		*period = domain.NewPeriod(period.Start, period.End)
		if err := s.validatePeriod(*period); err != nil {
			return ctx, nil, NewSyncError(err, CodeInvalidPeriod, syncDomain, "")
		}
	}

	if !s.guard.acquire(syncDomain) {
		return ctx, nil, NewSyncError(ErrSyncAlreadyRunning, CodeAlreadyRunning, syncDomain, string(syncDomain))
	}

	if log.GetCorrelationID(ctx) == "" {
		ctx, _ = log.WithCorrelationID(ctx)
	}

	return ctx, func() { s.guard.release(syncDomain) }, nil
}

func (s *Service) validatePeriod(period domain.Period) error {
	if period.Start.IsZero() || period.End.IsZero() || period.End.Before(period.Start) {
		return ErrInvalidPeriod
	}

	maxDays := s.cfg.Sync.MaxPeriodDays
	if maxDays <= 0 {
		maxDays = defaultMaxPeriodDays
	}
	if period.Days() > maxDays {
		return ErrPeriodTooLong
	}

	return nil
}

func (s *Service) newResult(syncDomain domain.SyncDomain, period domain.Period, stores int) *domain.SyncRunResult {
	return &domain.SyncRunResult{
		Domain:          syncDomain,
		PeriodStart:     period.Start,
		PeriodEnd:       period.End,
		StoresProcessed: stores,
	}
}

// runFailed embrulha falhas das etapas transacionais; nada da execução foi gravado
func runFailed(err error, sentinel error, syncDomain domain.SyncDomain) error {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return err
	}
	return &SyncError{
		Err:     sentinel,
		Code:    CodeSyncFailed,
		Domain:  syncDomain,
		Details: err.Error(),
	}
}

// runGuard impede duas execuções simultâneas do mesmo domínio no processo.
// Domínios diferentes podem rodar ao mesmo tempo.
type runGuard struct {
	mu      sync.Mutex
	running map[domain.SyncDomain]bool
}

func newRunGuard() *runGuard {
	return &runGuard{running: make(map[domain.SyncDomain]bool)}
}

func (g *runGuard) acquire(syncDomain domain.SyncDomain) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running[syncDomain] {
		return false
	}
	g.running[syncDomain] = true
	return true
}

func (g *runGuard) release(syncDomain domain.SyncDomain) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.running, syncDomain)
}
