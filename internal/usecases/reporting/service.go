package reporting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-sync-api/infrastructure/repository"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-sync-api/pkg/log"
)

var (
	ErrStoreNotFound  = errors.New("loja não encontrada")
	ErrInvalidFilters = errors.New("filtros inválidos")
)

// Reporter expõe as leituras dos dados sincronizados e dos agregados
type Reporter interface {
	ListStores(ctx context.Context) ([]*domain.Store, error)
	DailyReport(ctx context.Context, filters domain.SalesReportFilters) ([]*domain.DailySalesAggregate, error)
	MonthlyReport(ctx context.Context, storeCode string, year int) ([]*domain.MonthlySalesAggregate, error)
	YearlyReport(ctx context.Context, filters domain.SalesReportFilters) ([]*domain.YearlySalesAggregate, error)
	ListExchanges(ctx context.Context, filters domain.ExchangeFilters) ([]*domain.ExchangeRecord, error)
	// VerifyConsistency compara as três camadas do ano; divergências são devolvidas, nunca corrigidas
	VerifyConsistency(ctx context.Context, year int) ([]*domain.ConsistencyMismatch, error)
}

type Service struct {
	storeRepo    repository.StoreRepository
	exchangeRepo repository.ExchangeRepository
	dailyRepo    repository.DailySalesRepository
	monthlyRepo  repository.MonthlySalesRepository
	yearlyRepo   repository.YearlySalesRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	exchangeRepo repository.ExchangeRepository,
	dailyRepo repository.DailySalesRepository,
	monthlyRepo repository.MonthlySalesRepository,
	yearlyRepo repository.YearlySalesRepository,
) Reporter {
	return &Service{
		storeRepo:    storeRepo,
		exchangeRepo: exchangeRepo,
		dailyRepo:    dailyRepo,
		monthlyRepo:  monthlyRepo,
		yearlyRepo:   yearlyRepo,
	}
}

func (s *Service) ListStores(ctx context.Context) ([]*domain.Store, error) {
	return s.storeRepo.List(ctx)
}

// storeIDs resolve o filtro de loja; código vazio significa todas as lojas
func (s *Service) storeIDs(ctx context.Context, storeCode string) ([]string, error) {
	if storeCode == "" {
		return nil, nil
	}

	store, err := s.storeRepo.GetByCode(ctx, storeCode)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar loja")
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}

	return []string{store.ID}, nil
}

func (s *Service) DailyReport(ctx context.Context, filters domain.SalesReportFilters) ([]*domain.DailySalesAggregate, error) {
	if filters.StartDate.IsZero() || filters.EndDate.IsZero() || filters.EndDate.Before(filters.StartDate) {
		return nil, ErrInvalidFilters
	}

	storeIDs, err := s.storeIDs(ctx, filters.StoreCode)
	if err != nil {
		return nil, err
	}

	return s.dailyRepo.ListByPeriod(ctx, storeIDs, filters.StartDate, filters.EndDate)
}

func (s *Service) MonthlyReport(ctx context.Context, storeCode string, year int) ([]*domain.MonthlySalesAggregate, error) {
	storeIDs, err := s.storeIDs(ctx, storeCode)
	if err != nil {
		return nil, err
	}

	return s.monthlyRepo.ListByYear(ctx, storeIDs, year)
}

func (s *Service) YearlyReport(ctx context.Context, filters domain.SalesReportFilters) ([]*domain.YearlySalesAggregate, error) {
	if filters.EndYear < filters.StartYear {
		return nil, ErrInvalidFilters
	}

	storeIDs, err := s.storeIDs(ctx, filters.StoreCode)
	if err != nil {
		return nil, err
	}

	return s.yearlyRepo.ListByYears(ctx, storeIDs, filters.StartYear, filters.EndYear)
}

func (s *Service) ListExchanges(ctx context.Context, filters domain.ExchangeFilters) ([]*domain.ExchangeRecord, error) {
	if !filters.StartDate.IsZero() && !filters.EndDate.IsZero() && filters.EndDate.Before(filters.StartDate) {
		return nil, ErrInvalidFilters
	}

	return s.exchangeRepo.List(ctx, filters)
}

func (s *Service) VerifyConsistency(ctx context.Context, year int) ([]*domain.ConsistencyMismatch, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar lojas")
	}

	storeIDs := domain.StoreIDs(stores)
	period := domain.YearPeriod(year)

	daily, err := s.dailyRepo.ListByPeriod(ctx, storeIDs, period.Start, period.End)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar agregados diários")
	}

	monthly, err := s.monthlyRepo.ListByYear(ctx, storeIDs, year)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar agregados mensais")
	}

	yearly, err := s.yearlyRepo.ListByYears(ctx, storeIDs, year, year)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar agregados anuais")
	}

	mismatches := aggregating.CheckConsistency(stores, year, daily, monthly, yearly)
	for _, mismatch := range mismatches {
		log.ForContext(ctx).WithFields(log.Fields{
			"store_code": mismatch.StoreCode,
			"year":       mismatch.Year,
			"daily":      mismatch.DailyTotal.String(),
			"monthly":    mismatch.MonthlyTotal.String(),
			"yearly":     mismatch.YearlyTotal.String(),
		}).Error("Agregados divergentes entre as camadas")
	}

	return mismatches, nil
}
