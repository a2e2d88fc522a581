package aggregating

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-sync-api/infrastructure/repository"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/pkg/log"
	"github.com/vfg2006/sales-sync-api/pkg/utils"
)

// Maintainer mantém os agregados mensais e anuais coerentes com os diários
type Maintainer interface {
	// Rollup recalcula e substitui os meses e anos tocados pelo período, nessa ordem
	Rollup(ctx context.Context, stores []*domain.Store, period domain.Period) error
}

type Service struct {
	dailyRepo   repository.DailySalesRepository
	monthlyRepo repository.MonthlySalesRepository
	yearlyRepo  repository.YearlySalesRepository
}

func NewService(
	dailyRepo repository.DailySalesRepository,
	monthlyRepo repository.MonthlySalesRepository,
	yearlyRepo repository.YearlySalesRepository,
) Maintainer {
	return &Service{
		dailyRepo:   dailyRepo,
		monthlyRepo: monthlyRepo,
		yearlyRepo:  yearlyRepo,
	}
}

func (s *Service) Rollup(ctx context.Context, stores []*domain.Store, period domain.Period) error {
	if len(stores) == 0 {
		return nil
	}

	logger := log.ForContext(ctx)

	// o mensal precisa ler os diários já regravados nesta execução antes do anual ler o mensal
	months, err := s.rollupMonths(ctx, stores, period)
	if err != nil {
		return err
	}

	years, err := s.rollupYears(ctx, stores, period)
	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"stores": len(stores),
		"months": months,
		"years":  years,
		"start":  period.Start.Format(time.DateOnly),
		"end":    period.End.Format(time.DateOnly),
	}).Info("Agregados mensais e anuais recalculados")

	return nil
}

func (s *Service) rollupMonths(ctx context.Context, stores []*domain.Store, period domain.Period) (int, error) {
	months := period.Months()

	first, err := domain.MonthPeriod(months[0])
	if err != nil {
		return 0, errors.Wrap(err, "mês inicial inválido")
	}
	last, err := domain.MonthPeriod(months[len(months)-1])
	if err != nil {
		return 0, errors.Wrap(err, "mês final inválido")
	}

	daily, err := s.dailyRepo.ListByPeriod(ctx, domain.StoreIDs(stores), first.Start, last.End)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar agregados diários")
	}

	aggregates, err := BuildMonthly(stores, months, daily)
	if err != nil {
		return 0, err
	}

	if err := s.monthlyRepo.Upsert(ctx, aggregates); err != nil {
		return 0, errors.Wrap(err, "erro ao gravar agregados mensais")
	}

	return len(months), nil
}

func (s *Service) rollupYears(ctx context.Context, stores []*domain.Store, period domain.Period) (int, error) {
	years := period.Years()
	storeIDs := domain.StoreIDs(stores)

	monthly := make([]*domain.MonthlySalesAggregate, 0)
	for _, year := range years {
		rows, err := s.monthlyRepo.ListByYear(ctx, storeIDs, year)
		if err != nil {
			return 0, errors.Wrapf(err, "erro ao buscar agregados mensais de %d", year)
		}
		monthly = append(monthly, rows...)
	}

	aggregates, err := BuildYearly(stores, years, monthly)
	if err != nil {
		return 0, err
	}

	if err := s.yearlyRepo.Upsert(ctx, aggregates); err != nil {
		return 0, errors.Wrap(err, "erro ao gravar agregados anuais")
	}

	return len(years), nil
}

type monthKey struct {
	storeID   string
	yearMonth string
}

type yearKey struct {
	storeID string
	year    int
}

// BuildMonthly soma os totais diários por loja e mês. Todo par loja/mês recebe uma linha,
// inclusive com total zero, para que um mês esvaziado substitua o valor antigo.
func BuildMonthly(
	stores []*domain.Store,
	months []string,
	daily []*domain.DailySalesAggregate,
) ([]*domain.MonthlySalesAggregate, error) {
	totals := make(map[monthKey]decimal.Decimal)
	for _, row := range daily {
		key := monthKey{storeID: row.StoreID, yearMonth: row.Date.Format(domain.YearMonthLayout)}
		totals[key] = totals[key].Add(row.Total)
	}

	aggregates := make([]*domain.MonthlySalesAggregate, 0, len(stores)*len(months))
	for _, store := range stores {
		for _, month := range months {
			id, err := utils.GenerateID()
			if err != nil {
				return nil, errors.Wrap(err, "erro ao gerar id do agregado mensal")
			}

			aggregates = append(aggregates, &domain.MonthlySalesAggregate{
				ID:        id,
				StoreID:   store.ID,
				StoreCode: store.Code,
				StoreName: store.Name,
				YearMonth: month,
				Total:     totals[monthKey{storeID: store.ID, yearMonth: month}],
			})
		}
	}

	return aggregates, nil
}

// BuildYearly soma os totais mensais por loja e ano
func BuildYearly(
	stores []*domain.Store,
	years []int,
	monthly []*domain.MonthlySalesAggregate,
) ([]*domain.YearlySalesAggregate, error) {
	totals := make(map[yearKey]decimal.Decimal)
	for _, row := range monthly {
		period, err := domain.MonthPeriod(row.YearMonth)
		if err != nil {
			logrus.WithField("year_month", row.YearMonth).Warn("Agregado mensal com chave inválida ignorado")
			continue
		}
		key := yearKey{storeID: row.StoreID, year: period.Start.Year()}
		totals[key] = totals[key].Add(row.Total)
	}

	aggregates := make([]*domain.YearlySalesAggregate, 0, len(stores)*len(years))
	for _, store := range stores {
		for _, year := range years {
			id, err := utils.GenerateID()
			if err != nil {
				return nil, errors.Wrap(err, "erro ao gerar id do agregado anual")
			}

			aggregates = append(aggregates, &domain.YearlySalesAggregate{
				ID:        id,
				StoreID:   store.ID,
				StoreCode: store.Code,
				StoreName: store.Name,
				Year:      year,
				Total:     totals[yearKey{storeID: store.ID, year: year}],
			})
		}
	}

	return aggregates, nil
}
