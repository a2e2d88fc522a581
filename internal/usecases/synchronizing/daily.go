package synchronizing

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/pkg/log"
	"github.com/vfg2006/sales-sync-api/pkg/utils"
)

type dailyKey struct {
	storeCode string
	date      string
}

// BuildDailyAggregates agrupa as vendas por loja e dia, somando cada categoria de origem.
// Vendas de lojas desconhecidas ou com origem sem categoria não entram em nenhum total.
func BuildDailyAggregates(
	stores []*domain.Store,
	sales []*domain.SaleRecord,
	categories map[string]string,
) ([]*domain.DailySalesAggregate, int, error) {
	storesByCode := make(map[string]*domain.Store, len(stores))
	for _, store := range stores {
		storesByCode[store.Code] = store
	}

	ignored := 0
	aggregates := make(map[dailyKey]*domain.DailySalesAggregate)
	for _, sale := range sales {
		store, ok := storesByCode[sale.StoreCode]
		if !ok {
			ignored++
			continue
		}

		category, ok := categories[sale.OriginCode]
		if !ok {
			ignored++
			continue
		}

		key := dailyKey{storeCode: sale.StoreCode, date: sale.SaleDate.Format("2006-01-02")}
		aggregate, ok := aggregates[key]
		if !ok {
			aggregate = &domain.DailySalesAggregate{
				StoreID:   store.ID,
				StoreCode: store.Code,
				StoreName: store.Name,
				Date:      domain.DateOnly(sale.SaleDate),
			}
			aggregates[key] = aggregate
		}

		switch category {
		case domain.OriginCategoryPDV:
			aggregate.PDV = aggregate.PDV.Add(sale.TotalPrice)
		case domain.OriginCategoryDANFE:
			aggregate.DANFE = aggregate.DANFE.Add(sale.TotalPrice)
		case domain.OriginCategoryExchange:
			aggregate.Exchange = aggregate.Exchange.Add(sale.TotalPrice)
		default:
			ignored++
		}
	}

	result := make([]*domain.DailySalesAggregate, 0, len(aggregates))
	for _, aggregate := range aggregates {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, ignored, errors.Wrap(err, "erro ao gerar id do agregado diário")
		}
		aggregate.ID = id
		aggregate.ComputeTotal()
		result = append(result, aggregate)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].StoreCode != result[j].StoreCode {
			return result[i].StoreCode < result[j].StoreCode
		}
		return result[i].Date.Before(result[j].Date)
	})

	return result, ignored, nil
}

// rebuildDaily relê as vendas gravadas do período, já dentro da transação da execução,
// e substitui os agregados diários das lojas processadas. O lock dos agregados vale até o
// commit, então vendas e trocas nunca reescrevem os mesmos dias ao mesmo tempo.
func (s *Service) rebuildDaily(ctx context.Context, f *filters, period domain.Period) error {
	if err := s.repos.DailySales.LockAggregates(ctx); err != nil {
		return errors.Wrap(err, "erro ao bloquear agregados")
	}

	sales, err := s.repos.Sales.ListByPeriod(ctx, domain.StoreCodes(f.stores), period.Start, period.End)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar vendas gravadas")
	}

	aggregates, ignored, err := BuildDailyAggregates(f.stores, sales, f.originCategories())
	if err != nil {
		return err
	}

	if ignored > 0 {
		log.ForContext(ctx).Warnf("%d vendas sem loja ou categoria de origem ficaram fora dos agregados diários", ignored)
	}

	if err := s.repos.DailySales.ReplacePeriod(ctx, domain.StoreIDs(f.stores), period.Start, period.End, aggregates); err != nil {
		return errors.Wrap(err, "erro ao gravar agregados diários")
	}

	return nil
}
