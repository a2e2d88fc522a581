package aggregating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

// CheckConsistency compara, por loja, a soma dos diários do ano, a soma dos mensais e o anual.
// Divergências são apenas reportadas; nada é corrigido aqui.
func CheckConsistency(
	stores []*domain.Store,
	year int,
	daily []*domain.DailySalesAggregate,
	monthly []*domain.MonthlySalesAggregate,
	yearly []*domain.YearlySalesAggregate,
) []*domain.ConsistencyMismatch {
	dailyTotals := make(map[string]decimal.Decimal)
	for _, row := range daily {
		if row.Date.Year() == year {
			dailyTotals[row.StoreID] = dailyTotals[row.StoreID].Add(row.Total)
		}
	}

	monthlyTotals := make(map[string]decimal.Decimal)
	for _, row := range monthly {
		monthlyTotals[row.StoreID] = monthlyTotals[row.StoreID].Add(row.Total)
	}

	yearlyTotals := make(map[string]decimal.Decimal)
	for _, row := range yearly {
		if row.Year == year {
			yearlyTotals[row.StoreID] = yearlyTotals[row.StoreID].Add(row.Total)
		}
	}

	mismatches := make([]*domain.ConsistencyMismatch, 0)
	for _, store := range stores {
		d, m, y := dailyTotals[store.ID], monthlyTotals[store.ID], yearlyTotals[store.ID]
		if d.Equal(m) && m.Equal(y) {
			continue
		}

		mismatches = append(mismatches, &domain.ConsistencyMismatch{
			StoreID:      store.ID,
			StoreCode:    store.Code,
			StoreName:    store.Name,
			Year:         year,
			DailyTotal:   d,
			MonthlyTotal: m,
			YearlyTotal:  y,
		})
	}

	return mismatches
}
