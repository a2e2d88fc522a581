package synchronizing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/internal/config"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/internal/usecases/aggregating"
)

// memDB simula o banco para os cenários de ponta a ponta.
// Atualizações sempre trocam o ponteiro gravado, então a cópia rasa dos mapas basta para o rollback.
type memDB struct {
	mu            sync.Mutex
	stores        map[string]*domain.Store
	origins       []*domain.ReferenceCode
	operations    []*domain.ReferenceCode
	sales         map[domain.SaleKey]*domain.SaleRecord
	products      map[string]*domain.Product
	exchanges     map[domain.ExchangeKey]*domain.ExchangeRecord
	collaborators map[domain.CollaboratorKey]*domain.Collaborator
	daily         map[string]*domain.DailySalesAggregate
	monthly       map[string]*domain.MonthlySalesAggregate
	yearly        map[string]*domain.YearlySalesAggregate
	commits       int
	rollbacks     int
	locks         int

	// gravados por outro escritor entre a consulta de existência e o INSERT
	racingSales    []*domain.SaleRecord
	racingProducts []*domain.Product
}

func newMemDB() *memDB {
	return &memDB{
		stores:        make(map[string]*domain.Store),
		sales:         make(map[domain.SaleKey]*domain.SaleRecord),
		products:      make(map[string]*domain.Product),
		exchanges:     make(map[domain.ExchangeKey]*domain.ExchangeRecord),
		collaborators: make(map[domain.CollaboratorKey]*domain.Collaborator),
		daily:         make(map[string]*domain.DailySalesAggregate),
		monthly:       make(map[string]*domain.MonthlySalesAggregate),
		yearly:        make(map[string]*domain.YearlySalesAggregate),
		origins: []*domain.ReferenceCode{
			{Code: "1", Category: domain.OriginCategoryPDV},
			{Code: "2", Category: domain.OriginCategoryDANFE},
			{Code: "3", Category: domain.OriginCategoryExchange},
		},
		operations: []*domain.ReferenceCode{
			{Code: "10", Category: domain.OperationCategorySell},
			{Code: "20", Category: domain.OperationCategoryExchange},
		},
	}
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

type snapshot struct {
	stores        map[string]*domain.Store
	sales         map[domain.SaleKey]*domain.SaleRecord
	products      map[string]*domain.Product
	exchanges     map[domain.ExchangeKey]*domain.ExchangeRecord
	collaborators map[domain.CollaboratorKey]*domain.Collaborator
	daily         map[string]*domain.DailySalesAggregate
	monthly       map[string]*domain.MonthlySalesAggregate
	yearly        map[string]*domain.YearlySalesAggregate
}

func (db *memDB) RunInTransaction(ctx context.Context, fn func(context.Context) error) error {
	db.mu.Lock()
	snap := snapshot{
		stores:        cloneMap(db.stores),
		sales:         cloneMap(db.sales),
		products:      cloneMap(db.products),
		exchanges:     cloneMap(db.exchanges),
		collaborators: cloneMap(db.collaborators),
		daily:         cloneMap(db.daily),
		monthly:       cloneMap(db.monthly),
		yearly:        cloneMap(db.yearly),
	}
	db.mu.Unlock()

	if err := fn(ctx); err != nil {
		db.mu.Lock()
		db.stores, db.sales, db.products = snap.stores, snap.sales, snap.products
		db.exchanges, db.collaborators = snap.exchanges, snap.collaborators
		db.daily, db.monthly, db.yearly = snap.daily, snap.monthly, snap.yearly
		db.rollbacks++
		db.mu.Unlock()
		return err
	}

	db.mu.Lock()
	db.commits++
	db.mu.Unlock()
	return nil
}

func (db *memDB) addStore(id, code, name string) *domain.Store {
	store := &domain.Store{ID: id, Code: code, Name: name, Active: true}
	db.stores[code] = store
	return store
}

func (db *memDB) repositories() Repositories {
	return Repositories{
		Stores:        memStores{db},
		References:    memReferences{db},
		Sales:         memSales{db},
		Products:      memProducts{db},
		Exchanges:     memExchanges{db},
		Collaborators: memCollaborators{db},
		DailySales:    memDaily{db},
	}
}

func (db *memDB) maintainer() aggregating.Maintainer {
	return aggregating.NewService(memDaily{db}, memMonthly{db}, memYearly{db})
}

type memStores struct{ db *memDB }

func (r memStores) List(ctx context.Context) ([]*domain.Store, error) {
	stores := make([]*domain.Store, 0)
	for _, store := range r.db.stores {
		if store.Active {
			stores = append(stores, store)
		}
	}
	return stores, nil
}

func (r memStores) GetByCode(ctx context.Context, code string) (*domain.Store, error) {
	return r.db.stores[code], nil
}

func (r memStores) ListCodesMap(ctx context.Context) (map[string]struct{}, error) {
	codes := make(map[string]struct{})
	for code := range r.db.stores {
		codes[code] = struct{}{}
	}
	return codes, nil
}

func (r memStores) Upsert(ctx context.Context, stores []*domain.Store) (int, int, error) {
	var inserted, updated int
	for _, store := range stores {
		stored := *store
		if current, ok := r.db.stores[store.Code]; ok {
			stored.ID = current.ID
			updated++
		} else {
			inserted++
		}
		r.db.stores[store.Code] = &stored
	}
	return inserted, updated, nil
}

type memReferences struct{ db *memDB }

func filterCategories(refs []*domain.ReferenceCode, categories []string) []*domain.ReferenceCode {
	result := make([]*domain.ReferenceCode, 0)
	for _, ref := range refs {
		for _, category := range categories {
			if ref.Category == category {
				result = append(result, ref)
			}
		}
	}
	return result
}

func (r memReferences) ListOriginCodes(ctx context.Context, categories ...string) ([]*domain.ReferenceCode, error) {
	return filterCategories(r.db.origins, categories), nil
}

func (r memReferences) ListOperationCodes(ctx context.Context, categories ...string) ([]*domain.ReferenceCode, error) {
	return filterCategories(r.db.operations, categories), nil
}

type memSales struct{ db *memDB }

func (r memSales) ExistingKeys(ctx context.Context, keys []domain.SaleKey) (map[domain.SaleKey]struct{}, error) {
	existing := make(map[domain.SaleKey]struct{})
	for _, key := range keys {
		if _, ok := r.db.sales[key]; ok {
			existing[key] = struct{}{}
		}
	}
	return existing, nil
}

func (r memSales) InsertBatch(ctx context.Context, sales []*domain.SaleRecord) (int64, error) {
	for _, sale := range r.db.racingSales {
		r.db.sales[sale.Key()] = sale
	}
	r.db.racingSales = nil

	var inserted int64
	for _, sale := range sales {
		if _, ok := r.db.sales[sale.Key()]; ok {
			continue
		}
		r.db.sales[sale.Key()] = sale
		inserted++
	}
	return inserted, nil
}

func (r memSales) ListByPeriod(ctx context.Context, storeCodes []string, start, end time.Time) ([]*domain.SaleRecord, error) {
	period := domain.NewPeriod(start, end)
	codes := make(map[string]struct{}, len(storeCodes))
	for _, code := range storeCodes {
		codes[code] = struct{}{}
	}

	sales := make([]*domain.SaleRecord, 0)
	for _, sale := range r.db.sales {
		if _, ok := codes[sale.StoreCode]; ok && period.Contains(sale.SaleDate) {
			sales = append(sales, sale)
		}
	}
	return sales, nil
}

type memProducts struct{ db *memDB }

func (r memProducts) ExistingRefCodes(ctx context.Context, refCodes []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{})
	for _, code := range refCodes {
		if _, ok := r.db.products[code]; ok {
			existing[code] = struct{}{}
		}
	}
	return existing, nil
}

func (r memProducts) InsertBatch(ctx context.Context, products []*domain.Product) (int64, error) {
	for _, product := range r.db.racingProducts {
		r.db.products[product.ProductRefCode] = product
	}
	r.db.racingProducts = nil

	var inserted int64
	for _, product := range products {
		if _, ok := r.db.products[product.ProductRefCode]; ok {
			continue
		}
		r.db.products[product.ProductRefCode] = product
		inserted++
	}
	return inserted, nil
}

type memExchanges struct{ db *memDB }

func (r memExchanges) ExistingKeys(ctx context.Context, keys []domain.ExchangeKey) (map[domain.ExchangeKey]struct{}, error) {
	existing := make(map[domain.ExchangeKey]struct{})
	for _, key := range keys {
		if _, ok := r.db.exchanges[key]; ok {
			existing[key] = struct{}{}
		}
	}
	return existing, nil
}

func (r memExchanges) Upsert(ctx context.Context, exchanges []*domain.ExchangeRecord) (int, int, error) {
	var inserted, updated int
	for _, exchange := range exchanges {
		stored := *exchange
		if current, ok := r.db.exchanges[exchange.Key()]; ok {
			stored.ID = current.ID
			updated++
		} else {
			inserted++
		}
		r.db.exchanges[exchange.Key()] = &stored
	}
	return inserted, updated, nil
}

func (r memExchanges) List(ctx context.Context, filters domain.ExchangeFilters) ([]*domain.ExchangeRecord, error) {
	exchanges := make([]*domain.ExchangeRecord, 0)
	for _, exchange := range r.db.exchanges {
		if filters.StoreCode == "" || exchange.StoreCode == filters.StoreCode {
			exchanges = append(exchanges, exchange)
		}
	}
	return exchanges, nil
}

type memCollaborators struct{ db *memDB }

func (r memCollaborators) ExistingKeys(ctx context.Context, keys []domain.CollaboratorKey) (map[domain.CollaboratorKey]struct{}, error) {
	existing := make(map[domain.CollaboratorKey]struct{})
	for _, key := range keys {
		if _, ok := r.db.collaborators[key]; ok {
			existing[key] = struct{}{}
		}
	}
	return existing, nil
}

func (r memCollaborators) Upsert(ctx context.Context, collaborators []*domain.Collaborator) (int, int, error) {
	var inserted, updated int
	for _, collaborator := range collaborators {
		stored := *collaborator
		if current, ok := r.db.collaborators[collaborator.Key()]; ok {
			stored.ID = current.ID
			updated++
		} else {
			inserted++
		}
		r.db.collaborators[collaborator.Key()] = &stored
	}
	return inserted, updated, nil
}

type memDaily struct{ db *memDB }

func dailyID(storeID string, date time.Time) string {
	return storeID + "|" + date.Format(time.DateOnly)
}

func (r memDaily) LockAggregates(ctx context.Context) error {
	r.db.locks++
	return nil
}

func (r memDaily) ReplacePeriod(ctx context.Context, storeIDs []string, start, end time.Time, aggregates []*domain.DailySalesAggregate) error {
	period := domain.NewPeriod(start, end)
	ids := make(map[string]struct{}, len(storeIDs))
	for _, id := range storeIDs {
		ids[id] = struct{}{}
	}

	rebuilt := make(map[string]*domain.DailySalesAggregate, len(aggregates))
	for _, aggregate := range aggregates {
		key := dailyID(aggregate.StoreID, aggregate.Date)
		if _, ok := rebuilt[key]; ok {
			return fmt.Errorf("chave diária duplicada %s", key)
		}
		rebuilt[key] = aggregate
	}

	for key, row := range r.db.daily {
		if _, ok := rebuilt[key]; ok {
			continue
		}
		if _, ok := ids[row.StoreID]; ok && period.Contains(row.Date) {
			delete(r.db.daily, key)
		}
	}

	for key, aggregate := range rebuilt {
		r.db.daily[key] = aggregate
	}
	return nil
}

func (r memDaily) ListByPeriod(ctx context.Context, storeIDs []string, start, end time.Time) ([]*domain.DailySalesAggregate, error) {
	period := domain.NewPeriod(start, end)
	ids := make(map[string]struct{}, len(storeIDs))
	for _, id := range storeIDs {
		ids[id] = struct{}{}
	}

	rows := make([]*domain.DailySalesAggregate, 0)
	for _, row := range r.db.daily {
		if _, ok := ids[row.StoreID]; (ok || len(ids) == 0) && period.Contains(row.Date) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type memMonthly struct{ db *memDB }

func (r memMonthly) Upsert(ctx context.Context, aggregates []*domain.MonthlySalesAggregate) error {
	for _, aggregate := range aggregates {
		stored := *aggregate
		r.db.monthly[aggregate.StoreID+"|"+aggregate.YearMonth] = &stored
	}
	return nil
}

func (r memMonthly) ListByYear(ctx context.Context, storeIDs []string, year int) ([]*domain.MonthlySalesAggregate, error) {
	ids := make(map[string]struct{}, len(storeIDs))
	for _, id := range storeIDs {
		ids[id] = struct{}{}
	}

	prefix := fmt.Sprintf("%04d-", year)
	rows := make([]*domain.MonthlySalesAggregate, 0)
	for _, row := range r.db.monthly {
		if _, ok := ids[row.StoreID]; (ok || len(ids) == 0) && strings.HasPrefix(row.YearMonth, prefix) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type memYearly struct{ db *memDB }

func (r memYearly) Upsert(ctx context.Context, aggregates []*domain.YearlySalesAggregate) error {
	for _, aggregate := range aggregates {
		stored := *aggregate
		r.db.yearly[fmt.Sprintf("%s|%d", aggregate.StoreID, aggregate.Year)] = &stored
	}
	return nil
}

func (r memYearly) ListByYears(ctx context.Context, storeIDs []string, startYear, endYear int) ([]*domain.YearlySalesAggregate, error) {
	rows := make([]*domain.YearlySalesAggregate, 0)
	for _, row := range r.db.yearly {
		if row.Year >= startYear && row.Year <= endYear {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// fakeLegacy devolve sempre os lotes configurados e registra os filtros recebidos
type fakeLegacy struct {
	sales         []legacydomain.SaleItem
	products      []legacydomain.Product
	exchanges     []legacydomain.ExchangeDocument
	collaborators []legacydomain.Collaborator
	stores        []legacydomain.Store
	err           error
	params        []legacydomain.FetchParams
}

func (f *fakeLegacy) FetchSales(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.SaleItem, error) {
	f.params = append(f.params, params)
	return f.sales, f.err
}

func (f *fakeLegacy) FetchProducts(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.Product, error) {
	return f.products, f.err
}

func (f *fakeLegacy) FetchExchanges(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.ExchangeDocument, error) {
	f.params = append(f.params, params)
	return f.exchanges, f.err
}

func (f *fakeLegacy) FetchCollaborators(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.Collaborator, error) {
	f.params = append(f.params, params)
	return f.collaborators, f.err
}

func (f *fakeLegacy) FetchStores(ctx context.Context) ([]legacydomain.Store, error) {
	return f.stores, f.err
}

func newTestService(db *memDB, legacy *fakeLegacy) *Service {
	cfg := &config.Config{}
	cfg.Sync.MaxPeriodDays = 92

	return NewService(cfg, legacy, db, db.repositories(), db.maintainer()).(*Service)
}

func saleItem(saleCode, sequence, storeCode, origin, date, total string) legacydomain.SaleItem {
	item := legacydomain.SaleItem{
		SaleCode:       legacydomain.Text(saleCode),
		ItemSequence:   legacydomain.Text(sequence),
		StoreCode:      legacydomain.Text(storeCode),
		EmployeeCode:   "7",
		ProductRefCode: legacydomain.Text("REF-" + saleCode),
		OriginCode:     legacydomain.Text(origin),
		OperationCode:  "10",
		SaleDate:       legacydomain.Text(date),
		Quantity:       "1",
		UnitPrice:      legacydomain.Text(total),
		TotalPrice:     legacydomain.Text(total),
	}
	item.Normalize()
	return item
}

func exchangeDocument(code, storeCode, observationText string) legacydomain.ExchangeDocument {
	document := legacydomain.ExchangeDocument{
		DocumentCode:   legacydomain.Text(code),
		StoreCode:      legacydomain.Text(storeCode),
		OperationCode:  "20",
		OriginCode:     "3",
		EmployeeCode:   "7",
		DocumentNumber: legacydomain.Text(code),
		IssueDate:      "2025-01-10",
		Observation:    legacydomain.Text(observationText),
	}
	document.Normalize()
	return document
}

func january2025() domain.Period {
	return domain.NewPeriod(
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
	)
}
