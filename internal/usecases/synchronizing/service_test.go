package synchronizing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	aggregatingmocks "github.com/vfg2006/sales-sync-api/internal/usecases/aggregating/mocks"
	"go.uber.org/mock/gomock"
)

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "esperado %s, obtido %s", expected, actual.String())
}

func janSales() []legacydomain.SaleItem {
	return []legacydomain.SaleItem{
		saleItem("5001", "001", "1", "1", "2025-01-15", "100,00"),
		saleItem("5002", "1", "000001", "2", "2025-01-15", "50.00"),
		saleItem("5003", "1", "1", "3", "15/01/2025", "30"),
	}
}

func TestSyncSales_FirstRunAndIdempotentRerun(t *testing.T) {
	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Centro")
	legacy := &fakeLegacy{sales: janSales()}
	service := newTestService(db, legacy)
	processedAt := time.Date(2025, time.February, 1, 3, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return processedAt }

	first, err := service.SyncSales(context.Background(), january2025())
	require.NoError(t, err)

	assert.Equal(t, domain.SyncDomainSales, first.Domain)
	assert.Equal(t, 3, first.Created)
	assert.Equal(t, 0, first.Updated)
	assert.Equal(t, 0, first.Skipped)
	assert.Equal(t, 1, first.StoresProcessed)
	assert.Equal(t, processedAt, first.ProcessedAt)
	assert.Equal(t, january2025().Start, first.PeriodStart)
	assert.Equal(t, january2025().End, first.PeriodEnd)

	require.Len(t, db.daily, 1)
	daily := db.daily["store-1|2025-01-15"]
	require.NotNil(t, daily)
	assertDecimal(t, "100", daily.PDV)
	assertDecimal(t, "50", daily.DANFE)
	assertDecimal(t, "30", daily.Exchange)
	assertDecimal(t, "120", daily.Total)
	assertDecimal(t, "120", db.monthly["store-1|2025-01"].Total)
	assertDecimal(t, "120", db.yearly["store-1|2025"].Total)

	second, err := service.SyncSales(context.Background(), january2025())
	require.NoError(t, err)

	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 3, second.Skipped)
	assert.Len(t, db.sales, 3)
	assert.Equal(t, 2, db.locks)
	require.Len(t, db.daily, 1)
	assertDecimal(t, "120", db.daily["store-1|2025-01-15"].Total)
	assertDecimal(t, "120", db.monthly["store-1|2025-01"].Total)
	assertDecimal(t, "120", db.yearly["store-1|2025"].Total)
}

func TestSyncSales_Counting(t *testing.T) {
	tests := []struct {
		name     string
		items    []legacydomain.SaleItem
		setup    func(db *memDB)
		created  int
		skipped  int
		validate func(t *testing.T, db *memDB)
	}{
		{
			name: "Item com valor malformado é ignorado e fica fora dos agregados",
			items: append(janSales(),
				saleItem("5004", "1", "1", "1", "2025-01-15", "abc"),
			),
			created: 3,
			skipped: 1,
			validate: func(t *testing.T, db *memDB) {
				assertDecimal(t, "120", db.daily["store-1|2025-01-15"].Total)
			},
		},
		{
			name: "Item com data malformada é ignorado",
			items: []legacydomain.SaleItem{
				saleItem("5001", "1", "1", "1", "2025-13-45", "10"),
				saleItem("5002", "1", "1", "1", "2025-01-02", "10"),
			},
			created: 1,
			skipped: 1,
		},
		{
			name: "Chave repetida no mesmo lote conta uma vez como criada e uma como ignorada",
			items: []legacydomain.SaleItem{
				saleItem("5001", "1", "1", "1", "2025-01-15", "10"),
				saleItem("5001", "001", "1", "1", "2025-01-15", "10"),
			},
			created: 1,
			skipped: 1,
			validate: func(t *testing.T, db *memDB) {
				assertDecimal(t, "10", db.daily["store-1|2025-01-15"].Total)
			},
		},
		{
			name: "Origem com zeros à esquerda casa com o código de referência",
			items: []legacydomain.SaleItem{
				saleItem("5001", "1", "1", "01", "2025-01-15", "100"),
				saleItem("5002", "1", "1", "002", "2025-01-15", "50"),
				saleItem("5003", "1", "1", "03", "2025-01-15", "30"),
			},
			created: 3,
			skipped: 0,
			validate: func(t *testing.T, db *memDB) {
				daily := db.daily["store-1|2025-01-15"]
				require.NotNil(t, daily)
				assertDecimal(t, "100", daily.PDV)
				assertDecimal(t, "50", daily.DANFE)
				assertDecimal(t, "30", daily.Exchange)
				assertDecimal(t, "120", db.monthly["store-1|2025-01"].Total)
				assertDecimal(t, "120", db.yearly["store-1|2025"].Total)
			},
		},
		{
			name:  "Chave gravada por outro escritor depois da consulta conta como ignorada",
			items: janSales(),
			setup: func(db *memDB) {
				db.racingSales = []*domain.SaleRecord{{
					ID:             "concorrente",
					SaleCode:       "5002",
					ProductRefCode: "REF-5002",
					ItemSequence:   "1",
					StoreCode:      "000001",
					OriginCode:     "2",
					SaleDate:       time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
					TotalPrice:     decimal.RequireFromString("50"),
				}}
			},
			created: 2,
			skipped: 1,
			validate: func(t *testing.T, db *memDB) {
				assert.Len(t, db.sales, 3)
				assert.Equal(t, "concorrente", db.sales[domain.SaleKey{SaleCode: "5002", ProductRefCode: "REF-5002", ItemSequence: "1"}].ID)
				assertDecimal(t, "120", db.daily["store-1|2025-01-15"].Total)
			},
		},
		{
			name:    "Lote vazio do legado",
			items:   []legacydomain.SaleItem{},
			created: 0,
			skipped: 0,
			validate: func(t *testing.T, db *memDB) {
				assert.Empty(t, db.daily)
				assertDecimal(t, "0", db.monthly["store-1|2025-01"].Total)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newMemDB()
			db.addStore("store-1", "000001", "Loja Centro")
			if tt.setup != nil {
				tt.setup(db)
			}
			service := newTestService(db, &fakeLegacy{sales: tt.items})

			result, err := service.SyncSales(context.Background(), january2025())
			require.NoError(t, err)

			assert.Equal(t, tt.created, result.Created)
			assert.Equal(t, tt.skipped, result.Skipped)
			assert.Equal(t, len(tt.items), result.Created+result.Updated+result.Skipped)

			if tt.validate != nil {
				tt.validate(t, db)
			}
		})
	}
}

func TestSyncSales_RollupConsistencyAcrossMonths(t *testing.T) {
	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Centro")
	db.addStore("store-2", "000002", "Loja Shopping")

	legacy := &fakeLegacy{sales: []legacydomain.SaleItem{
		saleItem("1", "1", "1", "1", "2025-01-20", "10.50"),
		saleItem("2", "1", "1", "2", "2025-01-31", "20"),
		saleItem("3", "1", "1", "3", "2025-02-01", "5"),
		saleItem("4", "1", "2", "1", "2025-02-10", "99,99"),
		saleItem("5", "1", "2", "2", "2025-01-25", "1.000,01"),
	}}
	service := newTestService(db, legacy)

	period := domain.NewPeriod(
		time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
	)
	_, err := service.SyncSales(context.Background(), period)
	require.NoError(t, err)

	for _, storeID := range []string{"store-1", "store-2"} {
		dailySum := decimal.Zero
		for _, row := range db.daily {
			if row.StoreID == storeID {
				dailySum = dailySum.Add(row.Total)
			}
		}

		monthlySum := decimal.Zero
		for _, row := range db.monthly {
			if row.StoreID == storeID {
				monthlySum = monthlySum.Add(row.Total)
			}
		}

		assert.True(t, dailySum.Equal(monthlySum), "loja %s: diário %s, mensal %s", storeID, dailySum, monthlySum)
		assert.True(t, monthlySum.Equal(db.yearly[storeID+"|2025"].Total), "loja %s: mensal %s, anual %s", storeID, monthlySum, db.yearly[storeID+"|2025"].Total)
	}

	assertDecimal(t, "30.5", db.monthly["store-1|2025-01"].Total)
	assertDecimal(t, "-5", db.monthly["store-1|2025-02"].Total)
	assertDecimal(t, "1100", db.yearly["store-2|2025"].Total)
}

func TestSyncSales_FiltersAreReadOnEveryRun(t *testing.T) {
	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Centro")
	legacy := &fakeLegacy{sales: []legacydomain.SaleItem{}}
	service := newTestService(db, legacy)

	_, err := service.SyncSales(context.Background(), january2025())
	require.NoError(t, err)

	db.origins = append(db.origins, &domain.ReferenceCode{Code: "4", Category: domain.OriginCategoryPDV})
	db.addStore("store-2", "000002", "Loja Shopping")

	_, err = service.SyncSales(context.Background(), january2025())
	require.NoError(t, err)

	require.Len(t, legacy.params, 2)
	assert.NotContains(t, legacy.params[0].OriginCodes, "4")
	assert.Contains(t, legacy.params[1].OriginCodes, "4")
	assert.ElementsMatch(t, []string{"000001", "000002"}, legacy.params[1].StoreCodes)
	assert.ElementsMatch(t, []string{"10", "20"}, legacy.params[1].OperationCodes)
}

func TestSyncSales_Failures(t *testing.T) {
	tests := []struct {
		name      string
		period    domain.Period
		setup     func(db *memDB, legacy *fakeLegacy, service *Service)
		sentinel  error
		code      string
		retriable bool
	}{
		{
			name:      "Legado indisponível interrompe a execução",
			period:    january2025(),
			setup:     func(db *memDB, legacy *fakeLegacy, service *Service) { legacy.err = legacydomain.ErrUnavailable },
			sentinel:  ErrGatewayUnavailable,
			code:      CodeGatewayFailure,
			retriable: true,
		},
		{
			name:   "Status não 2xx do legado interrompe a execução",
			period: january2025(),
			setup: func(db *memDB, legacy *fakeLegacy, service *Service) {
				legacy.err = &legacydomain.StatusError{StatusCode: 502, Status: "502 Bad Gateway"}
			},
			sentinel:  ErrGatewayUnavailable,
			code:      CodeGatewayFailure,
			retriable: true,
		},
		{
			name:   "Timeout do legado é repetível",
			period: january2025(),
			setup: func(db *memDB, legacy *fakeLegacy, service *Service) {
				legacy.err = errors.Wrap(legacydomain.ErrTimeout, "POST /integracoes/vendas/itens")
			},
			sentinel:  ErrGatewayTimeout,
			code:      CodeGatewayTimeout,
			retriable: true,
		},
		{
			name:     "Sem códigos de operação cadastrados",
			period:   january2025(),
			setup:    func(db *memDB, legacy *fakeLegacy, service *Service) { db.operations = nil },
			sentinel: ErrMissingReferenceCodes,
			code:     CodeMissingReferences,
		},
		{
			name: "Data inicial posterior à final",
			period: domain.NewPeriod(
				time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			),
			sentinel: ErrInvalidPeriod,
			code:     CodeInvalidPeriod,
		},
		{
			name: "Período acima do limite",
			period: domain.NewPeriod(
				time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			),
			sentinel: ErrPeriodTooLong,
			code:     CodeInvalidPeriod,
		},
		{
			name:     "Segunda execução simultânea do mesmo domínio",
			period:   january2025(),
			setup:    func(db *memDB, legacy *fakeLegacy, service *Service) { service.guard.acquire(domain.SyncDomainSales) },
			sentinel: ErrSyncAlreadyRunning,
			code:     CodeAlreadyRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newMemDB()
			db.addStore("store-1", "000001", "Loja Centro")
			legacy := &fakeLegacy{sales: janSales()}
			service := newTestService(db, legacy)
			if tt.setup != nil {
				tt.setup(db, legacy, service)
			}

			result, err := service.SyncSales(context.Background(), tt.period)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))

			var syncErr *SyncError
			require.True(t, errors.As(err, &syncErr))
			assert.Equal(t, tt.code, syncErr.Code)
			assert.Equal(t, domain.SyncDomainSales, syncErr.Domain)
			assert.Equal(t, tt.retriable, IsRetriable(err))

			assert.Equal(t, 0, db.commits)
			assert.Empty(t, db.sales)
			assert.Empty(t, db.daily)
		})
	}
}

func TestSyncSales_RollupFailureCommitsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Centro")
	maintainer := aggregatingmocks.NewMockMaintainer(ctrl)
	maintainer.EXPECT().Rollup(gomock.Any(), gomock.Any(), january2025()).Return(errors.New("falha no mensal"))

	service := newTestService(db, &fakeLegacy{sales: janSales()})
	service.maintainer = maintainer

	result, err := service.SyncSales(context.Background(), january2025())

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrRollup))
	assert.Equal(t, 1, db.rollbacks)
	assert.Empty(t, db.sales)
	assert.Empty(t, db.products)
	assert.Empty(t, db.daily)
}

func TestSyncSales_WithoutStores(t *testing.T) {
	db := newMemDB()
	legacy := &fakeLegacy{sales: janSales()}
	service := newTestService(db, legacy)

	result, err := service.SyncSales(context.Background(), january2025())
	require.NoError(t, err)

	assert.Equal(t, 0, result.StoresProcessed)
	assert.Equal(t, 0, result.Created)
	assert.Empty(t, legacy.params)
}

func TestSyncSales_ProductsFirstSyncWins(t *testing.T) {
	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Centro")
	legacy := &fakeLegacy{
		sales: []legacydomain.SaleItem{},
		products: []legacydomain.Product{
			{ProductRefCode: "REF-1", ProductCode: "1", Description: "Armação azul"},
			{ProductRefCode: "REF-1", ProductCode: "1", Description: "Armação repetida"},
			{ProductRefCode: "", Description: "Sem referência"},
		},
	}
	service := newTestService(db, legacy)

	_, err := service.SyncSales(context.Background(), january2025())
	require.NoError(t, err)

	legacy.products = []legacydomain.Product{
		{ProductRefCode: "REF-1", ProductCode: "1", Description: "Armação corrigida"},
	}
	_, err = service.SyncSales(context.Background(), january2025())
	require.NoError(t, err)

	require.Len(t, db.products, 1)
	assert.Equal(t, "Armação azul", db.products["REF-1"].Description)
}

func TestSyncSales_ProductInsertedByAnotherWriterIsSkipped(t *testing.T) {
	hook := logtest.NewGlobal()
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Centro")
	db.racingProducts = []*domain.Product{{ID: "concorrente", ProductRefCode: "REF-1", Description: "Gravado antes"}}
	legacy := &fakeLegacy{
		sales: []legacydomain.SaleItem{},
		products: []legacydomain.Product{
			{ProductRefCode: "REF-1", ProductCode: "1", Description: "Armação azul"},
			{ProductRefCode: "REF-2", ProductCode: "2", Description: "Lente"},
		},
	}
	service := newTestService(db, legacy)

	_, err := service.SyncSales(context.Background(), january2025())
	require.NoError(t, err)

	require.Len(t, db.products, 2)
	assert.Equal(t, "Gravado antes", db.products["REF-1"].Description)
	assert.Equal(t, "Lente", db.products["REF-2"].Description)

	var summary *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Produtos sincronizados" {
			summary = entry
		}
	}
	require.NotNil(t, summary)
	assert.Equal(t, int64(1), summary.Data["created"])
	assert.Equal(t, 1, summary.Data["skipped"])
}

func TestSyncExchanges_UpsertRewritesLinkage(t *testing.T) {
	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Centro")
	legacy := &fakeLegacy{exchanges: []legacydomain.ExchangeDocument{
		exchangeDocument("900", "1", "DEVOLUCAO NOTA(S) FISCAL(IS): 1/000054118"),
		exchangeDocument("901", "1", "[REFERENTE A DEVOLUÇÃO: C.O.O: 113 ECF: 001] [REFERENTE A TROCA: CHAVE: 35250112345678000199550010000541181000541180]"),
	}}
	service := newTestService(db, legacy)

	first, err := service.SyncExchanges(context.Background(), january2025())
	require.NoError(t, err)

	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 0, first.Updated)

	linked := db.exchanges[domain.ExchangeKey{DocumentCode: "900", StoreCode: "000001"}]
	require.NotNil(t, linked)
	require.NotNil(t, linked.NewSaleNumber)
	assert.Equal(t, "000054118", *linked.NewSaleNumber)
	assert.Nil(t, linked.NewSaleNfeKey)

	plainReturn := db.exchanges[domain.ExchangeKey{DocumentCode: "901", StoreCode: "000001"}]
	require.NotNil(t, plainReturn)
	assert.Nil(t, plainReturn.NewSaleNumber)
	assert.Nil(t, plainReturn.NewSaleNfeKey)

	legacy.exchanges = []legacydomain.ExchangeDocument{
		exchangeDocument("900", "000001", "[REFERENTE A TROCA: CHAVE: 35250112345678000199550010000541181000541180]"),
	}

	second, err := service.SyncExchanges(context.Background(), january2025())
	require.NoError(t, err)

	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Updated)
	assert.Equal(t, 0, second.Skipped)

	updated := db.exchanges[domain.ExchangeKey{DocumentCode: "900", StoreCode: "000001"}]
	assert.Equal(t, linked.ID, updated.ID)
	assert.Nil(t, updated.NewSaleNumber)
	require.NotNil(t, updated.NewSaleNfeKey)
	assert.Equal(t, "35250112345678000199550010000541181000541180", *updated.NewSaleNfeKey)

	require.Len(t, legacy.params, 2)
	assert.Equal(t, []string{"3"}, legacy.params[0].OriginCodes)
	assert.Equal(t, []string{"20"}, legacy.params[0].OperationCodes)
}

func TestSyncExchanges_MalformedAndDuplicated(t *testing.T) {
	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Centro")

	malformed := exchangeDocument("902", "1", "")
	malformed.IssueDate = "ontem"

	legacy := &fakeLegacy{exchanges: []legacydomain.ExchangeDocument{
		exchangeDocument("900", "1", ""),
		exchangeDocument("900", "000001", ""),
		malformed,
	}}
	service := newTestService(db, legacy)

	result, err := service.SyncExchanges(context.Background(), january2025())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, db.exchanges, 1)
}

func TestSync_DifferentDomainsDoNotBlockEachOther(t *testing.T) {
	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Centro")
	service := newTestService(db, &fakeLegacy{})

	require.True(t, service.guard.acquire(domain.SyncDomainSales))
	defer service.guard.release(domain.SyncDomainSales)

	_, err := service.Sync(context.Background(), domain.SyncDomainExchanges, january2025())
	assert.NoError(t, err)

	_, err = service.Sync(context.Background(), domain.SyncDomainSales, january2025())
	assert.True(t, errors.Is(err, ErrSyncAlreadyRunning))

	_, err = service.Sync(context.Background(), domain.SyncDomain("vendedores"), january2025())
	assert.True(t, errors.Is(err, ErrUnknownDomain))
}

func TestSyncCollaborators(t *testing.T) {
	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Centro")
	legacy := &fakeLegacy{collaborators: []legacydomain.Collaborator{
		{EmployeeCode: "7", StoreCode: "000001", Name: "Ana", Active: "S", AdmissionDate: "2020-03-01"},
		{EmployeeCode: "8", StoreCode: "000001", Name: "Bruno", Active: "talvez"},
	}}
	service := newTestService(db, legacy)

	first, err := service.SyncCollaborators(context.Background(), january2025())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)
	assert.Equal(t, 1, first.Skipped)

	legacy.collaborators = []legacydomain.Collaborator{
		{EmployeeCode: "7", StoreCode: "000001", Name: "Ana Maria", Active: "N"},
	}
	second, err := service.SyncCollaborators(context.Background(), january2025())
	require.NoError(t, err)
	assert.Equal(t, 1, second.Updated)

	ana := db.collaborators[domain.CollaboratorKey{EmployeeCode: "7", StoreCode: "000001"}]
	require.NotNil(t, ana)
	assert.Equal(t, "Ana Maria", ana.Name)
	assert.False(t, ana.Active)
	assert.Equal(t, []string{"000001"}, legacy.params[0].StoreCodes)
}

func TestSyncStores(t *testing.T) {
	db := newMemDB()
	db.addStore("store-1", "000001", "Loja Antiga")
	legacy := &fakeLegacy{stores: []legacydomain.Store{
		{Code: "000001", Name: "Loja Centro", Active: "S"},
		{Code: "000001", Name: "Loja Centro repetida", Active: "S"},
		{Code: "000002", Name: "Loja Shopping", Active: "N"},
		{Code: "000003", Name: "Loja Sem Status", Active: "?"},
	}}
	service := newTestService(db, legacy)

	result, err := service.SyncStores(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 2, result.StoresProcessed)
	assert.True(t, result.PeriodStart.IsZero())

	assert.Equal(t, "store-1", db.stores["000001"].ID)
	assert.Equal(t, "Loja Centro", db.stores["000001"].Name)
	assert.False(t, db.stores["000002"].Active)
}
