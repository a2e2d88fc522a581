package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	reportingmocks "github.com/vfg2006/sales-sync-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-sync-api/internal/usecases/synchronizing"
	syncmocks "github.com/vfg2006/sales-sync-api/internal/usecases/synchronizing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(
	synchronizer synchronizing.Synchronizer,
	reporter *reportingmocks.MockReporter,
	now time.Time,
	domains ...domain.SyncDomain,
) *LegacySyncService {
	return &LegacySyncService{
		config: LegacySyncConfig{
			CronSchedule: "0 4 * * *",
			LookbackDays: 3,
			Domains:      domains,
			SyncEnabled:  true,
		},
		synchronizer: synchronizer,
		reporter:     reporter,
		now:          func() time.Time { return now },
		lastResults:  make(map[domain.SyncDomain]*domain.SyncRunResult),
		lastErrors:   make(map[domain.SyncDomain]string),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestLegacySyncService_Window(t *testing.T) {
	now := time.Date(2025, 2, 3, 10, 30, 0, 0, time.UTC)
	service := newTestSyncService(nil, nil, now)

	window := service.Window()

	assert.Equal(t, date(2025, 1, 31), window.Start)
	assert.Equal(t, date(2025, 2, 2), window.End)
	assert.Equal(t, 3, window.Days())
}

func TestLegacySyncService_run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSynchronizer := syncmocks.NewMockSynchronizer(ctrl)
	mockReporter := reportingmocks.NewMockReporter(ctrl)

	tests := []struct {
		name     string
		now      time.Time
		domains  []domain.SyncDomain
		setup    func(window domain.Period)
		validate func(t *testing.T, service *LegacySyncService)
	}{
		{
			name:    "Falha em um domínio não impede os seguintes",
			now:     time.Date(2025, 2, 3, 4, 0, 0, 0, time.UTC),
			domains: []domain.SyncDomain{domain.SyncDomainStores, domain.SyncDomainSales, domain.SyncDomainExchanges},
			setup: func(window domain.Period) {
				gomock.InOrder(
					mockSynchronizer.EXPECT().
						Sync(gomock.Any(), domain.SyncDomainStores, window).
						Return(nil, errors.New("legado indisponível")),
					mockSynchronizer.EXPECT().
						Sync(gomock.Any(), domain.SyncDomainSales, window).
						Return(&domain.SyncRunResult{Domain: domain.SyncDomainSales, Created: 10}, nil),
					mockReporter.EXPECT().
						VerifyConsistency(gomock.Any(), 2025).
						Return(nil, nil),
					mockSynchronizer.EXPECT().
						Sync(gomock.Any(), domain.SyncDomainExchanges, window).
						Return(&domain.SyncRunResult{Domain: domain.SyncDomainExchanges, Updated: 2}, nil),
				)
			},
			validate: func(t *testing.T, service *LegacySyncService) {
				status := service.GetStatus()
				results := status["last_results"].(map[domain.SyncDomain]*domain.SyncRunResult)
				errs := status["last_errors"].(map[domain.SyncDomain]string)

				assert.Equal(t, 10, results[domain.SyncDomainSales].Created)
				assert.Equal(t, 2, results[domain.SyncDomainExchanges].Updated)
				assert.NotContains(t, results, domain.SyncDomainStores)
				assert.Equal(t, "legado indisponível", errs[domain.SyncDomainStores])
				assert.False(t, status["sync_running"].(bool))
			},
		},
		{
			name:    "Janela que cruza o ano verifica os dois anos",
			now:     time.Date(2025, 1, 2, 4, 0, 0, 0, time.UTC),
			domains: []domain.SyncDomain{domain.SyncDomainSales},
			setup: func(window domain.Period) {
				mockSynchronizer.EXPECT().
					Sync(gomock.Any(), domain.SyncDomainSales, window).
					Return(&domain.SyncRunResult{Domain: domain.SyncDomainSales}, nil)
				gomock.InOrder(
					mockReporter.EXPECT().
						VerifyConsistency(gomock.Any(), 2024).
						Return([]*domain.ConsistencyMismatch{{StoreCode: "000001", Year: 2024}}, nil),
					mockReporter.EXPECT().
						VerifyConsistency(gomock.Any(), 2025).
						Return(nil, errors.New("falha de conexão")),
				)
			},
			validate: func(t *testing.T, service *LegacySyncService) {
				errs := service.GetStatus()["last_errors"].(map[domain.SyncDomain]string)
				assert.Empty(t, errs)
			},
		},
		{
			name:    "Falha nas vendas não verifica consistência",
			now:     time.Date(2025, 2, 3, 4, 0, 0, 0, time.UTC),
			domains: []domain.SyncDomain{domain.SyncDomainSales},
			setup: func(window domain.Period) {
				mockSynchronizer.EXPECT().
					Sync(gomock.Any(), domain.SyncDomainSales, window).
					Return(nil, synchronizing.ErrSyncAlreadyRunning)
			},
			validate: func(t *testing.T, service *LegacySyncService) {
				errs := service.GetStatus()["last_errors"].(map[domain.SyncDomain]string)
				assert.Contains(t, errs, domain.SyncDomainSales)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestSyncService(mockSynchronizer, mockReporter, tt.now, tt.domains...)
			tt.setup(service.Window())

			require.True(t, service.tryStart())
			service.run(context.Background())

			tt.validate(t, service)
		})
	}
}

func TestLegacySyncService_TriggerManualSync_EmAndamento(t *testing.T) {
	service := newTestSyncService(nil, nil, time.Now())

	require.True(t, service.tryStart())

	assert.False(t, service.TriggerManualSync())
	assert.True(t, service.GetStatus()["sync_running"].(bool))

	service.finish()
	assert.False(t, service.GetStatus()["sync_running"].(bool))
}

func TestLegacySyncService_syncAll_IgnoraQuandoEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada é esperada no sincronizador
	mockSynchronizer := syncmocks.NewMockSynchronizer(ctrl)
	service := newTestSyncService(mockSynchronizer, nil, time.Now(), domain.SyncDomainSales)

	require.True(t, service.tryStart())
	service.syncAll(context.Background())
}

func TestParseDomains(t *testing.T) {
	domains := parseDomains([]string{"stores", "inexistente", "sales"})

	assert.Equal(t, []domain.SyncDomain{domain.SyncDomainStores, domain.SyncDomainSales}, domains)
}
