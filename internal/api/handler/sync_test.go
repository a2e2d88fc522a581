package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-sync-api/internal/usecases/synchronizing/mocks"
	"github.com/vfg2006/sales-sync-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newSyncRequest(syncDomain, query string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/sync/"+syncDomain+query, nil)
	params := httprouter.Params{{Key: "domain", Value: syncDomain}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestRunSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSynchronizer := mocks.NewMockSynchronizer(ctrl)

	january := domain.NewPeriod(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	)

	tests := []struct {
		name       string
		domain     string
		query      string
		setup      func()
		wantStatus int
		validate   func(t *testing.T, body map[string]any)
	}{
		{
			name:   "Sincronização de vendas com sucesso",
			domain: "sales",
			query:  "?start_date=2025-01-01&end_date=2025-01-31",
			setup: func() {
				mockSynchronizer.EXPECT().
					Sync(gomock.Any(), domain.SyncDomainSales, january).
					Return(&domain.SyncRunResult{
						Domain:          domain.SyncDomainSales,
						Created:         3,
						Skipped:         1,
						PeriodStart:     january.Start,
						PeriodEnd:       january.End,
						StoresProcessed: 2,
					}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "sales", body["domain"])
				assert.Equal(t, float64(3), body["created"])
				assert.Equal(t, float64(1), body["skipped"])
				assert.Equal(t, float64(2), body["stores_processed"])
			},
		},
		{
			name:   "Lojas ignoram o período",
			domain: "stores",
			query:  "?start_date=invalida",
			setup: func() {
				mockSynchronizer.EXPECT().
					Sync(gomock.Any(), domain.SyncDomainStores, domain.Period{}).
					Return(&domain.SyncRunResult{Domain: domain.SyncDomainStores, Created: 1}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "stores", body["domain"])
			},
		},
		{
			name:       "Domínio desconhecido",
			domain:     "invoices",
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrInvalidRequest, body["code"])
			},
		},
		{
			name:       "Data em formato inválido",
			domain:     "sales",
			query:      "?start_date=01/01/2025&end_date=2025-01-31",
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrInvalidFormat, body["code"])
			},
		},
		{
			name:   "Execução do mesmo domínio em andamento",
			domain: "exchanges",
			query:  "?start_date=2025-01-01&end_date=2025-01-31",
			setup: func() {
				mockSynchronizer.EXPECT().
					Sync(gomock.Any(), domain.SyncDomainExchanges, january).
					Return(nil, synchronizing.NewSyncError(synchronizing.ErrSyncAlreadyRunning, synchronizing.CodeAlreadyRunning, domain.SyncDomainExchanges, ""))
			},
			wantStatus: http.StatusConflict,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrSyncAlreadyRunning, body["code"])
			},
		},
		{
			name:   "Legado fora do ar",
			domain: "sales",
			query:  "?start_date=2025-01-01&end_date=2025-01-31",
			setup: func() {
				mockSynchronizer.EXPECT().
					Sync(gomock.Any(), domain.SyncDomainSales, january).
					Return(nil, &synchronizing.SyncError{
						Err:       synchronizing.ErrGatewayUnavailable,
						Code:      synchronizing.CodeGatewayFailure,
						Domain:    domain.SyncDomainSales,
						Retriable: true,
					})
			},
			wantStatus: http.StatusBadGateway,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrSyncGatewayFailure, body["code"])
				details := body["details"].(map[string]any)
				assert.Equal(t, true, details["retriable"])
			},
		},
		{
			name:   "Erro sem código vira erro interno",
			domain: "collaborators",
			query:  "?start_date=2025-01-01&end_date=2025-01-31",
			setup: func() {
				mockSynchronizer.EXPECT().
					Sync(gomock.Any(), domain.SyncDomainCollaborators, january).
					Return(nil, errors.New("falha inesperada"))
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrInternalServer, body["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			RunSync(mockSynchronizer).ServeHTTP(rec, newSyncRequest(tt.domain, tt.query))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			tt.validate(t, body)
		})
	}
}
