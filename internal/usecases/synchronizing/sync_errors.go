package synchronizing

import (
	"fmt"

	"github.com/pkg/errors"
	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

// Erros de sincronização
var (
	// Erros de período
	ErrInvalidPeriod = errors.New("período inválido")
	ErrPeriodTooLong = errors.New("período maior que o permitido para uma sincronização")
	ErrUnknownDomain = errors.New("domínio de sincronização desconhecido")

	// Erros do legado
	ErrGatewayUnavailable = errors.New("sistema legado indisponível")
	ErrGatewayTimeout     = errors.New("sistema legado não respondeu a tempo")

	// Erros de execução
	ErrSyncAlreadyRunning    = errors.New("sincronização do mesmo domínio já em andamento")
	ErrMissingReferenceCodes = errors.New("códigos de referência não cadastrados")
	ErrFilters               = errors.New("erro ao preparar filtros da sincronização")
	ErrPersistence           = errors.New("erro ao gravar registros sincronizados")
	ErrRollup                = errors.New("erro ao recalcular agregados")
)

// Códigos usados pela camada HTTP
const (
	CodeInvalidPeriod     = "SYNC_001"
	CodeAlreadyRunning    = "SYNC_002"
	CodeGatewayFailure    = "SYNC_003"
	CodeGatewayTimeout    = "SYNC_004"
	CodeMissingReferences = "SYNC_005"
	CodeSyncFailed        = "SYNC_006"
)

// SyncError é um erro com contexto adicional de uma execução
type SyncError struct {
	Err       error             // Erro base
	Code      string            // Código de erro para API
	Domain    domain.SyncDomain // Domínio da execução
	Retriable bool              // Se repetir o mesmo período pode resolver
	Details   string            // Detalhes adicionais
}

// Error implementa a interface error
func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code string, syncDomain domain.SyncDomain, details string) *SyncError {
	return &SyncError{
		Err:     err,
		Code:    code,
		Domain:  syncDomain,
		Details: details,
	}
}

// gatewayError traduz a falha do legado; qualquer uma interrompe a execução inteira
func gatewayError(err error, syncDomain domain.SyncDomain) *SyncError {
	if errors.Is(err, legacydomain.ErrTimeout) {
		return &SyncError{
			Err:       ErrGatewayTimeout,
			Code:      CodeGatewayTimeout,
			Domain:    syncDomain,
			Retriable: true,
			Details:   err.Error(),
		}
	}

	return &SyncError{
		Err:       ErrGatewayUnavailable,
		Code:      CodeGatewayFailure,
		Domain:    syncDomain,
		Retriable: true,
		Details:   err.Error(),
	}
}

// IsRetriable indica se a mesma execução pode ser repetida mais tarde
func IsRetriable(err error) bool {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Retriable
	}
	return false
}
