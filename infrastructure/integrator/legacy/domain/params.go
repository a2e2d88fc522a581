package legacydomain

import (
	"errors"
	"fmt"
	"time"
)

// FetchParams são os filtros aceitos por todas as consultas por período do legado
type FetchParams struct {
	StartDate      time.Time
	EndDate        time.Time
	StoreCodes     []string
	OriginCodes    []string
	OperationCodes []string
}

var (
	// ErrTimeout indica que o legado não respondeu dentro do limite configurado
	ErrTimeout = errors.New("legacy request timed out")
	// ErrUnavailable indica falha de transporte ou resposta fora da faixa 2xx
	ErrUnavailable = errors.New("legacy system unavailable")
)

// StatusError carrega o status HTTP de uma resposta não 2xx
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}
