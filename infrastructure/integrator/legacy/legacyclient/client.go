package legacyclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetSales(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.SaleItem, error)
	GetProducts(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.Product, error)
	GetExchanges(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.ExchangeDocument, error)
	GetCollaborators(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.Collaborator, error)
	GetStores(ctx context.Context) ([]legacydomain.Store, error)
}

type LegacyClient struct {
	httpClient *http.Client
	config     config.Legacy
}

// NewClient cria o cliente HTTP da API de integração do legado
func NewClient(cfg *config.Config) Client {
	return &LegacyClient{
		httpClient: &http.Client{
			Timeout: cfg.Legacy.RequestTimeout,
		},
		config: cfg.Legacy,
	}
}

// periodRequest é o corpo enviado nas consultas por período
type periodRequest struct {
	StartDate      string   `json:"data_inicio"`
	EndDate        string   `json:"data_fim"`
	StoreCodes     []string `json:"lojas,omitempty"`
	OriginCodes    []string `json:"origens,omitempty"`
	OperationCodes []string `json:"operacoes,omitempty"`
}

func newPeriodRequest(params legacydomain.FetchParams) periodRequest {
	return periodRequest{
		StartDate:      params.StartDate.Format(time.DateOnly),
		EndDate:        params.EndDate.Format(time.DateOnly),
		StoreCodes:     params.StoreCodes,
		OriginCodes:    params.OriginCodes,
		OperationCodes: params.OperationCodes,
	}
}

// post envia body para o endpoint e decodifica a resposta em out
func (c *LegacyClient) post(ctx context.Context, endpointPath string, body any, out any) error {
	if c.config.ContextTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.ContextTimeout)
		defer cancel()
	}

	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %s após %s", legacydomain.ErrTimeout, endpointPath, time.Since(startTime))
		}
		return fmt.Errorf("%w: erro ao executar a requisição: %v", legacydomain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"endpoint":    endpointPath,
		"status_code": resp.StatusCode,
		"duration":    time.Since(startTime).String(),
	}).Debug("Resposta recebida do legado")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &legacydomain.StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: leitura de %s", legacydomain.ErrTimeout, endpointPath)
		}
		if errors.Is(err, io.EOF) {
			// corpo vazio equivale a nenhum registro
			return nil
		}
		return fmt.Errorf("%w: erro ao decodificar a resposta: %v", legacydomain.ErrUnavailable, err)
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
