package legacy

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/legacyclient"
	"github.com/vfg2006/sales-sync-api/internal/config"
)

// LegacyIntegrator é o contrato de leitura do sistema legado.
// Nenhum registro encontrado resulta em lista vazia; falhas de transporte são sempre erro.
type LegacyIntegrator interface {
	FetchSales(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.SaleItem, error)
	FetchProducts(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.Product, error)
	FetchExchanges(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.ExchangeDocument, error)
	FetchCollaborators(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.Collaborator, error)
	FetchStores(ctx context.Context) ([]legacydomain.Store, error)
}

type LegacyService struct {
	cfg    *config.Config
	Client legacyclient.Client
}

func New(cfg *config.Config, client legacyclient.Client) LegacyIntegrator {
	return &LegacyService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchSales busca os itens de venda do período e normaliza as chaves
func (s *LegacyService) FetchSales(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.SaleItem, error) {
	items, err := s.Client.GetSales(ctx, params)
	if err != nil {
		return nil, err
	}

	result := make([]legacydomain.SaleItem, 0, len(items))
	for _, item := range items {
		item.Normalize()
		result = append(result, item)
	}

	logFetch("vendas", params, len(result))
	return result, nil
}

func (s *LegacyService) FetchProducts(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.Product, error) {
	products, err := s.Client.GetProducts(ctx, params)
	if err != nil {
		return nil, err
	}

	result := make([]legacydomain.Product, 0, len(products))
	for _, product := range products {
		product.Normalize()
		result = append(result, product)
	}

	logFetch("produtos", params, len(result))
	return result, nil
}

func (s *LegacyService) FetchExchanges(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.ExchangeDocument, error) {
	documents, err := s.Client.GetExchanges(ctx, params)
	if err != nil {
		return nil, err
	}

	result := make([]legacydomain.ExchangeDocument, 0, len(documents))
	for _, document := range documents {
		document.Normalize()
		result = append(result, document)
	}

	logFetch("trocas", params, len(result))
	return result, nil
}

func (s *LegacyService) FetchCollaborators(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.Collaborator, error) {
	collaborators, err := s.Client.GetCollaborators(ctx, params)
	if err != nil {
		return nil, err
	}

	result := make([]legacydomain.Collaborator, 0, len(collaborators))
	for _, collaborator := range collaborators {
		collaborator.Normalize()
		result = append(result, collaborator)
	}

	logFetch("funcionários", params, len(result))
	return result, nil
}

func (s *LegacyService) FetchStores(ctx context.Context) ([]legacydomain.Store, error) {
	stores, err := s.Client.GetStores(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]legacydomain.Store, 0, len(stores))
	for _, store := range stores {
		store.Normalize()
		result = append(result, store)
	}

	logrus.WithField("records", len(result)).Info("Lojas recebidas do legado")
	return result, nil
}

func logFetch(domain string, params legacydomain.FetchParams, records int) {
	logrus.WithFields(logrus.Fields{
		"domain":     domain,
		"start_date": params.StartDate.Format(time.DateOnly),
		"end_date":   params.EndDate.Format(time.DateOnly),
		"stores":     len(params.StoreCodes),
		"records":    records,
	}).Info("Registros recebidos do legado")
}
