package legacyclient

import (
	"context"

	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
)

const (
	salesPath         = "/integracoes/vendas/itens"
	productsPath      = "/integracoes/produtos"
	exchangesPath     = "/integracoes/trocas"
	collaboratorsPath = "/integracoes/funcionarios"
	storesPath        = "/integracoes/lojas"
)

func (c *LegacyClient) GetSales(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.SaleItem, error) {
	var response []legacydomain.SaleItem
	if err := c.post(ctx, salesPath, newPeriodRequest(params), &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *LegacyClient) GetProducts(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.Product, error) {
	var response []legacydomain.Product
	if err := c.post(ctx, productsPath, newPeriodRequest(params), &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *LegacyClient) GetExchanges(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.ExchangeDocument, error) {
	var response []legacydomain.ExchangeDocument
	if err := c.post(ctx, exchangesPath, newPeriodRequest(params), &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *LegacyClient) GetCollaborators(ctx context.Context, params legacydomain.FetchParams) ([]legacydomain.Collaborator, error) {
	var response []legacydomain.Collaborator
	if err := c.post(ctx, collaboratorsPath, newPeriodRequest(params), &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *LegacyClient) GetStores(ctx context.Context) ([]legacydomain.Store, error) {
	var response []legacydomain.Store
	if err := c.post(ctx, storesPath, struct{}{}, &response); err != nil {
		return nil, err
	}
	return response, nil
}
