package synchronizing

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/internal/domain"
)

var (
	salesOriginCategories = []string{
		domain.OriginCategoryPDV,
		domain.OriginCategoryDANFE,
		domain.OriginCategoryExchange,
	}
	salesOperationCategories    = []string{domain.OperationCategorySell, domain.OperationCategoryExchange}
	exchangeOriginCategories    = []string{domain.OriginCategoryExchange}
	exchangeOperationCategories = []string{domain.OperationCategoryExchange}
)

// filters são relidos a cada execução; códigos novos cadastrados entre execuções já valem na próxima
type filters struct {
	stores     []*domain.Store
	origins    []*domain.ReferenceCode
	operations []*domain.ReferenceCode
}

func (s *Service) prepareFilters(ctx context.Context, withReferences bool) (*filters, error) {
	stores, err := s.repos.Stores.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar lojas")
	}

	f := &filters{stores: stores}
	if !withReferences {
		return f, nil
	}

	f.origins, err = s.repos.References.ListOriginCodes(ctx, salesOriginCategories...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar códigos de origem")
	}

	f.operations, err = s.repos.References.ListOperationCodes(ctx, salesOperationCategories...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar códigos de operação")
	}

	return f, nil
}

// params monta os filtros da consulta ao legado para as categorias pedidas.
// Uma categoria sem nenhum código cadastrado interrompe a execução.
func (f *filters) params(period domain.Period, originCategories, operationCategories []string) (legacydomain.FetchParams, error) {
	params := legacydomain.FetchParams{
		StartDate:  period.Start,
		EndDate:    period.End,
		StoreCodes: domain.StoreCodes(f.stores),
	}

	if len(originCategories) > 0 {
		params.OriginCodes = codesOf(f.origins, originCategories)
		if len(params.OriginCodes) == 0 {
			return params, errors.Wrapf(ErrMissingReferenceCodes, "origem (%s)", strings.Join(originCategories, ", "))
		}
	}

	if len(operationCategories) > 0 {
		params.OperationCodes = codesOf(f.operations, operationCategories)
		if len(params.OperationCodes) == 0 {
			return params, errors.Wrapf(ErrMissingReferenceCodes, "operação (%s)", strings.Join(operationCategories, ", "))
		}
	}

	return params, nil
}

// originCategories indexa a categoria de cada código de origem para a montagem dos diários
func (f *filters) originCategories() map[string]string {
	return domain.CategoryByCode(f.origins)
}

func codesOf(refs []*domain.ReferenceCode, categories []string) []string {
	wanted := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		wanted[category] = struct{}{}
	}

	selected := make([]*domain.ReferenceCode, 0, len(refs))
	for _, ref := range refs {
		if _, ok := wanted[ref.Category]; ok {
			selected = append(selected, ref)
		}
	}

	return domain.ReferenceCodes(selected)
}
