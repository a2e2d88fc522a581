package synchronizing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/pkg/log"
)

// counts acumula as contagens de uma execução; vira SyncRunResult somente após o commit
type counts struct {
	created int
	updated int
	skipped int
}

func (c counts) apply(result *domain.SyncRunResult) {
	result.Created = c.created
	result.Updated = c.updated
	result.Skipped = c.skipped
}

func (s *Service) SyncSales(ctx context.Context, period domain.Period) (*domain.SyncRunResult, error) {
	syncDomain := domain.SyncDomainSales

	ctx, release, err := s.begin(ctx, syncDomain, &period)
	if err != nil {
		return nil, err
	}
	defer release()

	logger := log.ForContext(ctx).WithField("domain", syncDomain)
	logger.Infof("Iniciando sincronização de vendas de %s a %s", period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))

	f, err := s.prepareFilters(ctx, true)
	if err != nil {
		return nil, runFailed(err, ErrFilters, syncDomain)
	}

	result := s.newResult(syncDomain, period, len(f.stores))
	if len(f.stores) == 0 {
		logger.Warn("Nenhuma loja cadastrada, sincronização de vendas ignorada")
		result.ProcessedAt = s.now().UTC()
		return result, nil
	}

	params, err := f.params(period, salesOriginCategories, salesOperationCategories)
	if err != nil {
		return nil, NewSyncError(ErrMissingReferenceCodes, CodeMissingReferences, syncDomain, err.Error())
	}

	items, err := s.legacy.FetchSales(ctx, params)
	if err != nil {
		return nil, gatewayError(err, syncDomain)
	}

	products, err := s.legacy.FetchProducts(ctx, params)
	if err != nil {
		return nil, gatewayError(err, syncDomain)
	}

	var c counts
	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context) error {
		persisted, err := s.persistSales(ctx, items)
		if err != nil {
			return runFailed(err, ErrPersistence, syncDomain)
		}
		c = persisted

		if err := s.persistProducts(ctx, products); err != nil {
			return runFailed(err, ErrPersistence, syncDomain)
		}

		if err := s.rebuildDaily(ctx, f, period); err != nil {
			return runFailed(err, ErrRollup, syncDomain)
		}

		if err := s.maintainer.Rollup(ctx, f.stores, period); err != nil {
			return runFailed(err, ErrRollup, syncDomain)
		}

		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Sincronização de vendas falhou, nenhuma alteração gravada")
		return nil, err
	}

	c.apply(result)
	result.ProcessedAt = s.now().UTC()

	logger.WithFields(log.Fields{
		"fetched": len(items),
		"created": result.Created,
		"skipped": result.Skipped,
		"stores":  result.StoresProcessed,
	}).Info("Sincronização de vendas concluída")

	return result, nil
}

// persistSales grava apenas itens com chave ausente. Itens existentes, repetidos no lote,
// malformados ou inseridos por outro escritor no meio do caminho contam como ignorados.
func (s *Service) persistSales(ctx context.Context, items []legacydomain.SaleItem) (counts, error) {
	var c counts

	existing, err := s.repos.Sales.ExistingKeys(ctx, UniqueKeys(items, saleKeyOf))
	if err != nil {
		return c, errors.Wrap(err, "erro ao consultar vendas existentes")
	}

	classified := Classify(items, saleKeyOf, existing)
	c.skipped = classified.Skipped()

	records := make([]*domain.SaleRecord, 0, len(classified.New))
	for _, item := range classified.New {
		record, err := mapSale(item)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"sale_code":        item.SaleCode.String(),
				"product_ref_code": item.ProductRefCode.String(),
				"item_sequence":    item.ItemSequence.String(),
			}).WithError(err).Warn("Item de venda malformado ignorado")
			c.skipped++
			continue
		}
		records = append(records, record)
	}

	inserted, err := s.repos.Sales.InsertBatch(ctx, records)
	if err != nil {
		return c, errors.Wrap(err, "erro ao inserir vendas")
	}

	c.created = int(inserted)
	c.skipped += len(records) - int(inserted)

	return c, nil
}

// persistProducts insere produtos ainda ausentes; o primeiro cadastro gravado prevalece
func (s *Service) persistProducts(ctx context.Context, products []legacydomain.Product) error {
	existing, err := s.repos.Products.ExistingRefCodes(ctx, UniqueKeys(products, productKeyOf))
	if err != nil {
		return errors.Wrap(err, "erro ao consultar produtos existentes")
	}

	classified := Classify(products, productKeyOf, existing)
	skipped := classified.Skipped()

	records := make([]*domain.Product, 0, len(classified.New))
	for _, product := range classified.New {
		record, err := mapProduct(product)
		if err != nil {
			logrus.WithField("product_ref_code", product.ProductRefCode.String()).WithError(err).Warn("Produto malformado ignorado")
			skipped++
			continue
		}
		records = append(records, record)
	}

	inserted, err := s.repos.Products.InsertBatch(ctx, records)
	if err != nil {
		return errors.Wrap(err, "erro ao inserir produtos")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"fetched": len(products),
		"created": inserted,
		"skipped": skipped + len(records) - int(inserted),
	}).Info("Produtos sincronizados")

	return nil
}
