package synchronizing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/internal/observation"
	"github.com/vfg2006/sales-sync-api/pkg/log"
)

func (s *Service) SyncExchanges(ctx context.Context, period domain.Period) (*domain.SyncRunResult, error) {
	syncDomain := domain.SyncDomainExchanges

	ctx, release, err := s.begin(ctx, syncDomain, &period)
	if err != nil {
		return nil, err
	}
	defer release()

	logger := log.ForContext(ctx).WithField("domain", syncDomain)
	logger.Infof("Iniciando sincronização de trocas de %s a %s", period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))

	f, err := s.prepareFilters(ctx, true)
	if err != nil {
		return nil, runFailed(err, ErrFilters, syncDomain)
	}

	result := s.newResult(syncDomain, period, len(f.stores))
	if len(f.stores) == 0 {
		logger.Warn("Nenhuma loja cadastrada, sincronização de trocas ignorada")
		result.ProcessedAt = s.now().UTC()
		return result, nil
	}

	params, err := f.params(period, exchangeOriginCategories, exchangeOperationCategories)
	if err != nil {
		return nil, NewSyncError(ErrMissingReferenceCodes, CodeMissingReferences, syncDomain, err.Error())
	}

	documents, err := s.legacy.FetchExchanges(ctx, params)
	if err != nil {
		return nil, gatewayError(err, syncDomain)
	}

	var c counts
	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context) error {
		persisted, err := s.persistExchanges(ctx, documents)
		if err != nil {
			return runFailed(err, ErrPersistence, syncDomain)
		}
		c = persisted

		if err := s.rebuildDaily(ctx, f, period); err != nil {
			return runFailed(err, ErrRollup, syncDomain)
		}

		if err := s.maintainer.Rollup(ctx, f.stores, period); err != nil {
			return runFailed(err, ErrRollup, syncDomain)
		}

		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Sincronização de trocas falhou, nenhuma alteração gravada")
		return nil, err
	}

	c.apply(result)
	result.ProcessedAt = s.now().UTC()

	logger.WithFields(log.Fields{
		"fetched": len(documents),
		"created": result.Created,
		"updated": result.Updated,
		"skipped": result.Skipped,
	}).Info("Sincronização de trocas concluída")

	return result, nil
}

// persistExchanges regrava trocas existentes por inteiro, pois a observação pode ter sido
// corrigida no legado. O vínculo com a nova venda é extraído antes da classificação.
func (s *Service) persistExchanges(ctx context.Context, documents []legacydomain.ExchangeDocument) (counts, error) {
	var c counts

	parsed := make([]parsedExchange, 0, len(documents))
	for _, document := range documents {
		parsed = append(parsed, parsedExchange{
			document: document,
			linkage:  observation.Parse(document.Observation.String()),
		})
	}

	existing, err := s.repos.Exchanges.ExistingKeys(ctx, UniqueKeys(parsed, exchangeKeyOf))
	if err != nil {
		return c, errors.Wrap(err, "erro ao consultar trocas existentes")
	}

	classified := Classify(parsed, exchangeKeyOf, existing)
	c.skipped = len(classified.Duplicated)

	toWrite := append(classified.New, classified.Existing...)
	records := make([]*domain.ExchangeRecord, 0, len(toWrite))
	for _, exchange := range toWrite {
		record, err := mapExchange(exchange)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"document_code": exchange.document.DocumentCode.String(),
				"store_code":    exchange.document.StoreCode.String(),
			}).WithError(err).Warn("Troca malformada ignorada")
			c.skipped++
			continue
		}
		records = append(records, record)
	}

	inserted, updated, err := s.repos.Exchanges.Upsert(ctx, records)
	if err != nil {
		return c, errors.Wrap(err, "erro ao gravar trocas")
	}

	c.created = inserted
	c.updated = updated

	return c, nil
}
