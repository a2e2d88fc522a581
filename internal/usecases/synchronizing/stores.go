package synchronizing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/pkg/log"
)

// SyncStores traz o cadastro de lojas do legado. Lojas inativadas lá continuam gravadas
// aqui, apenas com active=false, e deixam de entrar nos filtros das demais execuções.
func (s *Service) SyncStores(ctx context.Context) (*domain.SyncRunResult, error) {
	syncDomain := domain.SyncDomainStores

	ctx, release, err := s.begin(ctx, syncDomain, nil)
	if err != nil {
		return nil, err
	}
	defer release()

	logger := log.ForContext(ctx).WithField("domain", syncDomain)

	stores, err := s.legacy.FetchStores(ctx)
	if err != nil {
		return nil, gatewayError(err, syncDomain)
	}

	var c counts
	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context) error {
		persisted, err := s.persistStores(ctx, stores)
		if err != nil {
			return runFailed(err, ErrPersistence, syncDomain)
		}
		c = persisted
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Sincronização de lojas falhou, nenhuma alteração gravada")
		return nil, err
	}

	result := s.newResult(syncDomain, domain.Period{}, c.created+c.updated)
	c.apply(result)
	result.ProcessedAt = s.now().UTC()

	logger.WithFields(log.Fields{
		"fetched": len(stores),
		"created": result.Created,
		"updated": result.Updated,
		"skipped": result.Skipped,
	}).Info("Sincronização de lojas concluída")

	return result, nil
}

func (s *Service) persistStores(ctx context.Context, stores []legacydomain.Store) (counts, error) {
	var c counts

	existing, err := s.repos.Stores.ListCodesMap(ctx)
	if err != nil {
		return c, errors.Wrap(err, "erro ao consultar lojas existentes")
	}

	classified := Classify(stores, storeKeyOf, existing)
	c.skipped = len(classified.Duplicated)

	toWrite := append(classified.New, classified.Existing...)
	records := make([]*domain.Store, 0, len(toWrite))
	for _, store := range toWrite {
		record, err := mapStore(store)
		if err != nil {
			logrus.WithField("store_code", store.Code.String()).WithError(err).Warn("Loja malformada ignorada")
			c.skipped++
			continue
		}
		records = append(records, record)
	}

	inserted, updated, err := s.repos.Stores.Upsert(ctx, records)
	if err != nil {
		return c, errors.Wrap(err, "erro ao gravar lojas")
	}

	c.created = inserted
	c.updated = updated

	return c, nil
}
