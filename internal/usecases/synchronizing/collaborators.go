package synchronizing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/pkg/log"
)

func (s *Service) SyncCollaborators(ctx context.Context, period domain.Period) (*domain.SyncRunResult, error) {
	syncDomain := domain.SyncDomainCollaborators

	ctx, release, err := s.begin(ctx, syncDomain, &period)
	if err != nil {
		return nil, err
	}
	defer release()

	logger := log.ForContext(ctx).WithField("domain", syncDomain)

	f, err := s.prepareFilters(ctx, false)
	if err != nil {
		return nil, runFailed(err, ErrFilters, syncDomain)
	}

	result := s.newResult(syncDomain, period, len(f.stores))
	if len(f.stores) == 0 {
		logger.Warn("Nenhuma loja cadastrada, sincronização de funcionários ignorada")
		result.ProcessedAt = s.now().UTC()
		return result, nil
	}

	params, err := f.params(period, nil, nil)
	if err != nil {
		return nil, NewSyncError(ErrMissingReferenceCodes, CodeMissingReferences, syncDomain, err.Error())
	}

	collaborators, err := s.legacy.FetchCollaborators(ctx, params)
	if err != nil {
		return nil, gatewayError(err, syncDomain)
	}

	var c counts
	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context) error {
		persisted, err := s.persistCollaborators(ctx, collaborators)
		if err != nil {
			return runFailed(err, ErrPersistence, syncDomain)
		}
		c = persisted
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Sincronização de funcionários falhou, nenhuma alteração gravada")
		return nil, err
	}

	c.apply(result)
	result.ProcessedAt = s.now().UTC()

	logger.WithFields(log.Fields{
		"fetched": len(collaborators),
		"created": result.Created,
		"updated": result.Updated,
		"skipped": result.Skipped,
	}).Info("Sincronização de funcionários concluída")

	return result, nil
}

func (s *Service) persistCollaborators(ctx context.Context, collaborators []legacydomain.Collaborator) (counts, error) {
	var c counts

	existing, err := s.repos.Collaborators.ExistingKeys(ctx, UniqueKeys(collaborators, collaboratorKeyOf))
	if err != nil {
		return c, errors.Wrap(err, "erro ao consultar funcionários existentes")
	}

	classified := Classify(collaborators, collaboratorKeyOf, existing)
	c.skipped = len(classified.Duplicated)

	toWrite := append(classified.New, classified.Existing...)
	records := make([]*domain.Collaborator, 0, len(toWrite))
	for _, collaborator := range toWrite {
		record, err := mapCollaborator(collaborator)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"employee_code": collaborator.EmployeeCode.String(),
				"store_code":    collaborator.StoreCode.String(),
			}).WithError(err).Warn("Funcionário malformado ignorado")
			c.skipped++
			continue
		}
		records = append(records, record)
	}

	inserted, updated, err := s.repos.Collaborators.Upsert(ctx, records)
	if err != nil {
		return c, errors.Wrap(err, "erro ao gravar funcionários")
	}

	c.created = inserted
	c.updated = updated

	return c, nil
}
