package scheduler

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-sync-api/internal/config"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-sync-api/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-sync-api/pkg/log"
)

// LegacySyncConfig representa a configuração do agendador de sincronização com o legado
type LegacySyncConfig struct {
	CronSchedule string
	LookbackDays int
	Domains      []domain.SyncDomain
	SyncEnabled  bool
}

// LegacySyncService agenda as sincronizações diárias com o legado
type LegacySyncService struct {
	scheduler    *gocron.Scheduler
	config       LegacySyncConfig
	synchronizer synchronizing.Synchronizer
	reporter     reporting.Reporter
	now          func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResults         map[domain.SyncDomain]*domain.SyncRunResult
	lastErrors          map[domain.SyncDomain]string
}

func NewLegacySyncService(
	synchronizer synchronizing.Synchronizer,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *LegacySyncService {
	syncConfig := LegacySyncConfig{
		CronSchedule: appConfig.LegacySync.CronSchedule,
		LookbackDays: appConfig.LegacySync.LookbackDays,
		Domains:      parseDomains(appConfig.LegacySync.Domains),
		SyncEnabled:  appConfig.LegacySync.Enabled,
	}

	if syncConfig.LookbackDays < 1 {
		syncConfig.LookbackDays = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"domains":       syncConfig.Domains,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização com o legado carregada")

	return &LegacySyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		synchronizer: synchronizer,
		reporter:     reporter,
		now:          time.Now,
		lastResults:  make(map[domain.SyncDomain]*domain.SyncRunResult),
		lastErrors:   make(map[domain.SyncDomain]string),
	}
}

// parseDomains mantém a ordem configurada e descarta nomes desconhecidos
func parseDomains(names []string) []domain.SyncDomain {
	domains := make([]domain.SyncDomain, 0, len(names))
	for _, name := range names {
		syncDomain, ok := domain.ParseSyncDomain(name)
		if !ok {
			logrus.WithField("domain", name).Warn("Domínio de sincronização desconhecido na configuração, ignorando")
			continue
		}
		domains = append(domains, syncDomain)
	}
	return domains
}

// Start inicia o agendador
func (s *LegacySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização com o legado desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização com o legado")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização com o legado: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização com o legado")
		s.scheduler.Stop()
	}()

	return nil
}

// Window retorna a janela de reprocessamento: [hoje - lookback, ontem]
func (s *LegacySyncService) Window() domain.Period {
	today := domain.DateOnly(s.now())
	return domain.NewPeriod(today.AddDate(0, 0, -s.config.LookbackDays), today.AddDate(0, 0, -1))
}

func (s *LegacySyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *LegacySyncService) finish() {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
}

func (s *LegacySyncService) syncAll(ctx context.Context) {
	if !s.tryStart() {
		logrus.Info("Sincronização com o legado já em andamento, ignorando")
		return
	}
	s.run(ctx)
}

// run sincroniza os domínios configurados em sequência. A falha de um domínio
// não impede os seguintes; a próxima execução reprocessa a janela inteira.
func (s *LegacySyncService) run(ctx context.Context) {
	defer s.finish()

	ctx, correlationID := log.WithCorrelationID(ctx)
	window := s.Window()
	startTime := time.Now()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"start_date": window.Start.Format(time.DateOnly),
		"end_date":   window.End.Format(time.DateOnly),
		"domains":    s.config.Domains,
	})
	logger.Info("Iniciando sincronização agendada com o legado")

	for _, syncDomain := range s.config.Domains {
		if ctx.Err() != nil {
			logger.Warn("Sincronização agendada interrompida")
			return
		}

		result, err := s.synchronizer.Sync(ctx, syncDomain, window)
		s.record(syncDomain, result, err)
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"domain":    syncDomain,
				"retriable": synchronizing.IsRetriable(err),
				"error":     err.Error(),
			}).Error("Erro na sincronização agendada do domínio")
			continue
		}

		if syncDomain == domain.SyncDomainSales {
			s.verifyConsistency(ctx, window)
		}
	}

	logger.WithFields(log.Fields{
		"correlation_id": correlationID,
		"duration":       time.Since(startTime).String(),
	}).Info("Sincronização agendada com o legado concluída")
}

func (s *LegacySyncService) record(syncDomain domain.SyncDomain, result *domain.SyncRunResult, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastErrors[syncDomain] = err.Error()
		return
	}
	delete(s.lastErrors, syncDomain)
	s.lastResults[syncDomain] = result
}

// verifyConsistency confere as três camadas dos anos tocados; divergências só são registradas
func (s *LegacySyncService) verifyConsistency(ctx context.Context, window domain.Period) {
	for _, year := range window.Years() {
		mismatches, err := s.reporter.VerifyConsistency(ctx, year)
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"year":  year,
				"error": err.Error(),
			}).Error("Erro ao verificar consistência dos agregados")
			continue
		}

		if len(mismatches) > 0 {
			log.ForContext(ctx).WithFields(log.Fields{
				"year":       year,
				"mismatches": len(mismatches),
			}).Error("Agregados inconsistentes após a sincronização de vendas")
		}
	}
}

// TriggerManualSync dispara a sincronização fora do horário agendado.
// Retorna false quando já existe uma execução em andamento.
func (s *LegacySyncService) TriggerManualSync() bool {
	if !s.tryStart() {
		logrus.Info("Sincronização com o legado já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual com o legado")
	go s.run(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *LegacySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_domains":           s.config.Domains,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_results":           maps.Clone(s.lastResults),
		"last_errors":            maps.Clone(s.lastErrors),
	}
}
