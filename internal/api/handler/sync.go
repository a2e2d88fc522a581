package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-sync-api/pkg/apiErrors"
	"github.com/vfg2006/sales-sync-api/pkg/log"
	"github.com/vfg2006/sales-sync-api/pkg/utils"
)

// RunSync executa a sincronização do domínio no período informado e devolve as contagens
func RunSync(service synchronizing.Synchronizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("domain")
		syncDomain, ok := domain.ParseSyncDomain(name)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Domínio inválido. Valores aceitos: sales, exchanges, collaborators, stores", nil)
			return
		}

		var period domain.Period
		if syncDomain != domain.SyncDomainStores {
			startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
				return
			}

			endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
				return
			}

			period = domain.NewPeriod(*startDate, *endDate)
		}

		logger.WithFields(log.Fields{
			"domain":     syncDomain,
			"start_date": period.Start.Format(time.DateOnly),
			"end_date":   period.End.Format(time.DateOnly),
		}).Info("sync: execução manual solicitada")

		result, err := service.Sync(r.Context(), syncDomain, period)
		if err != nil {
			logger.WithFields(log.Fields{
				"domain": syncDomain,
				"error":  err.Error(),
			}).Error("sync: execução falhou")

			writeSyncError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}
