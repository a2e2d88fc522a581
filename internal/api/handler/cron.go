package handler

import (
	"net/http"

	"github.com/vfg2006/sales-sync-api/pkg/apiErrors"
	"github.com/vfg2006/sales-sync-api/pkg/log"
)

// CronJob é o agendador que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunCronJob dispara a sincronização agendada fora do horário
func RunCronJob(job CronJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("cron: execução manual solicitada")

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Sincronização agendada já em andamento", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Sincronização iniciada com sucesso",
		})
	})
}

// GetCronStatus retorna o status do agendador
func GetCronStatus(job CronJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, job.GetStatus())
	})
}
