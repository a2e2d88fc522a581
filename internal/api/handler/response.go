package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-sync-api/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-sync-api/pkg/apiErrors"
	"github.com/vfg2006/sales-sync-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeSyncError traduz o código da execução para o status HTTP correspondente
func writeSyncError(w http.ResponseWriter, err error) {
	var syncErr *synchronizing.SyncError
	if !errors.As(err, &syncErr) {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		return
	}

	details := map[string]any{
		"domain":    syncErr.Domain,
		"retriable": syncErr.Retriable,
	}
	if syncErr.Details != "" {
		details["details"] = syncErr.Details
	}

	apiErrors.WriteError(w, syncErr.Code, syncErr.Err.Error(), details)
}
