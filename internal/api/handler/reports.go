package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-sync-api/pkg/apiErrors"
	"github.com/vfg2006/sales-sync-api/pkg/log"
	"github.com/vfg2006/sales-sync-api/pkg/utils"
)

func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, reporting.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, reporting.ErrInvalidFilters):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("reports: erro ao consultar dados")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados", nil)
	}
}

// parsePeriodQuery lê start_date e end_date; datas ausentes ficam zeradas
func parsePeriodQuery(r *http.Request) (time.Time, time.Time, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return *startDate, *endDate, nil
}

func ListStores(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stores, err := service.ListStores(r.Context())
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, stores)
	})
}

func DailyReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startDate, endDate, err := parsePeriodQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		report, err := service.DailyReport(r.Context(), domain.SalesReportFilters{
			StoreCode: r.URL.Query().Get("store_code"),
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func MonthlyReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, err := utils.ParseYear(r.URL.Query().Get("year"), time.Now().Year())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		report, err := service.MonthlyReport(r.Context(), r.URL.Query().Get("store_code"), year)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func YearlyReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		currentYear := time.Now().Year()

		startYear, err := utils.ParseYear(r.URL.Query().Get("start_year"), currentYear)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_year inválido", nil)
			return
		}

		endYear, err := utils.ParseYear(r.URL.Query().Get("end_year"), currentYear)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_year inválido", nil)
			return
		}

		report, err := service.YearlyReport(r.Context(), domain.SalesReportFilters{
			StoreCode: r.URL.Query().Get("store_code"),
			StartYear: startYear,
			EndYear:   endYear,
		})
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

// ConsistencyReport expõe as divergências entre as camadas; nada é corrigido aqui
func ConsistencyReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, err := utils.ParseYear(r.URL.Query().Get("year"), time.Now().Year())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		mismatches, err := service.VerifyConsistency(r.Context(), year)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"year":       year,
			"consistent": len(mismatches) == 0,
			"mismatches": mismatches,
		})
	})
}

func ListExchanges(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startDate, endDate, err := parsePeriodQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		exchanges, err := service.ListExchanges(r.Context(), domain.ExchangeFilters{
			StoreCode: r.URL.Query().Get("store_code"),
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, exchanges)
	})
}
