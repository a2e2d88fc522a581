package handler

import (
	"net/http"

	"github.com/vfg2006/sales-sync-api/internal/api/handler/router"
	"github.com/vfg2006/sales-sync-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-sync-api/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-sync-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Sync(service synchronizing.Synchronizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/:domain",
			Method:      http.MethodPost,
			Handler:     RunSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores",
			Method:      http.MethodGet,
			Handler:     ListStores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/daily",
			Method:      http.MethodGet,
			Handler:     DailyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/monthly",
			Method:      http.MethodGet,
			Handler:     MonthlyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/yearly",
			Method:      http.MethodGet,
			Handler:     YearlyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/consistency",
			Method:      http.MethodGet,
			Handler:     ConsistencyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/exchanges",
			Method:      http.MethodGet,
			Handler:     ListExchanges(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(job CronJob) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(job),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(job),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}
