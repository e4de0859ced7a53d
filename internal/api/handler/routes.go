package handler

import (
	"net/http"

	"github.com/vfg2006/shorts-insights-api/internal/api/handler/router"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/shorts-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Shorts expõe o relatório. /api/youtube-analytics é mantido para o dashboard antigo.
func Shorts(service insighting.ShortsReporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/shorts/report",
			Method:      http.MethodGet,
			Handler:     GetShortsReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoCache()},
		},
		{
			Path:        "/api/youtube-analytics",
			Method:      http.MethodGet,
			Handler:     GetShortsReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoCache()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoCache()},
		},
	}
}
