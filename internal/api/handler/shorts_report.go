package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/shorts-insights-api/pkg/apiErrors"
	"github.com/vfg2006/shorts-insights-api/pkg/log"
	"github.com/vfg2006/shorts-insights-api/pkg/utils"
)

// parseReportFilters nunca rejeita a requisição: valores inválidos caem no padrão.
func parseReportFilters(r *http.Request) domain.ReportFilters {
	query := r.URL.Query()

	videoID := strings.TrimSpace(query.Get("videoId"))
	if videoID == "" {
		videoID = domain.AllVideos
	}

	return domain.ReportFilters{
		Days:             utils.ParseIntInRange(query.Get("days"), domain.DefaultReportDays, 1, domain.MaxReportDays),
		Limit:            utils.ParseIntInRange(query.Get("limit"), domain.DefaultReportLimit, 1, domain.MaxReportLimit),
		RequestedVideoID: videoID,
	}
}

func GetShortsReport(service insighting.ShortsReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := parseReportFilters(r)

		logger.WithFields(log.Fields{
			"days":     filters.Days,
			"limit":    filters.Limit,
			"video_id": filters.RequestedVideoID,
		}).Info("shorts: building report")

		report, err := service.BuildReport(r.Context(), filters)
		if err != nil {
			reportErr, ok := insighting.AsReportError(err)
			if !ok {
				reportErr = insighting.NewReportError(insighting.StageReport, err)
			}

			logger.WithFields(log.Fields{
				"stage": reportErr.Stage,
				"error": err.Error(),
			}).Error("shorts: report failed")

			apiErrors.WriteError(w, reportErr.Code, reportErr.Message, nil)
			return
		}

		if len(report.Warnings) > 0 {
			logger.WithFields(log.Fields{
				"report_id": report.ReportID,
				"warnings":  len(report.Warnings),
			}).Warn("shorts: report built with warnings")
		}

		writeJSON(w, http.StatusOK, report)
	})
}
