package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shorts-insights-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReportDigest = "report-digest"
	CronJobTypeAll          = "all"
)

// CronJob é o contrato mínimo de um job agendado disparável pela API
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	ReportDigestService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReportDigest, CronJobTypeAll:
			if services.ReportDigestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de resumo de relatório não disponível", nil)
				return
			}
			services.ReportDigestService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report-digest, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.ReportDigestService != nil {
			status[CronJobTypeReportDigest] = services.ReportDigestService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
