package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shorts-insights-api/internal/config"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/insighting"
)

const digestTimeout = 2 * time.Minute

// ReportDigestConfig representa a configuração do agendador do resumo diário
type ReportDigestConfig struct {
	CronSchedule string
	Enabled      bool
	Days         int
	Limit        int
}

// ReportDigestService monta o relatório padrão periodicamente e registra o resumo nos logs
type ReportDigestService struct {
	scheduler         *gocron.Scheduler
	config            ReportDigestConfig
	reporter          insighting.ShortsReporter
	syncRunning       bool
	syncMutex         sync.Mutex
	lastSyncStartedAt time.Time
	lastSyncEndedAt   time.Time
	lastReportID      string
	lastWarnings      []string
	lastError         string
}

func NewReportDigestService(reporter insighting.ShortsReporter, appConfig *config.Config) *ReportDigestService {
	digestConfig := ReportDigestConfig{
		CronSchedule: appConfig.ReportDigest.CronSchedule,
		Enabled:      appConfig.ReportDigest.Enabled,
		Days:         appConfig.ReportDigest.Days,
		Limit:        appConfig.ReportDigest.Limit,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"cron_enabled":  digestConfig.Enabled,
		"cron_days":     digestConfig.Days,
		"cron_limit":    digestConfig.Limit,
	}).Info("scheduler: configuração do resumo de relatório carregada")

	return &ReportDigestService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    digestConfig,
		reporter:  reporter,
	}
}

// Start inicia o agendador
func (s *ReportDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("scheduler: resumo de relatório desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando agendador do resumo de relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDigest()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo de relatório: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: parando agendador do resumo de relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// runDigest ignora disparos concorrentes; só um resumo roda por vez
func (s *ReportDigestService) runDigest() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: resumo de relatório já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	report, err := s.reporter.BuildReport(ctx, domain.ReportFilters{
		Days:             s.config.Days,
		Limit:            s.config.Limit,
		RequestedVideoID: domain.AllVideos,
	})

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncEndedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("scheduler: falha ao montar resumo de relatório")
		return
	}

	s.lastError = ""
	s.lastReportID = report.ReportID
	s.lastWarnings = report.Warnings

	logDigest(report)
}

func logDigest(report *domain.Report) {
	fields := logrus.Fields{
		"report_id":   report.ReportID,
		"channel_id":  report.ChannelID,
		"start_date":  report.Window.StartDate,
		"end_date":    report.Window.EndDate,
		"short_count": report.Summary.ShortCount,
		"views":       report.Summary.Views,
		"impressions": report.Summary.Impressions,
		"scanned":     report.ScannedVideos,
		"warnings":    len(report.Warnings),
		"insights":    len(report.Summary.Insights),
	}
	if report.Summary.AvgCTR != nil {
		fields["avg_ctr"] = *report.Summary.AvgCTR
	}
	if report.Summary.AvgViewPercent != nil {
		fields["avg_view_percent"] = *report.Summary.AvgViewPercent
	}

	logrus.WithFields(fields).Info("scheduler: resumo de relatório concluído")

	for _, insight := range report.Summary.Insights {
		logrus.WithField("report_id", report.ReportID).Info("scheduler: insight - " + insight)
	}
	for _, warning := range report.Warnings {
		logrus.WithField("report_id", report.ReportID).Warn("scheduler: aviso - " + warning)
	}
}

// TriggerManualSync dispara o resumo fora do agendamento
func (s *ReportDigestService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: resumo de relatório já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("scheduler: iniciando resumo de relatório manual")
	go s.runDigest()
}

// GetStatus retorna o status atual do resumo
func (s *ReportDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":         s.syncRunning,
		"sync_cron":            s.config.CronSchedule,
		"sync_enabled":         s.config.Enabled,
		"last_sync_started_at": s.lastSyncStartedAt,
		"last_sync_ended_at":   s.lastSyncEndedAt,
		"last_report_id":       s.lastReportID,
		"last_warnings":        s.lastWarnings,
		"last_error":           s.lastError,
	}
}
