package insighting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/ytclient"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/pkg/utils"
)

// Service monta o relatório de shorts a partir do YouTube.
type Service struct {
	tokens  ytclient.TokenProvider
	youtube youtube.Integrator
	now     func() time.Time
	newID   func() (string, error)
}

// NewService cria uma nova instância do serviço de relatório
func NewService(tokens ytclient.TokenProvider, integrator youtube.Integrator) *Service {
	return &Service{
		tokens:  tokens,
		youtube: integrator,
		now:     time.Now,
		newID:   utils.GenerateReportID,
	}
}

// BuildReport executa o fluxo completo:
// token → canal → catálogo → métricas por vídeo → enriquecimento/ranking →
// seleção → {tendência do canal ∥ tendência do vídeo selecionado}.
func (s *Service) BuildReport(ctx context.Context, filters domain.ReportFilters) (*domain.Report, error) {
	filters = filters.Normalize()

	logger := logrus.WithFields(logrus.Fields{
		"days":     filters.Days,
		"limit":    filters.Limit,
		"video_id": filters.RequestedVideoID,
	})

	token, err := s.tokens.GetAccessToken(ctx)
	if err != nil {
		logger.WithError(err).Error("report: failed to obtain YouTube access token")
		return nil, NewReportError(StageToken, err)
	}

	generatedAt := s.now().UTC()
	startDate, endDate := utils.DateWindow(generatedAt, filters.Days)
	window := domain.ReportWindow{
		Days:             filters.Days,
		StartDate:        startDate,
		EndDate:          endDate,
		Limit:            filters.Limit,
		RequestedVideoID: filters.RequestedVideoID,
	}

	channel, err := s.youtube.FetchChannel(ctx)
	if err != nil {
		return nil, NewReportError(StageChannel, err)
	}

	candidates, err := s.youtube.FetchShortVideos(ctx, channel.UploadsPlaylistID, filters.ScanTarget())
	if err != nil {
		return nil, NewReportError(StageCatalog, err)
	}

	warnings := make([]string, 0)

	videoMetrics := s.youtube.FetchVideoMetrics(ctx, window)
	if videoMetrics.Failed() {
		warnings = append(warnings, videoMetrics.Warning)
	}

	rows := FilterRowsForCandidates(videoMetrics.Rows, candidates)
	shortlist := RankShorts(EnrichShorts(candidates, rows), filters.Limit)
	for i := range shortlist {
		shortlist[i].RelativeScore = shortlist[i].Health.RelativeScore()
	}

	selection := ResolveSelection(filters.RequestedVideoID, shortlist)
	if selection.Warning != "" {
		warnings = append(warnings, selection.Warning)
	}

	channelTrend, selectedTrend := s.fetchTrends(ctx, window, selection)
	if channelTrend.Failed() {
		warnings = append(warnings, channelTrend.Warning)
	}
	if selectedTrend.Failed() {
		warnings = append(warnings, selectedTrend.Warning)
	}

	channelPoints := BuildTrend(channelTrend.Rows)
	summary := BuildSummary(shortlist, channelPoints)

	reportID, err := s.newID()
	if err != nil {
		logger.WithError(err).Error("report: failed to generate report id")
		return nil, NewReportError(StageReport, err)
	}

	report := &domain.Report{
		ReportID:           reportID,
		GeneratedAt:        generatedAt,
		Window:             window,
		Source:             token.Source,
		ChannelID:          channel.ID,
		ChannelName:        channel.Name,
		Summary:            summary,
		Videos:             shortlist,
		ChannelTrend:       channelPoints,
		SelectedVideo:      selection.Video,
		SelectedVideoTrend: BuildTrend(selectedTrend.Rows),
		SelectedVideoID:    selection.VideoID(),
		ScannedVideos:      len(candidates),
		Warnings:           warnings,
	}

	logger.WithFields(logrus.Fields{
		"report_id":  report.ReportID,
		"channel_id": report.ChannelID,
		"scanned":    report.ScannedVideos,
		"shortlist":  len(report.Videos),
		"selection":  selection.State,
		"warnings":   len(report.Warnings),
	}).Info("report: shorts report built")

	return report, nil
}

// fetchTrends busca as duas séries diárias em paralelo. A do vídeo só é
// consultada quando há seleção.
func (s *Service) fetchTrends(ctx context.Context, window domain.ReportWindow, selection domain.Selection) (domain.MetricsResult, domain.MetricsResult) {
	var channelTrend, selectedTrend domain.MetricsResult

	var wg conc.WaitGroup
	wg.Go(func() {
		channelTrend = s.youtube.FetchChannelTrend(ctx, window)
	})
	if selection.Video != nil {
		videoID := selection.Video.VideoID
		wg.Go(func() {
			selectedTrend = s.youtube.FetchVideoTrend(ctx, window, videoID)
		})
	}
	wg.Wait()

	return channelTrend, selectedTrend
}
