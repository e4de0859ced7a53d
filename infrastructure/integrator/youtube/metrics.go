package youtube

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
)

const (
	shortMetricsLabel  = "Short metrics query"
	channelTrendLabel  = "Channel trend query"
	videoTrendLabelFmt = "Selected video trend query (%s)"
)

// FetchVideoMetrics busca os totais por vídeo da janela.
func (s *YouTubeIntegrator) FetchVideoMetrics(ctx context.Context, window domain.ReportWindow) domain.MetricsResult {
	return s.safeQuery(ctx, shortMetricsLabel, ytdomain.ReportQuery{
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
		Dimension: ytdomain.DimensionVideo,
		Metrics:   ytdomain.ReportMetrics,
	})
}

// FetchChannelTrend busca a série diária do canal.
func (s *YouTubeIntegrator) FetchChannelTrend(ctx context.Context, window domain.ReportWindow) domain.MetricsResult {
	return s.safeQuery(ctx, channelTrendLabel, ytdomain.ReportQuery{
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
		Dimension: ytdomain.DimensionDay,
		Metrics:   ytdomain.ReportMetrics,
	})
}

// FetchVideoTrend busca a série diária de um único vídeo.
func (s *YouTubeIntegrator) FetchVideoTrend(ctx context.Context, window domain.ReportWindow, videoID string) domain.MetricsResult {
	return s.safeQuery(ctx, fmt.Sprintf(videoTrendLabelFmt, videoID), ytdomain.ReportQuery{
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
		Dimension: ytdomain.DimensionDay,
		Metrics:   ytdomain.ReportMetrics,
		VideoID:   videoID,
	})
}

// safeQuery nunca devolve erro: uma falha vira resultado vazio com aviso "<label>: <causa>".
func (s *YouTubeIntegrator) safeQuery(ctx context.Context, label string, query ytdomain.ReportQuery) domain.MetricsResult {
	table, err := s.Client.QueryReport(ctx, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"query":     label,
			"dimension": query.Dimension,
			"error":     err.Error(),
		}).Warn("analytics: query failed, continuing with empty result")

		return domain.MetricsResult{
			Rows:    []domain.MetricRow{},
			Warning: fmt.Sprintf("%s: %s", label, err.Error()),
		}
	}

	rows := NormalizeRows(table)

	logrus.WithFields(logrus.Fields{
		"query": label,
		"rows":  len(rows),
	}).Debug("analytics: query succeeded")

	return domain.MetricsResult{Rows: rows}
}
