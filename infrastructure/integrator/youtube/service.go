package youtube

import (
	"context"

	"github.com/sirupsen/logrus"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/ytclient"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_integrator.go -package=mocks

// Integrator é a fronteira usada pelo relatório: catálogo de shorts e métricas
// do YouTube Analytics.
type Integrator interface {
	FetchChannel(ctx context.Context) (*ytdomain.Channel, error)
	FetchShortVideos(ctx context.Context, uploadsPlaylistID string, maxVideos int) ([]domain.VideoCandidate, error)
	FetchVideoMetrics(ctx context.Context, window domain.ReportWindow) domain.MetricsResult
	FetchChannelTrend(ctx context.Context, window domain.ReportWindow) domain.MetricsResult
	FetchVideoTrend(ctx context.Context, window domain.ReportWindow, videoID string) domain.MetricsResult
}

type YouTubeIntegrator struct {
	Client ytclient.Client
}

func New(client ytclient.Client) *YouTubeIntegrator {
	return &YouTubeIntegrator{
		Client: client,
	}
}

// FetchChannel resolve o canal autenticado. Falhas aqui são fatais para o relatório.
func (s *YouTubeIntegrator) FetchChannel(ctx context.Context) (*ytdomain.Channel, error) {
	channel, err := s.Client.GetMyChannel(ctx)
	if err != nil {
		logrus.WithError(err).Error("channel: failed to resolve authenticated channel")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"channel_id": channel.ID,
		"uploads_id": channel.UploadsPlaylistID,
		"has_name":   channel.Name != nil,
	}).Debug("channel: resolved authenticated channel")

	return channel, nil
}
