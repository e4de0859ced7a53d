package ytclient

import (
	"context"

	"github.com/pkg/errors"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/shorts-insights-api/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
	"google.golang.org/api/youtubeanalytics/v2"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// Client expõe apenas as chamadas do YouTube usadas pelo relatório de shorts.
type Client interface {
	GetMyChannel(ctx context.Context) (*ytdomain.Channel, error)
	ListUploadsPage(ctx context.Context, playlistID, pageToken string) (*ytdomain.UploadsPage, error)
	GetVideosByIDs(ctx context.Context, ids []string) ([]ytdomain.VideoDetail, error)
	QueryReport(ctx context.Context, query ytdomain.ReportQuery) (*ytdomain.ReportTable, error)
}

type YouTubeClient struct {
	data      *youtube.Service
	analytics *youtubeanalytics.Service
}

// NewClient cria os serviços da Data API v3 e da Analytics API v2.
// opts normalmente carrega option.WithTokenSource(tokenManager).
func NewClient(ctx context.Context, cfg config.YouTube, opts ...option.ClientOption) (Client, error) {
	dataOpts := append([]option.ClientOption{}, opts...)
	if cfg.DataEndpoint != "" {
		dataOpts = append(dataOpts, option.WithEndpoint(cfg.DataEndpoint))
	}

	data, err := youtube.NewService(ctx, dataOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create YouTube Data service")
	}

	analyticsOpts := append([]option.ClientOption{}, opts...)
	if cfg.AnalyticsEndpoint != "" {
		analyticsOpts = append(analyticsOpts, option.WithEndpoint(cfg.AnalyticsEndpoint))
	}

	analytics, err := youtubeanalytics.NewService(ctx, analyticsOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create YouTube Analytics service")
	}

	return &YouTubeClient{
		data:      data,
		analytics: analytics,
	}, nil
}
