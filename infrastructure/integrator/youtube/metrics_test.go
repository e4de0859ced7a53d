package youtube

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/ytclient/mocks"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var testWindow = domain.ReportWindow{Days: 30, StartDate: "2025-01-01", EndDate: "2025-01-30", Limit: 12}

func TestYouTubeIntegrator_FetchVideoMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(client)

	client.EXPECT().QueryReport(gomock.Any(), ytdomain.ReportQuery{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-30",
		Dimension: ytdomain.DimensionVideo,
		Metrics:   ytdomain.ReportMetrics,
	}).Return(&ytdomain.ReportTable{
		Headers: []string{"video", "views"},
		Rows:    [][]any{{"v1", 10.0}},
	}, nil)

	result := integrator.FetchVideoMetrics(context.Background(), testWindow)
	assert.False(t, result.Failed())
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "v1", result.Rows[0].DimensionKey)
}

func TestYouTubeIntegrator_QueryFailuresBecomeWarnings(t *testing.T) {
	upstreamErr := errors.New("Google API error 500")

	tests := []struct {
		name        string
		call        func(i *YouTubeIntegrator) domain.MetricsResult
		wantWarning string
	}{
		{
			name:        "Métricas por vídeo",
			call:        func(i *YouTubeIntegrator) domain.MetricsResult { return i.FetchVideoMetrics(context.Background(), testWindow) },
			wantWarning: "Short metrics query: Google API error 500",
		},
		{
			name:        "Tendência do canal",
			call:        func(i *YouTubeIntegrator) domain.MetricsResult { return i.FetchChannelTrend(context.Background(), testWindow) },
			wantWarning: "Channel trend query: Google API error 500",
		},
		{
			name: "Tendência do vídeo selecionado",
			call: func(i *YouTubeIntegrator) domain.MetricsResult {
				return i.FetchVideoTrend(context.Background(), testWindow, "v9")
			},
			wantWarning: "Selected video trend query (v9): Google API error 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			client.EXPECT().QueryReport(gomock.Any(), gomock.Any()).Return(nil, upstreamErr)

			result := tt.call(New(client))
			assert.True(t, result.Failed())
			assert.Empty(t, result.Rows)
			assert.Equal(t, tt.wantWarning, result.Warning)
		})
	}
}

func TestYouTubeIntegrator_FetchVideoTrend_FiltersByVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().QueryReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query ytdomain.ReportQuery) (*ytdomain.ReportTable, error) {
			assert.Equal(t, ytdomain.DimensionDay, query.Dimension)
			assert.Equal(t, "video==v9", query.Filters())
			return &ytdomain.ReportTable{}, nil
		})

	result := New(client).FetchVideoTrend(context.Background(), testWindow, "v9")
	assert.False(t, result.Failed())
	assert.Empty(t, result.Rows)
}
