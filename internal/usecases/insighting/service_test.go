package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	ytmocks "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/mocks"
	tokenmocks "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/ytclient/mocks"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/pkg/apiErrors"
	"github.com/vfg2006/shorts-insights-api/pkg/utils"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

var fixedNow = time.Date(2025, 3, 30, 15, 4, 5, 0, time.UTC)

type serviceFixture struct {
	service *Service
	tokens  *tokenmocks.MockTokenProvider
	youtube *ytmocks.MockIntegrator
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)

	tokens := tokenmocks.NewMockTokenProvider(ctrl)
	integrator := ytmocks.NewMockIntegrator(ctrl)

	service := NewService(tokens, integrator)
	service.now = func() time.Time { return fixedNow }
	service.newID = func() (string, error) { return "rpt123456789", nil }

	return &serviceFixture{service: service, tokens: tokens, youtube: integrator}
}

func (f *serviceFixture) expectToken() {
	f.tokens.EXPECT().GetAccessToken(gomock.Any()).Return(&ytdomain.AccessToken{
		Token:  &oauth2.Token{AccessToken: "token"},
		Source: ytdomain.SourceOAuthRefresh,
	}, nil)
}

func (f *serviceFixture) expectChannel() {
	f.youtube.EXPECT().FetchChannel(gomock.Any()).Return(&ytdomain.Channel{
		ID:                "UC1",
		Name:              utils.StringPtr("Canal"),
		UploadsPlaylistID: "UU1",
	}, nil)
}

func TestService_BuildReport_EndToEnd(t *testing.T) {
	f := newServiceFixture(t)
	f.expectToken()
	f.expectChannel()

	expectedWindow := domain.ReportWindow{
		Days:             30,
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-30",
		Limit:            12,
		RequestedVideoID: domain.AllVideos,
	}

	f.youtube.EXPECT().FetchShortVideos(gomock.Any(), "UU1", 96).
		Return([]domain.VideoCandidate{{VideoID: "v1", Title: "Short", PublishedAt: "2025-03-10", DurationSeconds: 30}}, nil)

	f.youtube.EXPECT().FetchVideoMetrics(gomock.Any(), expectedWindow).
		Return(domain.MetricsResult{Rows: []domain.MetricRow{
			{DimensionKey: "v1", ImpressionCTR: utils.Float(1.5), AvgViewPercentage: utils.Float(20)},
			{DimensionKey: "other", Views: utils.Float(999999)},
		}})

	f.youtube.EXPECT().FetchChannelTrend(gomock.Any(), expectedWindow).
		Return(domain.MetricsResult{Rows: []domain.MetricRow{
			{DimensionKey: "2025-03-02", ImpressionCTR: utils.Float(2)},
			{DimensionKey: "2025-03-01", ImpressionCTR: utils.Float(1)},
		}})

	f.youtube.EXPECT().FetchVideoTrend(gomock.Any(), expectedWindow, "v1").
		Return(domain.MetricsResult{Rows: []domain.MetricRow{{DimensionKey: "2025-03-01", Views: utils.Float(4)}}})

	report, err := f.service.BuildReport(context.Background(), domain.ReportFilters{})
	require.NoError(t, err)

	assert.Equal(t, "rpt123456789", report.ReportID)
	assert.Equal(t, fixedNow, report.GeneratedAt)
	assert.Equal(t, expectedWindow, report.Window)
	assert.Equal(t, ytdomain.SourceOAuthRefresh, report.Source)
	assert.Equal(t, "UC1", report.ChannelID)
	assert.Equal(t, "Canal", *report.ChannelName)
	assert.Equal(t, 1, report.ScannedVideos)
	assert.Empty(t, report.Warnings)

	require.Len(t, report.Videos, 1)
	video := report.Videos[0]
	assert.Equal(t, "v1", video.VideoID)
	assert.Nil(t, video.Views)
	assert.Equal(t, domain.HealthHigh, video.Health)
	assert.Equal(t, 2, video.RelativeScore)
	assert.Len(t, video.Recommendations, 2)

	assert.Equal(t, 1, report.Summary.ShortCount)
	require.NotNil(t, report.Summary.AvgCTR)
	assert.Equal(t, 1.5, *report.Summary.AvgCTR)
	assert.Equal(t, 0.0, report.Summary.Views)
	assert.Equal(t, 100.0, *report.Summary.CTRTrend)

	require.Len(t, report.ChannelTrend, 2)
	assert.Equal(t, "2025-03-01", report.ChannelTrend[0].Date)

	require.NotNil(t, report.SelectedVideo)
	assert.Equal(t, "v1", report.SelectedVideo.VideoID)
	assert.Equal(t, 2, report.SelectedVideo.RelativeScore)
	assert.Equal(t, "v1", *report.SelectedVideoID)
	require.Len(t, report.SelectedVideoTrend, 1)
}

func TestService_BuildReport_WarningIsolation(t *testing.T) {
	candidates := []domain.VideoCandidate{
		{VideoID: "v1", Title: "Um", PublishedAt: "2025-03-10", DurationSeconds: 30},
		{VideoID: "v2", Title: "Dois", PublishedAt: "2025-03-09", DurationSeconds: 40},
	}
	videoRows := []domain.MetricRow{
		{DimensionKey: "v1", Views: utils.Float(10)},
		{DimensionKey: "v2", Views: utils.Float(50)},
	}
	trendRows := []domain.MetricRow{{DimensionKey: "2025-03-01", Views: utils.Float(1)}}

	tests := []struct {
		name     string
		failing  string
		validate func(t *testing.T, report *domain.Report)
	}{
		{
			name:    "Falha nas métricas por vídeo",
			failing: "video",
			validate: func(t *testing.T, report *domain.Report) {
				require.Len(t, report.Videos, 2)
				for _, video := range report.Videos {
					assert.Nil(t, video.Views)
					assert.Equal(t, domain.HealthUnknown, video.Health)
				}
				// sem views a ordem do catálogo é mantida
				assert.Equal(t, "v1", *report.SelectedVideoID)
				assert.Equal(t, "Short metrics query: boom", report.Warnings[0])
			},
		},
		{
			name:    "Falha na tendência do canal",
			failing: "channel",
			validate: func(t *testing.T, report *domain.Report) {
				assert.Empty(t, report.ChannelTrend)
				assert.NotEmpty(t, report.SelectedVideoTrend)
				assert.Equal(t, "Channel trend query: boom", report.Warnings[0])
			},
		},
		{
			name:    "Falha na tendência do vídeo selecionado",
			failing: "selected",
			validate: func(t *testing.T, report *domain.Report) {
				assert.NotEmpty(t, report.ChannelTrend)
				assert.Empty(t, report.SelectedVideoTrend)
				assert.Equal(t, "v2", *report.SelectedVideoID)
				assert.Equal(t, "Selected video trend query (v2): boom", report.Warnings[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			f.expectToken()
			f.expectChannel()
			f.youtube.EXPECT().FetchShortVideos(gomock.Any(), "UU1", gomock.Any()).Return(candidates, nil)

			ok := func(rows []domain.MetricRow) domain.MetricsResult { return domain.MetricsResult{Rows: rows} }
			failed := func(label string) domain.MetricsResult {
				return domain.MetricsResult{Rows: []domain.MetricRow{}, Warning: label + ": boom"}
			}

			videoResult, channelResult, selectedResult := ok(videoRows), ok(trendRows), ok(trendRows)
			switch tt.failing {
			case "video":
				videoResult = failed("Short metrics query")
			case "channel":
				channelResult = failed("Channel trend query")
			case "selected":
				selectedResult = failed("Selected video trend query (v2)")
			}

			f.youtube.EXPECT().FetchVideoMetrics(gomock.Any(), gomock.Any()).Return(videoResult)
			f.youtube.EXPECT().FetchChannelTrend(gomock.Any(), gomock.Any()).Return(channelResult)
			f.youtube.EXPECT().FetchVideoTrend(gomock.Any(), gomock.Any(), gomock.Any()).Return(selectedResult)

			report, err := f.service.BuildReport(context.Background(), domain.ReportFilters{})
			require.NoError(t, err)
			require.NotNil(t, report)
			assert.Len(t, report.Warnings, 1)
			tt.validate(t, report)
		})
	}
}

func TestService_BuildReport_SelectionFallbackWarning(t *testing.T) {
	f := newServiceFixture(t)
	f.expectToken()
	f.expectChannel()

	f.youtube.EXPECT().FetchShortVideos(gomock.Any(), "UU1", 24).
		Return([]domain.VideoCandidate{
			{VideoID: "v1", Title: "Um", PublishedAt: "2025-03-10", DurationSeconds: 30},
			{VideoID: "v2", Title: "Dois", PublishedAt: "2025-03-09", DurationSeconds: 30},
			{VideoID: "v3", Title: "Três", PublishedAt: "2025-03-08", DurationSeconds: 30},
		}, nil)
	f.youtube.EXPECT().FetchVideoMetrics(gomock.Any(), gomock.Any()).
		Return(domain.MetricsResult{Rows: []domain.MetricRow{
			{DimensionKey: "v3", Views: utils.Float(500)},
			{DimensionKey: "v1", Views: utils.Float(100)},
		}})
	f.youtube.EXPECT().FetchChannelTrend(gomock.Any(), gomock.Any()).Return(domain.MetricsResult{})
	f.youtube.EXPECT().FetchVideoTrend(gomock.Any(), gomock.Any(), "v3").Return(domain.MetricsResult{})

	report, err := f.service.BuildReport(context.Background(), domain.ReportFilters{Days: 7, Limit: 2, RequestedVideoID: "v2"})
	require.NoError(t, err)

	require.Len(t, report.Videos, 2)
	assert.Equal(t, "v3", report.Videos[0].VideoID)
	assert.Equal(t, "v1", report.Videos[1].VideoID)
	assert.Equal(t, "v3", *report.SelectedVideoID)
	assert.Equal(t, []string{"Requested videoId (v2) is not in current top 2; using strongest signal instead."}, report.Warnings)
	assert.Equal(t, "2025-03-24", report.Window.StartDate)
	assert.Equal(t, "v2", report.Window.RequestedVideoID)
	assert.Equal(t, 3, report.ScannedVideos)
}

func TestService_BuildReport_EmptyCatalog(t *testing.T) {
	f := newServiceFixture(t)
	f.expectToken()
	f.expectChannel()

	f.youtube.EXPECT().FetchShortVideos(gomock.Any(), "UU1", gomock.Any()).Return([]domain.VideoCandidate{}, nil)
	f.youtube.EXPECT().FetchVideoMetrics(gomock.Any(), gomock.Any()).Return(domain.MetricsResult{})
	f.youtube.EXPECT().FetchChannelTrend(gomock.Any(), gomock.Any()).Return(domain.MetricsResult{})

	report, err := f.service.BuildReport(context.Background(), domain.ReportFilters{})
	require.NoError(t, err)
	assert.Empty(t, report.Videos)
	assert.NotNil(t, report.Videos)
	assert.Nil(t, report.SelectedVideo)
	assert.Nil(t, report.SelectedVideoID)
	assert.NotNil(t, report.SelectedVideoTrend)
	assert.NotNil(t, report.Warnings)
}

func TestService_BuildReport_FatalErrors(t *testing.T) {
	t.Run("Falha de autenticação é sanitizada", func(t *testing.T) {
		f := newServiceFixture(t)
		f.tokens.EXPECT().GetAccessToken(gomock.Any()).
			Return(nil, errors.New("oauth2: cannot fetch token: invalid_grant"))

		report, err := f.service.BuildReport(context.Background(), domain.ReportFilters{})
		assert.Nil(t, report)

		reportErr, ok := AsReportError(err)
		require.True(t, ok)
		assert.Equal(t, StageToken, reportErr.Stage)
		assert.True(t, reportErr.IsAuth())
		assert.Equal(t, apiErrors.ErrUpstreamAuth, reportErr.Code)
		assert.Equal(t, authFailedMessage, reportErr.Error())
	})

	t.Run("Canal sem uploads", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectToken()
		f.youtube.EXPECT().FetchChannel(gomock.Any()).Return(nil, ytdomain.ErrMissingUploads)

		_, err := f.service.BuildReport(context.Background(), domain.ReportFilters{})

		reportErr, ok := AsReportError(err)
		require.True(t, ok)
		assert.Equal(t, StageChannel, reportErr.Stage)
		assert.Equal(t, "Missing uploads playlist in channel response.", reportErr.Message)
		assert.ErrorIs(t, err, ytdomain.ErrMissingUploads)
	})

	t.Run("Falha no catálogo", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectToken()
		f.expectChannel()
		f.youtube.EXPECT().FetchShortVideos(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("videos.list: googleapi: Error 403: Forbidden"))

		_, err := f.service.BuildReport(context.Background(), domain.ReportFilters{})

		reportErr, ok := AsReportError(err)
		require.True(t, ok)
		assert.Equal(t, StageCatalog, reportErr.Stage)
		assert.True(t, reportErr.IsAuth())
	})
}

func TestNewReportError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
		wantCode    string
	}{
		{name: "Erro nulo", err: nil, wantMessage: genericFailureMessage, wantCode: apiErrors.ErrReportFailure},
		{name: "Mensagem vazia", err: errors.New(""), wantMessage: genericFailureMessage, wantCode: apiErrors.ErrReportFailure},
		{name: "Erro comum repassado", err: errors.New("quota exceeded"), wantMessage: "quota exceeded", wantCode: apiErrors.ErrReportFailure},
		{name: "Unauthorized", err: errors.New("401 UNAUTHORIZED"), wantMessage: authFailedMessage, wantCode: apiErrors.ErrUpstreamAuth},
		{name: "Sem credenciais", err: ytdomain.ErrNoCredentials, wantMessage: authFailedMessage, wantCode: apiErrors.ErrUpstreamAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reportErr := NewReportError(StageReport, tt.err)
			assert.Equal(t, tt.wantMessage, reportErr.Message)
			assert.Equal(t, tt.wantCode, reportErr.Code)
		})
	}
}
