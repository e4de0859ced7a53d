package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shorts-insights-api/internal/api/handler"
	"github.com/vfg2006/shorts-insights-api/internal/config"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"*"}},
		Auth:   config.Auth{Secret: secret},
	}
}

func TestNewHandler_OpenAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockShortsReporter(ctrl)
	reporter.EXPECT().
		BuildReport(gomock.Any(), domain.ReportFilters{Days: 30, Limit: 12, RequestedVideoID: "all"}).
		Return(&domain.Report{ReportID: "rpt123456789", Warnings: []string{}}, nil)

	cfg := testConfig("")
	h := NewHandler(cfg, reporter, authenticating.NewService(cfg), handler.CronJobServices{})

	t.Run("relatório sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/shorts/report", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "no-store, no-cache, must-revalidate", rec.Header().Get("Cache-Control"))
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/shorts/report", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("método não permitido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/shorts/report", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "Method not allowed. Use GET.")
	})
}

func TestNewHandler_ProtectedAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mocks.NewMockShortsReporter(ctrl)
	reporter.EXPECT().
		BuildReport(gomock.Any(), gomock.Any()).
		Return(&domain.Report{ReportID: "rpt123456789", Warnings: []string{}}, nil).
		Times(1)

	cfg := testConfig("s3cret")
	authenticator := authenticating.NewService(cfg)
	h := NewHandler(cfg, reporter, authenticator, handler.CronJobServices{})

	token, err := authenticator.GenerateToken("ana", time.Hour)
	require.NoError(t, err)

	t.Run("healthcheck continua público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("relatório sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/shorts/report", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("relatório com token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/shorts/report", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("operador do token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"operator":"ana"`)
	})
}
