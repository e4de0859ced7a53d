package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shorts-insights-api/internal/config"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/shorts-insights-api/pkg/middleware"
)

func TestGetMe(t *testing.T) {
	expiresAt := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	claims := &domain.Claims{
		Operator:         "ana",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
	}

	t.Run("autenticação desabilitada", func(t *testing.T) {
		service := authenticating.NewService(&config.Config{})

		rec := httptest.NewRecorder()
		GetMe(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("sem claims no contexto", func(t *testing.T) {
		service := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "s3cret"}})

		rec := httptest.NewRecorder()
		GetMe(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("devolve o operador", func(t *testing.T) {
		service := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "s3cret"}})

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyOperator, claims))

		rec := httptest.NewRecorder()
		GetMe(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ana", body["operator"])
		assert.Equal(t, "2025-03-31T00:00:00Z", body["expiresAt"])
	})
}
