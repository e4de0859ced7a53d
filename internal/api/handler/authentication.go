package handler

import (
	"net/http"

	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/shorts-insights-api/pkg/apiErrors"
	"github.com/vfg2006/shorts-insights-api/pkg/middleware"
)

type meResponse struct {
	Operator  string `json:"operator"`
	ExpiresAt any    `json:"expiresAt"`
}

// GetMe devolve o operador do token usado na requisição
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !service.Enabled() {
			apiErrors.WriteError(w, apiErrors.ErrAuthDisabled, "API authentication is not configured", nil)
			return
		}

		claims, ok := r.Context().Value(middleware.ContextKeyOperator).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Operador não autenticado", nil)
			return
		}

		response := meResponse{Operator: claims.Operator}
		if claims.ExpiresAt != nil {
			response.ExpiresAt = claims.ExpiresAt.Time
		}

		writeJSON(w, http.StatusOK, response)
	}
}
