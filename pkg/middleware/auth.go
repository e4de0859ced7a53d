package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/shorts-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/shorts-insights-api/pkg/apiErrors"
	"github.com/vfg2006/shorts-insights-api/pkg/log"
)

type contextKey string

const (
	ContextKeyOperator contextKey = "operator"
)

var publicPaths = map[string]bool{
	"/healthcheck": true,
}

// AuthMiddleware exige um bearer JWT quando o autenticador está habilitado.
// Sem AUTH_SECRET a API fica aberta, como no dashboard de operador único.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authService.Enabled() || r.Method == http.MethodOptions || publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token de operador rejeitado")

				code := apiErrors.ErrInvalidToken
				if errors.Is(err, authenticating.ErrExpiredToken) {
					code = apiErrors.ErrExpiredToken
				}
				apiErrors.WriteError(w, code, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyOperator, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
