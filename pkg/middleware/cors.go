package middleware

import (
	"net/http"
	"slices"
	"strings"
)

const wildcardOrigin = "*"

func isOriginAllowed(allowedOrigins []string, origin string) bool {
	return origin != "" && slices.Contains(allowedOrigins, origin)
}

// Cors libera as origens configuradas ("*" libera todas) e responde o preflight.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, wildcardOrigin)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", wildcardOrigin)
			case isOriginAllowed(allowedOrigins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			w.Header().Set("Access-Control-Allow-Methods", strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", "))
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Correlation-ID")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NoCache impede cache das respostas, que são recalculadas a cada chamada.
func NoCache() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			next.ServeHTTP(w, r)
		})
	}
}
