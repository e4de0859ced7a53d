package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shorts-insights-api/internal/config"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
)

const DefaultTokenTTL = 24 * time.Hour

const issuer = "shorts-insights-api"

// Authenticator emite e valida os tokens de operador da API.
type Authenticator interface {
	Enabled() bool
	GenerateToken(operator string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		secret: []byte(strings.TrimSpace(cfg.Auth.Secret)),
		now:    time.Now,
	}
}

// Enabled indica se existe segredo configurado. Sem ele a API fica aberta.
func (s *Service) Enabled() bool {
	return len(s.secret) > 0
}

func (s *Service) GenerateToken(operator string, ttl time.Duration) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}

	operator = strings.TrimSpace(operator)
	if operator == "" {
		return "", ErrMissingOperator
	}

	if ttl <= 0 {
		return "", ErrInvalidTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		Operator: operator,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   operator,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("erro ao assinar token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"operator":   operator,
		"expires_at": claims.ExpiresAt.Time.Format(time.RFC3339),
	}).Info("auth: operator token issued")

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Operator == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
