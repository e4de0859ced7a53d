package ytclient

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/shorts-insights-api/internal/config"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=token.go -destination=mocks/mock_token.go -package=mocks

// TokenProvider entrega o token de acesso e a origem da credencial.
type TokenProvider interface {
	GetAccessToken(ctx context.Context) (*ytdomain.AccessToken, error)
}

// TokenManager avalia as estratégias de credencial em ordem fixa e guarda a
// primeira que resolver. Também implementa oauth2.TokenSource para os
// serviços do Google.
type TokenManager struct {
	sources  []CredentialSource
	mu       sync.Mutex
	resolved *Credential
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return NewTokenManagerWithSources(DefaultSources(cfg.YouTube)...)
}

func NewTokenManagerWithSources(sources ...CredentialSource) *TokenManager {
	return &TokenManager{sources: sources}
}

// GetAccessToken resolve a credencial (se ainda não resolvida) e obtém um token válido.
func (tm *TokenManager) GetAccessToken(ctx context.Context) (*ytdomain.AccessToken, error) {
	credential, err := tm.resolve(ctx)
	if err != nil {
		return nil, err
	}

	token, err := credential.TokenSource.Token()
	if err != nil {
		tm.reset()
		return nil, errors.Wrapf(err, "%s token request failed", credential.Source)
	}

	if token == nil || token.AccessToken == "" {
		tm.reset()
		return nil, errors.Errorf("%s credentials did not return an access token", credential.Source)
	}

	return &ytdomain.AccessToken{Token: token, Source: credential.Source}, nil
}

// Token implementa oauth2.TokenSource.
func (tm *TokenManager) Token() (*oauth2.Token, error) {
	accessToken, err := tm.GetAccessToken(context.Background())
	if err != nil {
		return nil, err
	}
	return accessToken.Token, nil
}

func (tm *TokenManager) resolve(ctx context.Context) (*Credential, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.resolved != nil {
		return tm.resolved, nil
	}

	for _, source := range tm.sources {
		credential, err := source.TryResolve(ctx)
		if err != nil {
			return nil, err
		}
		if credential == nil {
			continue
		}

		logrus.WithField("source", credential.Source).Info("credentials: resolved YouTube credential source")

		tm.resolved = &Credential{
			TokenSource: oauth2.ReuseTokenSource(nil, credential.TokenSource),
			Source:      credential.Source,
		}
		return tm.resolved, nil
	}

	return nil, ytdomain.ErrNoCredentials
}

func (tm *TokenManager) reset() {
	tm.mu.Lock()
	tm.resolved = nil
	tm.mu.Unlock()
}
