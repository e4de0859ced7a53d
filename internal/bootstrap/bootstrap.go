package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/ytclient"
	"github.com/vfg2006/shorts-insights-api/internal/config"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/insighting"
	"google.golang.org/api/option"
)

// NewReporter liga as credenciais, o cliente do YouTube e o serviço de relatório.
// O mesmo TokenManager autentica as chamadas e informa a origem da credencial.
func NewReporter(ctx context.Context, cfg *config.Config) (*insighting.Service, error) {
	tokenManager := ytclient.NewTokenManager(cfg)

	client, err := ytclient.NewClient(ctx, cfg.YouTube, option.WithTokenSource(tokenManager))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create YouTube client")
	}

	return insighting.NewService(tokenManager, youtube.New(client)), nil
}
