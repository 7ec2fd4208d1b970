package auth

import (
	"context"

	"github.com/storelane/storelane/internal/auth/domain"
	"github.com/storelane/storelane/internal/auth/repository"
	"github.com/storelane/storelane/internal/auth/service"
	"github.com/storelane/storelane/internal/auth/token"
	"github.com/storelane/storelane/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(provideIssuer),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Invoke(ensureIndexes),
)

func provideIssuer(cfg config.Config) *token.Issuer {
	return token.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
}

func ensureIndexes(lc fx.Lifecycle, repo domain.Repository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.EnsureIndexes(ctx)
		},
	})
}
