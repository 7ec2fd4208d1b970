package customer

import (
	"context"

	"github.com/storelane/storelane/internal/customer/domain"
	"github.com/storelane/storelane/internal/customer/repository"
	"github.com/storelane/storelane/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Invoke(ensureIndexes),
)

func ensureIndexes(lc fx.Lifecycle, repo domain.Repository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.EnsureIndexes(ctx)
		},
	})
}
