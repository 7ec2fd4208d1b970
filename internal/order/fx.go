package order

import (
	"github.com/storelane/storelane/internal/order/repository"
	"github.com/storelane/storelane/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
