package item

import (
	"github.com/storelane/storelane/internal/item/repository"
	"github.com/storelane/storelane/internal/item/service"
	"go.uber.org/fx"
)

var Module = fx.Module("item.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
