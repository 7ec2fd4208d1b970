package main

import (
	"github.com/storelane/storelane/internal/auth"
	"github.com/storelane/storelane/internal/config"
	"github.com/storelane/storelane/internal/customer"
	"github.com/storelane/storelane/internal/item"
	"github.com/storelane/storelane/internal/order"
	"github.com/storelane/storelane/internal/server"
	"github.com/storelane/storelane/pkg/log"
	"github.com/storelane/storelane/pkg/mongodb"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		mongodb.Module,

		item.Module,
		customer.Module,
		order.Module,
		auth.Module,

		server.Module,
	)
	app.Run()
}
