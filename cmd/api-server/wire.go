//go:build wireinject
// +build wireinject

package main

import (
	"Newsline/config"
	"Newsline/dao"
	"Newsline/dao/cache"
	"Newsline/handler"
	"Newsline/pkg/client"
	"Newsline/pkg/database"
	"Newsline/pkg/server"
	"Newsline/service"
	"Newsline/socket"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		socket.NewHub,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Bind(new(service.IEngagementCache), new(*cache.EngagementCache)),

		wire.Struct(new(handler.News), "*"),
		wire.Struct(new(handler.TagHandler), "*"),
		wire.Struct(new(handler.CommentHandler), "*"),
		wire.Struct(new(handler.WSHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
