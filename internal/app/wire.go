//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/eslsoft/kelimo/internal/adapter/connectrpc"
	"github.com/eslsoft/kelimo/internal/adapter/repository"
	"github.com/eslsoft/kelimo/internal/adapter/session"
	"github.com/eslsoft/kelimo/internal/infrastructure/config"
	"github.com/eslsoft/kelimo/internal/infrastructure/database"
	"github.com/eslsoft/kelimo/internal/infrastructure/server"
	"github.com/eslsoft/kelimo/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var databaseSet = wire.NewSet(
	database.NewDriver,
)

var repositorySet = wire.NewSet(
	repository.NewWordRepository,
	repository.NewSwipeRepository,
	repository.NewGameResultRepository,
	session.NewLoginStateStore,
)

var usecaseSet = wire.NewSet(
	newProgressOptions,
	newGenerator,
	usecase.NewWordUsecase,
	usecase.NewProgressUsecase,
	usecase.NewPracticeUsecase,
	newLoginRedirectUsecase,
)

var serviceSet = wire.NewSet(
	connectrpc.NewWordServiceServer,
	connectrpc.NewProgressServiceServer,
	connectrpc.NewPracticeServiceServer,
	connectrpc.NewAuthServiceServer,
	connectrpc.NewValidator,
	wire.Struct(new(connectrpc.Services), "*"),
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
