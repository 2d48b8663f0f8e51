package app

import (
	"entgo.io/ent/dialect"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/kelimo/internal/infrastructure/config"
	"github.com/eslsoft/kelimo/internal/infrastructure/server"
	"github.com/eslsoft/kelimo/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Driver   dialect.Driver
	Server   *server.Server
	Words    usecase.WordUsecase
	Progress usecase.ProgressUsecase
}
