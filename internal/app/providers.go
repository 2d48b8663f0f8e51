package app

import (
	"github.com/eslsoft/kelimo/internal/infrastructure/config"
	"github.com/eslsoft/kelimo/internal/repository"
	"github.com/eslsoft/kelimo/internal/usecase"
	"github.com/eslsoft/kelimo/internal/usecase/practice"
)

func newProgressOptions(cfg *config.Config) (usecase.ProgressOptions, error) {
	loc, err := cfg.Location()
	if err != nil {
		return usecase.ProgressOptions{}, err
	}
	return usecase.ProgressOptions{Location: loc, RecentGames: cfg.Progress.RecentGames}, nil
}

func newGenerator() *practice.Generator {
	return practice.NewGenerator(practice.DefaultShuffler)
}

func newLoginRedirectUsecase(store repository.LoginStateStore, cfg *config.Config) usecase.LoginRedirectUsecase {
	return usecase.NewLoginRedirectUsecase(store, cfg.Auth.RedirectTTL, cfg.Auth.AllowedReturnURLs)
}
