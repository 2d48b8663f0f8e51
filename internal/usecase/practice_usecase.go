package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/repository"
	"github.com/eslsoft/kelimo/internal/usecase/practice"
)

// PracticeUsecase generates practice rounds from learned words and records their results.
type PracticeUsecase interface {
	GenerateGame(ctx context.Context, userID string, gameType entity.GameType, opts practice.Options) (*entity.GameSet, error)
	RecordGameResult(ctx context.Context, userID string, result entity.GameResult) (*entity.GameResult, error)
}

func NewPracticeUsecase(words repository.WordRepository, games repository.GameResultRepository, generator *practice.Generator) PracticeUsecase {
	if generator == nil {
		generator = practice.NewGenerator(nil)
	}
	return &practiceUsecase{
		words:     words,
		games:     games,
		generator: generator,
		clock:     time.Now,
	}
}

type practiceUsecase struct {
	words     repository.WordRepository
	games     repository.GameResultRepository
	generator *practice.Generator
	clock     func() time.Time
}

func (u *practiceUsecase) GenerateGame(ctx context.Context, userID string, gameType entity.GameType, opts practice.Options) (*entity.GameSet, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	gameType, err := entity.ParseGameType(string(gameType))
	if err != nil {
		return nil, err
	}

	var pool []entity.Word
	if gameType == entity.GameTypeFillBlank {
		pool, err = u.words.ListLearnedWithExampleBy(ctx, userID)
	} else {
		pool, err = u.words.ListLearnedBy(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	return u.generator.Generate(gameType, pool, opts)
}

func (u *practiceUsecase) RecordGameResult(ctx context.Context, userID string, result entity.GameResult) (*entity.GameResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	gameType, err := entity.ParseGameType(string(result.GameType))
	if err != nil {
		return nil, err
	}

	// The client's score is ignored; it is always derived from the correct count.
	correct := max(result.Correct, 0)
	record := entity.GameResult{
		UserID:    userID,
		GameType:  gameType,
		Score:     entity.ScoreFor(correct),
		Correct:   correct,
		Wrong:     max(result.Wrong, 0),
		CreatedAt: u.clock().UTC(),
	}
	return u.games.Insert(ctx, &record)
}
