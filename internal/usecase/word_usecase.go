package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/repository"
)

const (
	defaultFeedSize = 20
	maxFeedSize     = 100
)

// WordUsecase covers the swipe feed, swipe decisions, the learned list and word imports.
type WordUsecase interface {
	Feed(ctx context.Context, userID string, limit int) ([]entity.Word, error)
	Swipe(ctx context.Context, userID, wordID string, status entity.SwipeStatus) (*entity.SwipeRecord, error)
	ListLearnedWords(ctx context.Context, query *repository.ListLearnedWordQuery) ([]entity.LearnedWord, int64, error)
	ImportWords(ctx context.Context, words []entity.Word) (entity.ImportSummary, error)
}

func NewWordUsecase(words repository.WordRepository, swipes repository.SwipeRepository) WordUsecase {
	return &wordUsecase{
		words:  words,
		swipes: swipes,
		clock:  time.Now,
	}
}

type wordUsecase struct {
	words  repository.WordRepository
	swipes repository.SwipeRepository
	clock  func() time.Time
}

func (u *wordUsecase) Feed(ctx context.Context, userID string, limit int) ([]entity.Word, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	switch {
	case limit <= 0:
		limit = defaultFeedSize
	case limit > maxFeedSize:
		limit = maxFeedSize
	}
	return u.words.ListFeed(ctx, userID, limit)
}

func (u *wordUsecase) Swipe(ctx context.Context, userID, wordID string, status entity.SwipeStatus) (*entity.SwipeRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}
	wordID = strings.TrimSpace(wordID)
	if wordID == "" {
		return nil, entity.ErrInvalidWordID
	}
	status, err := entity.ParseSwipeStatus(string(status))
	if err != nil {
		return nil, err
	}

	// Words are immutable after import.
	if _, err := u.words.GetByID(ctx, wordID); err != nil {
		return nil, err
	}
	return u.swipes.Upsert(ctx, userID, wordID, status)
}

func (u *wordUsecase) ListLearnedWords(ctx context.Context, query *repository.ListLearnedWordQuery) ([]entity.LearnedWord, int64, error) {
	if query == nil || strings.TrimSpace(query.UserID) == "" {
		return nil, 0, entity.ErrInvalidUserID
	}
	return u.swipes.ListLearnedWords(ctx, query)
}

// ImportWords normalizes and stores words, skipping invalid rows and repeated texts.
func (u *wordUsecase) ImportWords(ctx context.Context, words []entity.Word) (entity.ImportSummary, error) {
	now := u.clock().UTC()
	seen := make(map[string]struct{}, len(words))
	batch := make([]entity.Word, 0, len(words))
	skipped := 0
	for _, w := range words {
		w.Normalize(now)
		if err := w.Validate(); err != nil {
			skipped++
			continue
		}
		key := strings.ToLower(w.Text)
		if _, dup := seen[key]; dup {
			skipped++
			continue
		}
		seen[key] = struct{}{}
		batch = append(batch, w)
	}
	if len(batch) == 0 {
		return entity.ImportSummary{Skipped: skipped}, nil
	}

	summary, err := u.words.CreateBatch(ctx, batch)
	if err != nil {
		return entity.ImportSummary{}, err
	}
	summary.Skipped += skipped
	return summary, nil
}
