package repository

import (
	"context"
	"time"

	"github.com/eslsoft/kelimo/internal/entity"
)

// ListLearnedWordQuery holds parameters for listing a user's learned words.
type ListLearnedWordQuery struct {
	Pagination
	FilterOrder

	UserID string
}

// SwipeRepository persists swipe decisions, one row per (user, word).
type SwipeRepository interface {
	// Upsert inserts the record or updates only its status, as a single atomic statement.
	Upsert(ctx context.Context, userID, wordID string, status entity.SwipeStatus) (*entity.SwipeRecord, error)
	// ListLearnedTimestamps returns the creation time of every LEARNED record of the user.
	ListLearnedTimestamps(ctx context.Context, userID string) ([]time.Time, error)
	ListLearnedWords(ctx context.Context, query *ListLearnedWordQuery) ([]entity.LearnedWord, int64, error)
}
