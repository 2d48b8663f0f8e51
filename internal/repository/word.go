package repository

import (
	"context"

	"github.com/eslsoft/kelimo/internal/entity"
)

// WordRepository defines data access for word cards.
type WordRepository interface {
	CountAll(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*entity.Word, error)
	// ListFeed returns the newest words the user has not swiped yet.
	ListFeed(ctx context.Context, userID string, limit int) ([]entity.Word, error)
	// ListLearnedBy returns every word the user marked as learned.
	ListLearnedBy(ctx context.Context, userID string) ([]entity.Word, error)
	// ListLearnedWithExampleBy narrows ListLearnedBy to words with an example sentence.
	ListLearnedWithExampleBy(ctx context.Context, userID string) ([]entity.Word, error)
	CreateBatch(ctx context.Context, words []entity.Word) (entity.ImportSummary, error)
}
