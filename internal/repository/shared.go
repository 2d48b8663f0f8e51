//go:generate mockgen -destination=../mocks/repository/mock_repository.go -package=mock_repository github.com/eslsoft/kelimo/internal/repository GameResultRepository,LoginStateStore,SwipeRepository,WordRepository

package repository

import (
	"context"
	"time"
)

// Pagination holds pagination parameters for listing entities.
type Pagination struct {
	PageNo   int32
	PageSize int32
}

func (p *Pagination) Offset() int32 { return (p.PageNo - 1) * p.PageSize }

type FilterOrder struct {
	Filter  string
	OrderBy string
}

func (fo *FilterOrder) GetFilter() string { return fo.Filter }

func (fo *FilterOrder) GetOrderBy() string { return fo.OrderBy }

// WordStore is the full set of record-store capabilities the learning engine reads and writes.
type WordStore interface {
	WordRepository
	SwipeRepository
	GameResultRepository
}

// LoginStateStore keeps short-lived login return URLs keyed by an opaque state token.
type LoginStateStore interface {
	Put(ctx context.Context, state, returnURL string, ttl time.Duration) error
	// Take returns and deletes the entry in one step; a missing key yields entity.ErrLoginStateNotFound.
	Take(ctx context.Context, state string) (string, error)
}
