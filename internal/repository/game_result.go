package repository

import (
	"context"
	"time"

	"github.com/eslsoft/kelimo/internal/entity"
)

// ListGameResultsQuery selects a user's game results. A zero Since means no lower bound
// and a zero Limit means no limit.
type ListGameResultsQuery struct {
	UserID    string
	Since     time.Time
	Limit     int
	OrderDesc bool
}

// GameResultRepository stores finished game sessions.
type GameResultRepository interface {
	Insert(ctx context.Context, result *entity.GameResult) (*entity.GameResult, error)
	List(ctx context.Context, query ListGameResultsQuery) ([]entity.GameResult, error)
	Totals(ctx context.Context, userID string) (entity.GameTotals, error)
}
