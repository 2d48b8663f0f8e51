package repository

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/repository"
)

var gameResultColumns = []string{"id", "user_id", "game_type", "score", "correct", "wrong", "created_at"}

type GameResultRepository struct {
	base
}

// NewGameResultRepository constructs a game result repository on top of an ent SQL driver.
func NewGameResultRepository(drv dialect.Driver) repository.GameResultRepository {
	return &GameResultRepository{base: base{drv: drv}}
}

func (r *GameResultRepository) Insert(ctx context.Context, result *entity.GameResult) (*entity.GameResult, error) {
	saved := *result
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	saved.CreatedAt = storeTime(saved.CreatedAt)

	ins := r.builder().Insert(gameResultsTable).
		Columns(gameResultColumns...).
		Values(saved.ID, saved.UserID, string(saved.GameType), saved.Score, saved.Correct, saved.Wrong, saved.CreatedAt)
	if _, err := r.exec(ctx, "insert game result", r.drv, ins); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *GameResultRepository) List(ctx context.Context, query repository.ListGameResultsQuery) ([]entity.GameResult, error) {
	preds := []*sql.Predicate{sql.EQ("user_id", query.UserID)}
	if !query.Since.IsZero() {
		preds = append(preds, sql.GTE("created_at", storeTime(query.Since)))
	}
	q := r.builder().Select(gameResultColumns...).
		From(sql.Table(gameResultsTable)).
		Where(sql.And(preds...))
	orderBy(q, "created_at", query.OrderDesc)
	orderBy(q, "id", query.OrderDesc)
	if query.Limit > 0 {
		q.Limit(query.Limit)
	}

	results := make([]entity.GameResult, 0)
	err := r.query(ctx, "list game results", q, func(rows *sql.Rows) error {
		var (
			g        entity.GameResult
			gameType string
		)
		if err := rows.Scan(&g.ID, &g.UserID, &gameType, &g.Score, &g.Correct, &g.Wrong, &g.CreatedAt); err != nil {
			return err
		}
		g.GameType = entity.GameType(gameType)
		g.CreatedAt = g.CreatedAt.UTC()
		results = append(results, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *GameResultRepository) Totals(ctx context.Context, userID string) (entity.GameTotals, error) {
	var totals entity.GameTotals
	q := r.builder().Select(
		"COALESCE(SUM(correct), 0)",
		"COALESCE(SUM(wrong), 0)",
		"COALESCE(SUM(score), 0)",
		sql.Count("*"),
	).From(sql.Table(gameResultsTable)).Where(sql.EQ("user_id", userID))

	err := r.query(ctx, "sum game results", q, func(rows *sql.Rows) error {
		return rows.Scan(&totals.Correct, &totals.Wrong, &totals.Score, &totals.Count)
	})
	if err != nil {
		return entity.GameTotals{}, err
	}
	return totals, nil
}
