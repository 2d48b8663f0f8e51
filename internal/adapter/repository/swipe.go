package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/repository"
	"github.com/eslsoft/kelimo/pkg/filterexpr"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var swipeColumns = []string{"id", "user_id", "word_id", "status", "created_at"}

type SwipeRepository struct {
	base
	clock func() time.Time
}

// NewSwipeRepository constructs a swipe repository on top of an ent SQL driver.
func NewSwipeRepository(drv dialect.Driver) repository.SwipeRepository {
	return &SwipeRepository{base: base{drv: drv}, clock: time.Now}
}

// Upsert relies on the unique (user_id, word_id) index: a repeated swipe only
// rewrites status, so id and created_at keep their first values.
func (r *SwipeRepository) Upsert(ctx context.Context, userID, wordID string, status entity.SwipeStatus) (*entity.SwipeRecord, error) {
	ins := r.builder().Insert(swipesTable).
		Columns(swipeColumns...).
		Values(uuid.NewString(), userID, wordID, string(status), storeTime(r.clock())).
		OnConflict(
			sql.ConflictColumns("user_id", "word_id"),
			sql.ResolveWith(func(u *sql.UpdateSet) {
				u.SetExcluded("status")
			}),
		)
	if _, err := r.exec(ctx, "upsert swipe", r.drv, ins); err != nil {
		return nil, err
	}

	var rec *entity.SwipeRecord
	q := r.builder().Select(swipeColumns...).
		From(sql.Table(swipesTable)).
		Where(sql.And(sql.EQ("user_id", userID), sql.EQ("word_id", wordID)))
	err := r.query(ctx, "get swipe", q, func(rows *sql.Rows) error {
		var (
			s      entity.SwipeRecord
			status string
		)
		if err := rows.Scan(&s.ID, &s.UserID, &s.WordID, &status, &s.CreatedAt); err != nil {
			return err
		}
		s.Status = entity.SwipeStatus(status)
		s.CreatedAt = s.CreatedAt.UTC()
		rec = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("upsert swipe: record for word %s vanished", wordID)
	}
	return rec, nil
}

func (r *SwipeRepository) ListLearnedTimestamps(ctx context.Context, userID string) ([]time.Time, error) {
	q := r.builder().Select("created_at").
		From(sql.Table(swipesTable)).
		Where(sql.And(
			sql.EQ("user_id", userID),
			sql.EQ("status", string(entity.SwipeStatusLearned)),
		))

	timestamps := make([]time.Time, 0)
	err := r.query(ctx, "list learned timestamps", q, func(rows *sql.Rows) error {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return err
		}
		timestamps = append(timestamps, at.UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return timestamps, nil
}

func (r *SwipeRepository) ListLearnedWords(ctx context.Context, query *repository.ListLearnedWordQuery) ([]entity.LearnedWord, int64, error) {
	var params learnedWordParams
	sorts, err := filterexpr.Bind(&query.FilterOrder, &params, listLearnedWordsSchema)
	if err != nil {
		if errors.Is(err, filterexpr.ErrInvalid) {
			return nil, 0, fmt.Errorf("%w: %v", entity.ErrInvalidListArgument, err)
		}
		return nil, 0, err
	}

	b := r.builder()
	w := b.Table(wordsTable)
	s := b.Table(swipesTable)

	preds := []*sql.Predicate{
		sql.EQ(s.C("user_id"), query.UserID),
		sql.EQ(s.C("status"), string(entity.SwipeStatusLearned)),
	}
	if level := strings.TrimSpace(params.Level); level != "" {
		preds = append(preds, sql.EQ(w.C("level"), strings.ToUpper(level)))
	}
	if params.TextPrefix != "" {
		preds = append(preds, sql.HasPrefix(w.C("text"), params.TextPrefix))
	}
	if texts := cleanStrings(params.Texts); len(texts) > 0 {
		preds = append(preds, sql.In(w.C("text"), texts...))
	}
	if !params.LearnedSince.IsZero() {
		preds = append(preds, sql.GTE(s.C("created_at"), storeTime(params.LearnedSince)))
	}
	if !params.LearnedUntil.IsZero() {
		preds = append(preds, sql.LTE(s.C("created_at"), storeTime(params.LearnedUntil)))
	}
	joined := func(columns ...string) *sql.Selector {
		return b.Select(columns...).
			From(w).
			Join(s).
			On(s.C("word_id"), w.C("id")).
			Where(sql.And(preds...))
	}

	var total int64
	err = r.query(ctx, "count learned words", joined(sql.Count("*")), func(rows *sql.Rows) error {
		return rows.Scan(&total)
	})
	if err != nil {
		return nil, 0, err
	}

	limit, offset := pageWindow(query.Pagination)
	q := joined(append(qualified(w, wordColumns), s.C("created_at"))...).Limit(limit).Offset(offset)
	for _, sort := range sorts {
		switch sort.Key {
		case "learned_at":
			orderBy(q, s.C("created_at"), sort.Desc)
		case "text":
			orderBy(q, w.C("text"), sort.Desc)
		default:
			orderBy(q, w.C("id"), sort.Desc)
		}
	}

	items := make([]entity.LearnedWord, 0, limit)
	err = r.query(ctx, "list learned words", q, func(rows *sql.Rows) error {
		var learnedAt time.Time
		word, err := scanWord(rows, &learnedAt)
		if err != nil {
			return err
		}
		items = append(items, entity.LearnedWord{Word: word, LearnedAt: learnedAt.UTC()})
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func pageWindow(p repository.Pagination) (limit, offset int) {
	size := int(p.PageSize)
	switch {
	case size <= 0:
		size = defaultPageSize
	case size > maxPageSize:
		size = maxPageSize
	}
	page := max(int(p.PageNo), 1)
	return size, (page - 1) * size
}
