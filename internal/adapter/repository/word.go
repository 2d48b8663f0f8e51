package repository

import (
	"context"
	"errors"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/repository"
)

const importChunkSize = 500

type WordRepository struct {
	base
}

// NewWordRepository constructs a word repository on top of an ent SQL driver.
func NewWordRepository(drv dialect.Driver) repository.WordRepository {
	return &WordRepository{base: base{drv: drv}}
}

func (r *WordRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	q := r.builder().Select(sql.Count("*")).From(sql.Table(wordsTable))
	err := r.query(ctx, "count words", q, func(rows *sql.Rows) error {
		return rows.Scan(&total)
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *WordRepository) GetByID(ctx context.Context, id string) (*entity.Word, error) {
	var found *entity.Word
	q := r.builder().Select(wordColumns...).From(sql.Table(wordsTable)).Where(sql.EQ("id", id)).Limit(1)
	err := r.query(ctx, "get word", q, func(rows *sql.Rows) error {
		w, err := scanWord(rows)
		found = &w
		return err
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, entity.ErrWordNotFound
	}
	return found, nil
}

func (r *WordRepository) ListFeed(ctx context.Context, userID string, limit int) ([]entity.Word, error) {
	b := r.builder()
	w := b.Table(wordsTable)
	s := b.Table(swipesTable)

	q := b.Select(qualified(w, wordColumns)...).
		From(w).
		LeftJoin(s).
		OnP(sql.And(
			sql.ColumnsEQ(s.C("word_id"), w.C("id")),
			sql.EQ(s.C("user_id"), userID),
		)).
		Where(sql.IsNull(s.C("id"))).
		Limit(limit)
	orderBy(q, w.C("created_at"), true)
	orderBy(q, w.C("id"), true)

	return r.collect(ctx, "list feed", q)
}

func (r *WordRepository) ListLearnedBy(ctx context.Context, userID string) ([]entity.Word, error) {
	return r.listLearned(ctx, "list learned words", userID, false)
}

func (r *WordRepository) ListLearnedWithExampleBy(ctx context.Context, userID string) ([]entity.Word, error) {
	return r.listLearned(ctx, "list learned words with example", userID, true)
}

func (r *WordRepository) listLearned(ctx context.Context, op, userID string, withExample bool) ([]entity.Word, error) {
	b := r.builder()
	w := b.Table(wordsTable)
	s := b.Table(swipesTable)

	preds := []*sql.Predicate{
		sql.EQ(s.C("user_id"), userID),
		sql.EQ(s.C("status"), string(entity.SwipeStatusLearned)),
	}
	if withExample {
		preds = append(preds, sql.NEQ(w.C("example"), ""))
	}
	q := b.Select(qualified(w, wordColumns)...).
		From(w).
		Join(s).
		On(s.C("word_id"), w.C("id")).
		Where(sql.And(preds...))
	orderBy(q, w.C("text"), false)

	return r.collect(ctx, op, q)
}

func (r *WordRepository) collect(ctx context.Context, op string, q *sql.Selector) ([]entity.Word, error) {
	words := make([]entity.Word, 0)
	err := r.query(ctx, op, q, func(rows *sql.Rows) error {
		w, err := scanWord(rows)
		if err != nil {
			return err
		}
		words = append(words, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// CreateBatch inserts the words in one transaction. Texts that already exist are skipped.
func (r *WordRepository) CreateBatch(ctx context.Context, words []entity.Word) (summary entity.ImportSummary, err error) {
	if len(words) == 0 {
		return summary, nil
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return summary, translateError("begin import", err)
	}
	committed := false
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); !committed && rbErr != nil {
				err = errors.Join(err, rbErr)
			}
			summary = entity.ImportSummary{}
		}
	}()

	for _, chunk := range lo.Chunk(words, importChunkSize) {
		ins := r.builder().Insert(wordsTable).Columns(wordColumns...)
		for _, w := range chunk {
			id := w.ID
			if id == "" {
				id = uuid.NewString()
			}
			ins.Values(id, w.Text, w.Meaning, w.Example, w.Level, storeTime(w.CreatedAt))
		}
		ins.OnConflict(sql.ConflictColumns("text"), sql.DoNothing())

		created, err := r.exec(ctx, "import words", tx, ins)
		if err != nil {
			return summary, err
		}
		summary.Created += int(created)
		summary.Skipped += len(chunk) - int(created)
	}

	committed = true
	if err := tx.Commit(); err != nil {
		return summary, translateError("commit import", err)
	}
	return summary, nil
}
