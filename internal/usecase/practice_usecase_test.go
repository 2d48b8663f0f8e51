package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eslsoft/kelimo/internal/entity"
	mock_repository "github.com/eslsoft/kelimo/internal/mocks/repository"
	"github.com/eslsoft/kelimo/internal/usecase/practice"
)

func seedLearned(store *fakeStore, userID string, n int, withExample func(i int) bool) {
	for i := 0; i < n; i++ {
		w := entity.Word{
			ID:      fmt.Sprintf("%s-w%d", userID, i),
			Text:    fmt.Sprintf("term%d", i),
			Meaning: fmt.Sprintf("anlam%d", i),
		}
		if withExample == nil || withExample(i) {
			w.Example = fmt.Sprintf("I wrote term%d on the board.", i)
		}
		store.addWords(w)
		store.learn(userID, w.ID, time.Now())
	}
}

func newPracticeFixture() (*fakeStore, PracticeUsecase) {
	store := newFakeStore()
	gen := practice.NewGenerator(rand.New(rand.NewPCG(3, 5)))
	return store, NewPracticeUsecase(store, store, gen)
}

func TestGenerateGameUsesLearnedPool(t *testing.T) {
	store, uc := newPracticeFixture()
	seedLearned(store, "u1", 6, nil)
	store.addWords(entity.Word{ID: "other", Text: "unlearned", Meaning: "x"})

	set, err := uc.GenerateGame(context.Background(), "u1", entity.GameTypeQuiz, practice.Options{Mode: entity.QuizModeTrToEn})
	require.NoError(t, err)
	require.Len(t, set.Quiz, 6)
	for _, q := range set.Quiz {
		assert.NotEqual(t, "other", q.ID)
		assert.NotContains(t, q.Options, "unlearned")
	}
}

func TestGenerateGameInsufficientPool(t *testing.T) {
	store, uc := newPracticeFixture()
	seedLearned(store, "u1", 4, nil)

	_, err := uc.GenerateGame(context.Background(), "u1", entity.GameTypeQuiz, practice.Options{})
	var poolErr *entity.InsufficientPoolError
	require.ErrorAs(t, err, &poolErr)
	assert.Equal(t, 5, poolErr.Required)
	assert.Equal(t, 4, poolErr.Actual)
}

func TestGenerateGameFillBlankReadsExamplePool(t *testing.T) {
	store, uc := newPracticeFixture()
	seedLearned(store, "u1", 8, func(i int) bool { return i%2 == 0 })

	_, err := uc.GenerateGame(context.Background(), "u1", entity.GameTypeFillBlank, practice.Options{})
	var poolErr *entity.InsufficientPoolError
	require.ErrorAs(t, err, &poolErr)
	assert.Equal(t, 4, poolErr.Actual)

	seedLearned(store, "u2", 5, nil)
	set, err := uc.GenerateGame(context.Background(), "u2", "fill-blank", practice.Options{})
	require.NoError(t, err)
	assert.Len(t, set.FillBlank, 5)
}

func TestGenerateGameRejectsUnknownType(t *testing.T) {
	_, uc := newPracticeFixture()
	_, err := uc.GenerateGame(context.Background(), "u1", "CROSSWORD", practice.Options{})
	assert.ErrorIs(t, err, entity.ErrInvalidGameType)
}

func TestGenerateGamePropagatesStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	words := mock_repository.NewMockWordRepository(ctrl)
	games := mock_repository.NewMockGameResultRepository(ctrl)

	storeErr := &entity.StoreUnavailableError{Op: "list learned words", Err: errors.New("timeout")}
	words.EXPECT().ListLearnedBy(gomock.Any(), "u1").Return(nil, storeErr)

	uc := NewPracticeUsecase(words, games, nil)
	set, err := uc.GenerateGame(context.Background(), "u1", entity.GameTypeMemory, practice.Options{})
	assert.Nil(t, set)
	assert.Same(t, storeErr, err)
}

func TestRecordGameResultClampsNegatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	words := mock_repository.NewMockWordRepository(ctrl)
	games := mock_repository.NewMockGameResultRepository(ctrl)

	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	games.EXPECT().
		Insert(gomock.Any(), &entity.GameResult{
			UserID: "u1", GameType: entity.GameTypeScramble,
			Score: 30, Correct: 3, Wrong: 0, CreatedAt: fixed,
		}).
		DoAndReturn(func(_ context.Context, r *entity.GameResult) (*entity.GameResult, error) {
			saved := *r
			saved.ID = "g1"
			return &saved, nil
		})

	uc := NewPracticeUsecase(words, games, nil).(*practiceUsecase)
	uc.clock = func() time.Time { return fixed }

	got, err := uc.RecordGameResult(context.Background(), "u1", entity.GameResult{
		GameType: "scramble", Score: -40, Correct: 3, Wrong: -2,
	})
	require.NoError(t, err)
	assert.Equal(t, "g1", got.ID)
	assert.Equal(t, 30, got.Score)
}

func TestRecordGameResultDerivesScoreFromCorrect(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		correct int
		wrong   int
		want    int
	}{
		{name: "inflated score", score: 5000, correct: 1, wrong: 9, want: 10},
		{name: "deflated score", score: 0, correct: 7, wrong: 3, want: 70},
		{name: "negative correct", score: 50, correct: -4, wrong: 2, want: 0},
		{name: "matching score", score: 40, correct: 4, wrong: 0, want: 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, uc := newPracticeFixture()
			got, err := uc.RecordGameResult(context.Background(), "u1", entity.GameResult{
				GameType: entity.GameTypeQuiz, Score: tt.score, Correct: tt.correct, Wrong: tt.wrong,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Score)

			totals, err := store.Totals(context.Background(), "u1")
			require.NoError(t, err)
			assert.EqualValues(t, tt.want, totals.Score)
		})
	}
}

func TestRecordGameResultValidation(t *testing.T) {
	_, uc := newPracticeFixture()

	_, err := uc.RecordGameResult(context.Background(), "", entity.GameResult{GameType: entity.GameTypeQuiz})
	assert.ErrorIs(t, err, entity.ErrInvalidUserID)

	_, err = uc.RecordGameResult(context.Background(), "u1", entity.GameResult{GameType: "POKER"})
	assert.ErrorIs(t, err, entity.ErrInvalidGameType)
}
