package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/repository"
)

func TestSwipeIsIdempotentPerWord(t *testing.T) {
	store := newFakeStore()
	first := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return first }
	store.addWords(entity.Word{ID: "w1", Text: "apple", Meaning: "elma"})
	uc := NewWordUsecase(store, store)

	rec, err := uc.Swipe(context.Background(), "u1", "w1", entity.SwipeStatusNew)
	require.NoError(t, err)
	assert.Equal(t, entity.SwipeStatusNew, rec.Status)

	store.now = func() time.Time { return first.Add(48 * time.Hour) }
	rec2, err := uc.Swipe(context.Background(), "u1", "w1", "learned")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, rec2.ID)
	assert.Equal(t, entity.SwipeStatusLearned, rec2.Status)
	assert.True(t, rec2.CreatedAt.Equal(first))

	timestamps, err := store.ListLearnedTimestamps(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, timestamps, 1)
}

func TestSwipeValidation(t *testing.T) {
	store := newFakeStore()
	store.addWords(entity.Word{ID: "w1", Text: "apple", Meaning: "elma"})
	uc := NewWordUsecase(store, store)

	tests := []struct {
		name   string
		userID string
		wordID string
		status entity.SwipeStatus
		want   error
	}{
		{name: "missing user", userID: "", wordID: "w1", status: entity.SwipeStatusNew, want: entity.ErrInvalidUserID},
		{name: "missing word", userID: "u1", wordID: " ", status: entity.SwipeStatusNew, want: entity.ErrInvalidWordID},
		{name: "bad status", userID: "u1", wordID: "w1", status: "MAYBE", want: entity.ErrInvalidSwipeStatus},
		{name: "unknown word", userID: "u1", wordID: "w9", status: entity.SwipeStatusLearned, want: entity.ErrWordNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Swipe(context.Background(), tt.userID, tt.wordID, tt.status)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFeedExcludesSwipedWords(t *testing.T) {
	store := newFakeStore()
	store.addWords(
		entity.Word{ID: "w1", Text: "one", Meaning: "bir"},
		entity.Word{ID: "w2", Text: "two", Meaning: "iki"},
		entity.Word{ID: "w3", Text: "three", Meaning: "üç"},
	)
	uc := NewWordUsecase(store, store)
	_, err := uc.Swipe(context.Background(), "u1", "w3", entity.SwipeStatusNew)
	require.NoError(t, err)

	feed, err := uc.Feed(context.Background(), "u1", 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "w2", feed[0].ID)
	assert.Equal(t, "w1", feed[1].ID)
}

func TestImportWordsSkipsInvalidAndDuplicates(t *testing.T) {
	store := newFakeStore()
	store.addWords(entity.Word{ID: "w1", Text: "apple", Meaning: "elma"})
	uc := NewWordUsecase(store, store)

	summary, err := uc.ImportWords(context.Background(), []entity.Word{
		{Text: " Apple ", Meaning: "elma"},
		{Text: "pear", Meaning: "armut", Level: "a1"},
		{Text: "PEAR", Meaning: "armut"},
		{Text: "", Meaning: "boş"},
		{Text: "plum", Meaning: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ImportSummary{Created: 1, Skipped: 4}, summary)

	total, err := store.CountAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestListLearnedWordsRequiresUser(t *testing.T) {
	store := newFakeStore()
	uc := NewWordUsecase(store, store)

	_, _, err := uc.ListLearnedWords(context.Background(), &repository.ListLearnedWordQuery{})
	assert.ErrorIs(t, err, entity.ErrInvalidUserID)
}
