package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/repository"
)

// fakeStore is an in-memory WordStore.
type fakeStore struct {
	mu     sync.RWMutex
	seq    int
	words  []entity.Word
	swipes map[string]*entity.SwipeRecord
	games  []entity.GameResult
	now    func() time.Time
}

var _ repository.WordStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		swipes: make(map[string]*entity.SwipeRecord),
		now:    time.Now,
	}
}

func (s *fakeStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *fakeStore) addWords(words ...entity.Word) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range words {
		if w.ID == "" {
			w.ID = s.nextID("word")
		}
		s.words = append(s.words, w)
	}
}

// learn marks wordID as learned at the given time, bypassing Upsert.
func (s *fakeStore) learn(userID, wordID string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.swipes[userID+"|"+wordID] = &entity.SwipeRecord{
		ID:        s.nextID("swipe"),
		UserID:    userID,
		WordID:    wordID,
		Status:    entity.SwipeStatusLearned,
		CreatedAt: at,
	}
}

func (s *fakeStore) CountAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.words)), nil
}

func (s *fakeStore) GetByID(ctx context.Context, id string) (*entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.words {
		if w.ID == id {
			copy := w
			return &copy, nil
		}
	}
	return nil, entity.ErrWordNotFound
}

func (s *fakeStore) ListFeed(ctx context.Context, userID string, limit int) ([]entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Word
	for i := len(s.words) - 1; i >= 0 && len(out) < limit; i-- {
		if _, swiped := s.swipes[userID+"|"+s.words[i].ID]; swiped {
			continue
		}
		out = append(out, s.words[i])
	}
	return out, nil
}

func (s *fakeStore) ListLearnedBy(ctx context.Context, userID string) ([]entity.Word, error) {
	return s.learnedWords(ctx, userID, false)
}

func (s *fakeStore) ListLearnedWithExampleBy(ctx context.Context, userID string) ([]entity.Word, error) {
	return s.learnedWords(ctx, userID, true)
}

func (s *fakeStore) learnedWords(ctx context.Context, userID string, withExample bool) ([]entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Word
	for _, w := range s.words {
		rec, ok := s.swipes[userID+"|"+w.ID]
		if !ok || rec.Status != entity.SwipeStatusLearned {
			continue
		}
		if withExample && !w.HasExample() {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (s *fakeStore) CreateBatch(ctx context.Context, words []entity.Word) (entity.ImportSummary, error) {
	if err := ctx.Err(); err != nil {
		return entity.ImportSummary{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var summary entity.ImportSummary
	for _, w := range words {
		exists := false
		for _, existing := range s.words {
			if strings.EqualFold(existing.Text, w.Text) {
				exists = true
				break
			}
		}
		if exists {
			summary.Skipped++
			continue
		}
		w.ID = s.nextID("word")
		s.words = append(s.words, w)
		summary.Created++
	}
	return summary, nil
}

func (s *fakeStore) Upsert(ctx context.Context, userID, wordID string, status entity.SwipeStatus) (*entity.SwipeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userID + "|" + wordID
	rec, ok := s.swipes[key]
	if !ok {
		rec = &entity.SwipeRecord{ID: s.nextID("swipe"), UserID: userID, WordID: wordID, CreatedAt: s.now()}
		s.swipes[key] = rec
	}
	rec.Status = status
	copy := *rec
	return &copy, nil
}

func (s *fakeStore) ListLearnedTimestamps(ctx context.Context, userID string) ([]time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []time.Time
	for _, rec := range s.swipes {
		if rec.UserID == userID && rec.Status == entity.SwipeStatusLearned {
			out = append(out, rec.CreatedAt)
		}
	}
	return out, nil
}

func (s *fakeStore) ListLearnedWords(ctx context.Context, query *repository.ListLearnedWordQuery) ([]entity.LearnedWord, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.LearnedWord
	for _, w := range s.words {
		rec, ok := s.swipes[query.UserID+"|"+w.ID]
		if ok && rec.Status == entity.SwipeStatusLearned {
			out = append(out, entity.LearnedWord{Word: w, LearnedAt: rec.CreatedAt})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LearnedAt.After(out[j].LearnedAt) })
	return out, int64(len(out)), nil
}

func (s *fakeStore) Insert(ctx context.Context, result *entity.GameResult) (*entity.GameResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *result
	copy.ID = s.nextID("game")
	s.games = append(s.games, copy)
	return &copy, nil
}

func (s *fakeStore) List(ctx context.Context, query repository.ListGameResultsQuery) ([]entity.GameResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.GameResult
	for _, g := range s.games {
		if g.UserID != query.UserID || (!query.Since.IsZero() && g.CreatedAt.Before(query.Since)) {
			continue
		}
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if query.OrderDesc {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

func (s *fakeStore) Totals(ctx context.Context, userID string) (entity.GameTotals, error) {
	if err := ctx.Err(); err != nil {
		return entity.GameTotals{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var totals entity.GameTotals
	for _, g := range s.games {
		if g.UserID != userID {
			continue
		}
		totals.Correct += int64(g.Correct)
		totals.Wrong += int64(g.Wrong)
		totals.Score += int64(g.Score)
		totals.Count++
	}
	return totals, nil
}

// fakeLoginStore is an in-memory LoginStateStore that honours TTLs against now.
type fakeLoginStore struct {
	mu      sync.Mutex
	entries map[string]fakeLoginEntry
	now     func() time.Time
}

type fakeLoginEntry struct {
	url     string
	expires time.Time
}

func newFakeLoginStore() *fakeLoginStore {
	return &fakeLoginStore{entries: make(map[string]fakeLoginEntry), now: time.Now}
}

func (s *fakeLoginStore) Put(_ context.Context, state, returnURL string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[state] = fakeLoginEntry{url: returnURL, expires: s.now().Add(ttl)}
	return nil
}

func (s *fakeLoginStore) Take(_ context.Context, state string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[state]
	delete(s.entries, state)
	if !ok || !s.now().Before(entry.expires) {
		return "", entity.ErrLoginStateNotFound
	}
	return entry.url, nil
}
