package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/repository"
)

const (
	defaultRecentGames = 10
	weekDays           = 7
	dayKeyLayout       = "2006-01-02"
)

// ProgressOptions configures calendar math and the size of the recent games list.
type ProgressOptions struct {
	Location    *time.Location
	RecentGames int
}

// ProgressUsecase derives statistics, streaks and badges from a user's history.
type ProgressUsecase interface {
	GetProgressSnapshot(ctx context.Context, userID string) (*entity.ProgressSnapshot, error)
}

// NewProgressUsecase wires the read ports. A nil location means UTC.
func NewProgressUsecase(words repository.WordRepository, swipes repository.SwipeRepository, games repository.GameResultRepository, opts ProgressOptions) ProgressUsecase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.RecentGames <= 0 {
		opts.RecentGames = defaultRecentGames
	}
	return &progressUsecase{
		words:  words,
		swipes: swipes,
		games:  games,
		loc:    opts.Location,
		recent: opts.RecentGames,
		clock:  time.Now,
	}
}

type progressUsecase struct {
	words  repository.WordRepository
	swipes repository.SwipeRepository
	games  repository.GameResultRepository
	loc    *time.Location
	recent int
	clock  func() time.Time
}

func (u *progressUsecase) GetProgressSnapshot(ctx context.Context, userID string) (*entity.ProgressSnapshot, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.ErrInvalidUserID
	}

	var (
		totalWords int64
		learnedAt  []time.Time
		totals     entity.GameTotals
		recent     []entity.GameResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalWords, err = u.words.CountAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		learnedAt, err = u.swipes.ListLearnedTimestamps(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		totals, err = u.games.Totals(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		recent, err = u.games.List(gctx, repository.ListGameResultsQuery{
			UserID:    userID,
			Limit:     u.recent,
			OrderDesc: true,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := u.clock()
	streak := computeStreak(learnedAt, now, u.loc)
	accuracy := entity.Accuracy(totals.Correct, totals.Wrong)
	if recent == nil {
		recent = []entity.GameResult{}
	}

	return &entity.ProgressSnapshot{
		LearnedCount: len(learnedAt),
		TotalLearned: len(learnedAt),
		TotalCount:   int(totalWords),
		Accuracy:     accuracy,
		TotalScore:   totals.Score,
		GamesPlayed:  totals.Count,
		Streak:       streak,
		WeeklyData:   weeklyActivity(learnedAt, now, u.loc),
		Badges: entity.EvaluateBadges(entity.BadgeMetrics{
			LearnedCount: int64(len(learnedAt)),
			Streak:       int64(streak),
			TotalScore:   totals.Score,
			GamesPlayed:  totals.Count,
			Accuracy:     int64(accuracy),
			Answered:     totals.Answered(),
		}),
		RecentGames: recent,
	}, nil
}

func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}

// computeStreak counts consecutive calendar days with learning activity, anchored at today
// or, when today has none yet, at yesterday.
func computeStreak(timestamps []time.Time, now time.Time, loc *time.Location) int {
	if len(timestamps) == 0 {
		return 0
	}
	active := make(map[string]struct{}, len(timestamps))
	for _, ts := range timestamps {
		active[dayKey(ts, loc)] = struct{}{}
	}
	has := func(day time.Time) bool {
		_, ok := active[day.Format(dayKeyLayout)]
		return ok
	}

	anchor := calendarDay(now, loc)
	if !has(anchor) {
		anchor = anchor.AddDate(0, 0, -1)
		if !has(anchor) {
			return 0
		}
	}

	streak := 0
	for day := anchor; has(day); day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// weeklyActivity buckets timestamps into the trailing seven calendar days, oldest first.
func weeklyActivity(timestamps []time.Time, now time.Time, loc *time.Location) []entity.DailyActivity {
	counts := make(map[string]int, weekDays)
	for _, ts := range timestamps {
		counts[dayKey(ts, loc)]++
	}

	today := calendarDay(now, loc)
	out := make([]entity.DailyActivity, 0, weekDays)
	for offset := weekDays - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		key := day.Format(dayKeyLayout)
		out = append(out, entity.DailyActivity{
			Name:  day.Format("Mon"),
			Date:  key,
			Words: counts[key],
		})
	}
	return out
}
