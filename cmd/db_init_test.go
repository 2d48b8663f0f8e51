package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/eslsoft/kelimo/internal/entity"
)

func Test_resolveSeed_download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lists/a1.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("text,meaning\nhouse,ev\n"))
	}))
	defer srv.Close()

	got, err := resolveSeed(context.Background(), srv.URL+"/lists/a1.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(filepath.Dir(got))
	if filepath.Base(got) != "a1.csv" {
		t.Fatalf("expected remote file name, got %s", got)
	}
	words, err := readWordFile(got, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 1 || words[0].Meaning != "ev" {
		t.Fatalf("unexpected words: %+v", words)
	}

	if _, err := resolveSeed(context.Background(), srv.URL+"/missing.csv"); err == nil {
		t.Fatal("expected error for 404")
	}
}

func Test_resolveSeed_localPath(t *testing.T) {
	got, err := resolveSeed(context.Background(), "seed/words.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if got != "seed/words.xlsx" {
		t.Fatalf("local path changed: %s", got)
	}
}

func sampleSnapshot() *entity.ProgressSnapshot {
	return &entity.ProgressSnapshot{
		LearnedCount: 12,
		TotalCount:   40,
		Accuracy:     83,
		TotalScore:   420,
		GamesPlayed:  3,
		Streak:       2,
		WeeklyData: []entity.DailyActivity{
			{Name: "Mon", Date: "2024-05-06", Words: 0},
			{Name: "Tue", Date: "2024-05-07", Words: 3},
		},
		Badges: []entity.BadgeStatus{
			{BadgeDefinition: entity.BadgeDefinition{ID: 101, Name: "First Steps", Description: "Learn 10 words"}, Unlocked: true},
			{BadgeDefinition: entity.BadgeDefinition{ID: 102, Name: "Word Apprentice", Description: "Learn 50 words"}},
		},
		RecentGames: []entity.GameResult{
			{GameType: entity.GameTypeQuiz, Score: 90, Correct: 9, Wrong: 1, CreatedAt: time.Date(2024, 5, 7, 9, 30, 0, 0, time.UTC)},
		},
	}
}

func Test_writeProgressYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeProgressYAML(&buf, sampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	var view progressView
	if err := yaml.Unmarshal(buf.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.LearnedCount != 12 || view.Accuracy != 83 || view.Weekly["2024-05-07"] != 3 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if len(view.Badges) != 1 || view.Badges[0] != "First Steps" {
		t.Fatalf("only unlocked badges expected: %v", view.Badges)
	}
}

func Test_writeProgressText(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	writeProgressText(&buf, sampleSnapshot())
	out := buf.String()
	for _, want := range []string{"learned   12 / 40", "accuracy  83%", "2024-05-07 Tue ### 3", "[x] First Steps", "[ ] Word Apprentice", "QUIZ", "(9/10)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}
