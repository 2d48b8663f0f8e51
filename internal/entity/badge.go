package entity

// BadgeKind names the metric a badge is measured against.
type BadgeKind string

const (
	BadgeKindLearnedCount BadgeKind = "LEARNED_COUNT"
	BadgeKindStreak       BadgeKind = "STREAK"
	BadgeKindTotalScore   BadgeKind = "TOTAL_SCORE"
	BadgeKindGamesPlayed  BadgeKind = "GAMES_PLAYED"
	BadgeKindAccuracy     BadgeKind = "ACCURACY"
)

// BadgeDefinition is a static achievement rule. MinAnswered only applies to
// accuracy badges so a single lucky answer cannot unlock them.
type BadgeDefinition struct {
	ID          int       `json:"id"`
	Kind        BadgeKind `json:"kind"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Threshold   int64     `json:"threshold"`
	MinAnswered int64     `json:"minAnswered,omitempty"`
}

// BadgeStatus is a definition evaluated for one user.
type BadgeStatus struct {
	BadgeDefinition
	Unlocked bool `json:"unlocked"`
}

// BadgeMetrics carries the values badges are compared against.
type BadgeMetrics struct {
	LearnedCount int64
	Streak       int64
	TotalScore   int64
	GamesPlayed  int64
	Accuracy     int64
	Answered     int64
}

var badgeCatalog = []BadgeDefinition{
	{ID: 101, Kind: BadgeKindLearnedCount, Category: "words", Name: "First Steps", Description: "Learn 10 words", Threshold: 10},
	{ID: 102, Kind: BadgeKindLearnedCount, Category: "words", Name: "Word Apprentice", Description: "Learn 50 words", Threshold: 50},
	{ID: 103, Kind: BadgeKindLearnedCount, Category: "words", Name: "Word Hunter", Description: "Learn 100 words", Threshold: 100},
	{ID: 104, Kind: BadgeKindLearnedCount, Category: "words", Name: "Walking Dictionary", Description: "Learn 500 words", Threshold: 500},
	{ID: 105, Kind: BadgeKindLearnedCount, Category: "words", Name: "Language Master", Description: "Learn 1000 words", Threshold: 1000},

	{ID: 201, Kind: BadgeKindStreak, Category: "streak", Name: "Warm Up", Description: "Keep a 3 day streak", Threshold: 3},
	{ID: 202, Kind: BadgeKindStreak, Category: "streak", Name: "On Fire", Description: "Keep a 7 day streak", Threshold: 7},
	{ID: 203, Kind: BadgeKindStreak, Category: "streak", Name: "Unstoppable", Description: "Keep a 14 day streak", Threshold: 14},
	{ID: 204, Kind: BadgeKindStreak, Category: "streak", Name: "Monthly Marathon", Description: "Keep a 30 day streak", Threshold: 30},

	{ID: 301, Kind: BadgeKindTotalScore, Category: "games", Name: "Point Collector", Description: "Earn 100 XP", Threshold: 100},
	{ID: 302, Kind: BadgeKindTotalScore, Category: "games", Name: "Score Machine", Description: "Earn 1000 XP", Threshold: 1000},
	{ID: 303, Kind: BadgeKindTotalScore, Category: "games", Name: "Legend", Description: "Earn 5000 XP", Threshold: 5000},
	{ID: 304, Kind: BadgeKindGamesPlayed, Category: "games", Name: "Player", Description: "Play 10 games", Threshold: 10},
	{ID: 305, Kind: BadgeKindGamesPlayed, Category: "games", Name: "Hooked", Description: "Play 50 games", Threshold: 50},

	{ID: 401, Kind: BadgeKindAccuracy, Category: "mastery", Name: "Sharpshooter", Description: "90% accuracy over at least 50 questions", Threshold: 90, MinAnswered: 50},
	{ID: 402, Kind: BadgeKindAccuracy, Category: "mastery", Name: "Perfectionist", Description: "100% accuracy over at least 20 questions", Threshold: 100, MinAnswered: 20},
}

// BadgeCatalog returns a copy of every badge definition ordered by ID.
func BadgeCatalog() []BadgeDefinition {
	out := make([]BadgeDefinition, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}

// Metric returns the value of m that kind is measured against.
func (m BadgeMetrics) Metric(kind BadgeKind) int64 {
	switch kind {
	case BadgeKindLearnedCount:
		return m.LearnedCount
	case BadgeKindStreak:
		return m.Streak
	case BadgeKindTotalScore:
		return m.TotalScore
	case BadgeKindGamesPlayed:
		return m.GamesPlayed
	case BadgeKindAccuracy:
		return m.Accuracy
	default:
		return 0
	}
}

// Unlocked reports whether m reaches the badge threshold.
func (d BadgeDefinition) Unlocked(m BadgeMetrics) bool {
	if m.Answered < d.MinAnswered {
		return false
	}
	return m.Metric(d.Kind) >= d.Threshold
}

// EvaluateBadges returns every catalog badge with its unlocked flag for m.
func EvaluateBadges(m BadgeMetrics) []BadgeStatus {
	out := make([]BadgeStatus, 0, len(badgeCatalog))
	for _, def := range badgeCatalog {
		out = append(out, BadgeStatus{BadgeDefinition: def, Unlocked: def.Unlocked(m)})
	}
	return out
}
