package entity

import "math"

// ProgressSnapshot is the read model behind the stats and achievements screens.
type ProgressSnapshot struct {
	LearnedCount int             `json:"learnedCount"`
	TotalLearned int             `json:"totalLearned"`
	TotalCount   int             `json:"totalCount"`
	Accuracy     int             `json:"accuracy"`
	TotalScore   int64           `json:"totalScore"`
	GamesPlayed  int64           `json:"gamesPlayed"`
	Streak       int             `json:"streak"`
	WeeklyData   []DailyActivity `json:"weeklyData"`
	Badges       []BadgeStatus   `json:"badges"`
	RecentGames  []GameResult    `json:"recentGames"`
}

// DailyActivity counts the words learned on one calendar day.
type DailyActivity struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Words int    `json:"words"`
}

// Accuracy returns round(100*correct/(correct+wrong)), or 0 when nothing was answered.
func Accuracy(correct, wrong int64) int {
	total := correct + wrong
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
