package entity

import (
	"strings"
	"time"
)

// GameType identifies one of the practice mini-games.
type GameType string

const (
	GameTypeQuiz      GameType = "QUIZ"
	GameTypeScramble  GameType = "SCRAMBLE"
	GameTypeFillBlank GameType = "FILL_BLANK"
	GameTypeMemory    GameType = "MEMORY"
	GameTypeDictation GameType = "DICTATION"
)

// GameTypes lists every supported game in display order.
var GameTypes = []GameType{
	GameTypeQuiz,
	GameTypeScramble,
	GameTypeFillBlank,
	GameTypeMemory,
	GameTypeDictation,
}

// ParseGameType accepts "fill-blank", "Fill_Blank" and similar spellings.
func ParseGameType(raw string) (GameType, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "-", "_"))
	for _, gt := range GameTypes {
		if string(gt) == normalized {
			return gt, nil
		}
	}
	return "", ErrInvalidGameType
}

// GameResult is an append-only record of a finished game session.
type GameResult struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	GameType  GameType  `json:"gameType"`
	Score     int       `json:"score"`
	Correct   int       `json:"correct"`
	Wrong     int       `json:"wrong"`
	CreatedAt time.Time `json:"createdAt"`
}

// PointsPerCorrect is the score a game awards for each correct answer.
const PointsPerCorrect = 10

// ScoreFor returns the score of a game with correct right answers, never negative.
func ScoreFor(correct int) int {
	return max(correct, 0) * PointsPerCorrect
}

// GameTotals aggregates every game result of a user.
type GameTotals struct {
	Correct int64
	Wrong   int64
	Score   int64
	Count   int64
}

// Answered is the number of questions the user has answered across all games.
func (t GameTotals) Answered() int64 {
	return t.Correct + t.Wrong
}
