package entity

import "strings"

// QuizMode selects the direction of a multiple-choice quiz.
type QuizMode string

const (
	QuizModeEnToTr QuizMode = "EN_TR"
	QuizModeTrToEn QuizMode = "TR_EN"
)

// ParseQuizMode defaults to EN_TR when raw is empty.
func ParseQuizMode(raw string) (QuizMode, error) {
	switch QuizMode(strings.ToUpper(strings.TrimSpace(raw))) {
	case "", QuizModeEnToTr:
		return QuizModeEnToTr, nil
	case QuizModeTrToEn:
		return QuizModeTrToEn, nil
	default:
		return "", ErrInvalidQuizMode
	}
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type FillBlankQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	Options       []string `json:"options"`
	Meaning       string   `json:"meaning"`
}

// MemoryCardType tells which side of a pair a card shows.
type MemoryCardType string

const (
	MemoryCardEN MemoryCardType = "EN"
	MemoryCardTR MemoryCardType = "TR"
)

type MemoryCard struct {
	ID      string         `json:"id"`
	MatchID string         `json:"matchId"`
	Text    string         `json:"text"`
	Type    MemoryCardType `json:"type"`
}

// WordPrompt is the question shape shared by scramble and dictation.
type WordPrompt struct {
	ID      string `json:"id"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

// GameSet is a generated round. Exactly one of the question slices is populated,
// matching Type.
type GameSet struct {
	Type      GameType
	Quiz      []QuizQuestion
	FillBlank []FillBlankQuestion
	Memory    []MemoryCard
	Prompts   []WordPrompt
}

// Questions returns the populated slice for serialisation.
func (g *GameSet) Questions() any {
	switch g.Type {
	case GameTypeQuiz:
		return g.Quiz
	case GameTypeFillBlank:
		return g.FillBlank
	case GameTypeMemory:
		return g.Memory
	default:
		return g.Prompts
	}
}

// Len is the number of questions or cards in the round.
func (g *GameSet) Len() int {
	return len(g.Quiz) + len(g.FillBlank) + len(g.Memory) + len(g.Prompts)
}
