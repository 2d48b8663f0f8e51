package entity

import (
	"strings"
	"time"
)

// Word is a dictionary card shown in the swipe feed and reused by every practice game.
type Word struct {
	ID        string    `json:"id"`
	Text      string    `json:"word"`
	Meaning   string    `json:"meaning"`
	Example   string    `json:"example,omitempty"`
	Level     string    `json:"level,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LearnedWord is a word together with the moment the user marked it as learned.
type LearnedWord struct {
	Word
	LearnedAt time.Time `json:"learnedAt"`
}

// HasExample reports whether the word carries a usable example sentence.
func (w Word) HasExample() bool {
	return strings.TrimSpace(w.Example) != ""
}

// Normalize trims free-text fields and stamps the creation time.
func (w *Word) Normalize(now time.Time) {
	w.Text = strings.TrimSpace(w.Text)
	w.Meaning = strings.TrimSpace(w.Meaning)
	w.Example = strings.TrimSpace(w.Example)
	w.Level = strings.ToUpper(strings.TrimSpace(w.Level))
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
}

// Validate checks the invariants required before a word can be stored.
func (w Word) Validate() error {
	if strings.TrimSpace(w.Text) == "" {
		return ErrInvalidWordText
	}
	if strings.TrimSpace(w.Meaning) == "" {
		return ErrInvalidWordMeaning
	}
	return nil
}

// ImportSummary reports the outcome of a bulk word import.
type ImportSummary struct {
	Created int
	Skipped int
}
