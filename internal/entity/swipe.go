package entity

import (
	"strings"
	"time"
)

// SwipeStatus is the outcome of a swipe on a word card.
type SwipeStatus string

const (
	SwipeStatusNew     SwipeStatus = "NEW"
	SwipeStatusLearned SwipeStatus = "LEARNED"
)

// ParseSwipeStatus accepts the status case-insensitively.
func ParseSwipeStatus(raw string) (SwipeStatus, error) {
	switch SwipeStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case SwipeStatusNew:
		return SwipeStatusNew, nil
	case SwipeStatusLearned:
		return SwipeStatusLearned, nil
	default:
		return "", ErrInvalidSwipeStatus
	}
}

// SwipeRecord is the single row per (user, word) pair. Re-swiping only changes Status;
// CreatedAt keeps the moment of the first swipe.
type SwipeRecord struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	WordID    string      `json:"wordId"`
	Status    SwipeStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
