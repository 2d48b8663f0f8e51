package entity

import (
	"errors"
	"fmt"
)

// Domain errors shared by the usecases and adapters.
var (
	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrInvalidWordID       = errors.New("invalid word ID")
	ErrInvalidWordText     = errors.New("invalid word text")
	ErrInvalidWordMeaning  = errors.New("invalid word meaning")
	ErrWordNotFound        = errors.New("word not found")
	ErrInvalidSwipeStatus  = errors.New("invalid swipe status")
	ErrInvalidGameType     = errors.New("invalid game type")
	ErrInvalidQuizMode     = errors.New("invalid quiz mode")
	ErrInvalidReturnURL    = errors.New("invalid return URL")
	ErrLoginStateNotFound  = errors.New("login state not found or expired")
	ErrInvalidLoginToken   = errors.New("invalid login token")
	ErrInsufficientPool    = errors.New("not enough learned words")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrLoginStoreDisabled  = errors.New("login redirect store is not configured")
	ErrInvalidListArgument = errors.New("invalid list argument")
)

// InsufficientPoolError is returned by a game generator when the candidate pool is
// smaller than the game's minimum.
type InsufficientPoolError struct {
	Required int
	Actual   int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("at least %d learned words required, have %d", e.Required, e.Actual)
}

func (e *InsufficientPoolError) Is(target error) bool {
	return target == ErrInsufficientPool
}

// NewInsufficientPoolError builds the error for a pool of actual words against required.
func NewInsufficientPoolError(required, actual int) error {
	return &InsufficientPoolError{Required: required, Actual: actual}
}

// StoreUnavailableError wraps a connectivity failure of the backing store.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("%s: store unavailable: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}
