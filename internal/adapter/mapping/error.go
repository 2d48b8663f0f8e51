package mapping

import (
	"errors"
	"strconv"

	"connectrpc.com/connect"

	"github.com/eslsoft/kelimo/internal/entity"
)

const (
	HeaderRequiredWords = "Kelimo-Required-Words"
	HeaderActualWords   = "Kelimo-Actual-Words"
)

// ToConnectError converts usecase errors into Connect errors. Errors that are
// already *connect.Error pass through.
func ToConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var poolErr *entity.InsufficientPoolError
	if errors.As(err, &poolErr) {
		out := connect.NewError(connect.CodeFailedPrecondition, err)
		out.Meta().Set(HeaderRequiredWords, strconv.Itoa(poolErr.Required))
		out.Meta().Set(HeaderActualWords, strconv.Itoa(poolErr.Actual))
		return out
	}

	switch {
	case errors.Is(err, entity.ErrStoreUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, entity.ErrLoginStoreDisabled):
		return connect.NewError(connect.CodeUnimplemented, err)
	case errors.Is(err, entity.ErrInvalidUserID),
		errors.Is(err, entity.ErrInvalidWordID),
		errors.Is(err, entity.ErrInvalidSwipeStatus),
		errors.Is(err, entity.ErrInvalidGameType),
		errors.Is(err, entity.ErrInvalidQuizMode),
		errors.Is(err, entity.ErrInvalidReturnURL),
		errors.Is(err, entity.ErrInvalidLoginToken),
		errors.Is(err, entity.ErrInvalidListArgument),
		errors.Is(err, entity.ErrInvalidWordText),
		errors.Is(err, entity.ErrInvalidWordMeaning):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, entity.ErrWordNotFound), errors.Is(err, entity.ErrLoginStateNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
