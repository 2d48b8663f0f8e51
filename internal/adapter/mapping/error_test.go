package mapping

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/kelimo/internal/entity"
)

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code connect.Code
	}{
		{name: "store unavailable", err: &entity.StoreUnavailableError{Op: "count words", Err: errors.New("dial tcp")}, code: connect.CodeUnavailable},
		{name: "invalid game type", err: entity.ErrInvalidGameType, code: connect.CodeInvalidArgument},
		{name: "wrapped list argument", err: fmt.Errorf("%w: bad", entity.ErrInvalidListArgument), code: connect.CodeInvalidArgument},
		{name: "word not found", err: entity.ErrWordNotFound, code: connect.CodeNotFound},
		{name: "login state", err: entity.ErrLoginStateNotFound, code: connect.CodeNotFound},
		{name: "login store disabled", err: entity.ErrLoginStoreDisabled, code: connect.CodeUnimplemented},
		{name: "unknown", err: errors.New("boom"), code: connect.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, connect.CodeOf(ToConnectError(tt.err)))
		})
	}
	assert.NoError(t, ToConnectError(nil))
}

func TestToConnectErrorInsufficientPool(t *testing.T) {
	err := ToConnectError(entity.NewInsufficientPoolError(6, 2))

	var connectErr *connect.Error
	require.ErrorAs(t, err, &connectErr)
	assert.Equal(t, connect.CodeFailedPrecondition, connectErr.Code())
	assert.Equal(t, "6", connectErr.Meta().Get(HeaderRequiredWords))
	assert.Equal(t, "2", connectErr.Meta().Get(HeaderActualWords))
	assert.ErrorIs(t, err, entity.ErrInsufficientPool)
}

func TestToConnectErrorPassesConnectErrors(t *testing.T) {
	original := connect.NewError(connect.CodeUnauthenticated, errors.New("no token"))
	assert.Same(t, original, ToConnectError(original))
}
