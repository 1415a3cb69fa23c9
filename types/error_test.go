package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_ChainingAndHelpers(t *testing.T) {
	t.Parallel()

	root := errors.New("connection refused")
	err := NewError(ErrNetwork, "request failed").
		WithCause(root).
		WithOperation("imagine")

	if GetErrorCode(err) != ErrNetwork {
		t.Fatalf("expected code %s, got %s", ErrNetwork, GetErrorCode(err))
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is unwrap to root")
	}
	if err.IsAPIError() {
		t.Fatalf("network error must not be an API error")
	}
	assert.Equal(t, "[NETWORK] imagine: request failed: connection refused", err.Error())
}

func TestNewAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorCode
	}{
		{http.StatusBadRequest, ErrInvalidRequest},
		{http.StatusUnprocessableEntity, ErrInvalidRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrUpstreamError},
		{http.StatusBadGateway, ErrUpstreamError},
		{599, ErrUpstreamError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := NewAPIError(tt.status, `{"msg":"nope"}`)
			assert.Equal(t, tt.want, err.Code)
			assert.Equal(t, tt.status, err.HTTPStatus)
			assert.Equal(t, `{"msg":"nope"}`, err.Body)
			assert.True(t, err.IsAPIError())
		})
	}
}

func TestAsError_Wrapped(t *testing.T) {
	inner := NewAPIError(http.StatusUnauthorized, "bad token").WithOperation("info")
	wrapped := fmt.Errorf("cli: %w", inner)

	got, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.True(t, IsErrorCode(wrapped, ErrUnauthorized))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(wrapped))

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, 0, StatusCode(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), GetErrorCode(nil))
}
