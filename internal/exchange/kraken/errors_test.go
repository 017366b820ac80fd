package kraken

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorKind
	}{
		{"EQuery:Unknown asset pair", ErrKindUnknownPair},
		{"EQuery:Unknown asset", ErrKindUnknownAsset},
		{"EGeneral:Invalid arguments", ErrKindInvalidArguments},
		{"EAPI:Invalid key", ErrKindAuth},
		{"EGeneral:Permission denied", ErrKindAuth},
		{"connection refused", ErrKindRequestFailed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classify(errors.New(tt.msg)), "message %q", tt.msg)
	}
}

func TestWrapErrorFlattensNewlines(t *testing.T) {
	err := wrapError("Ticker", errors.New("line one\nline two"))
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "line one line two", apiErr.Message)
	assert.Equal(t, "Ticker", apiErr.Operation)
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, wrapError("Ticker", nil))
}

func TestIsUnknownPair(t *testing.T) {
	assert.True(t, IsUnknownPair(&APIError{Kind: ErrKindUnknownPair}))
	assert.True(t, IsUnknownPair(&APIError{Kind: ErrKindUnknownAsset}))
	assert.False(t, IsUnknownPair(&APIError{Kind: ErrKindAuth}))
	assert.False(t, IsUnknownPair(errors.New("plain")))

	// classification survives wrapping
	wrapped := fmt.Errorf("lookup: %w", &APIError{Kind: ErrKindUnknownPair})
	assert.True(t, IsUnknownPair(wrapped))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(&APIError{Kind: ErrKindAuth}))
	assert.False(t, IsAuthError(&APIError{Kind: ErrKindRequestFailed}))
	assert.False(t, IsAuthError(errors.New("plain")))
}
