package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Message(t *testing.T) {
	err := NewNotFoundError("User", "abc")
	assert.Equal(t, "User not found: abc", err.Error())

	cause := errors.New("connection refused")
	upstream := NewUpstreamError("directions request failed", cause)
	assert.Equal(t, "directions request failed: connection refused", upstream.Error())
	assert.ErrorIs(t, upstream, cause)
}

func TestKindOf_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewUnavailableError("record store"))
	assert.Equal(t, KindUnavailable, KindOf(wrapped))
	assert.False(t, IsNotFound(wrapped))

	assert.True(t, IsNotFound(NewNotFoundMessage("No routes found")))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}
