package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	inner := errors.New("boom")
	err := &ValidationError{Field: "name", Message: "is required", Err: inner}

	assert.Equal(t, "name: is required", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := &ValidationError{Message: "bad shape"}
	assert.Equal(t, "bad shape", bare.Error())
}

func TestAgentError(t *testing.T) {
	inner := errors.New("model unavailable")
	err := &AgentError{Role: "Product Manager", Op: "gather requirements", Message: "invalid project configuration", Err: inner}

	assert.Contains(t, err.Error(), "Product Manager")
	assert.Contains(t, err.Error(), "gather requirements")
	assert.ErrorIs(t, err, inner)
}

func TestLockError(t *testing.T) {
	err := &LockError{Operation: "acquire", Message: "already held"}
	assert.Equal(t, "lock acquire: already held", err.Error())
}

func TestNetworkError(t *testing.T) {
	err := &NetworkError{Operation: "POST", URL: "https://openrouter.ai/api/v1", Message: "timeout"}
	assert.Contains(t, err.Error(), "https://openrouter.ai/api/v1")

	bare := &NetworkError{Operation: "GET", Message: "refused"}
	assert.Equal(t, "network GET: refused", bare.Error())
}
