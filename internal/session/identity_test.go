package session

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityStableWithinSession(t *testing.T) {
	kv := MemKV{}
	id := NewIdentity(kv)

	first := id.GetOrCreateID()
	second := id.GetOrCreateID()

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	_, err := uuid.Parse(first)
	assert.NoError(t, err, "identity must be a UUID")
}

func TestIdentitySurvivesRestart(t *testing.T) {
	kv := MemKV{}

	first := NewIdentity(kv).GetOrCreateID()
	// A new Identity over the same storage models a page reload.
	second := NewIdentity(kv).GetOrCreateID()

	assert.Equal(t, first, second)
}

type brokenKV struct{}

func (brokenKV) Get(string) (string, bool) { return "", false }
func (brokenKV) Set(string, string) error  { return errors.New("storage blocked") }

func TestIdentityDegradesWithoutPersistence(t *testing.T) {
	id := NewIdentity(brokenKV{})

	first := id.GetOrCreateID()
	second := id.GetOrCreateID()

	require.NotEmpty(t, first, "a usable id must still come back")
	assert.Equal(t, first, second, "same session keeps the same id")

	// Only the restart loses the seat.
	other := NewIdentity(brokenKV{}).GetOrCreateID()
	assert.NotEqual(t, first, other)
}
