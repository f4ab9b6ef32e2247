package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSet(t *testing.T) {
	var s Memory

	_, ok, err := s.Get("library")
	require.NoError(t, err)
	assert.False(t, ok, "zero value should report missing keys")

	require.NoError(t, s.Set("library", "[]"))
	require.NoError(t, s.Set("library", `[{"title":"x"}]`))

	v, ok, err := s.Get("library")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"title":"x"}]`, v)
}

func TestMemory_EmptyValueIsPresent(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Set("k", ""))
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, v)
}
