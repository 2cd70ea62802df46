package cache_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewell/labkit/internal/cache"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := cache.At(t.TempDir(), time.Hour)
	require.NoError(t, err)

	_, ok := c.Get("https://pypi.org/pypi/pytest/json")
	assert.False(t, ok, "empty cache must miss")

	payload := []byte(`{"info":{"name":"pytest"}}`)
	require.NoError(t, c.Set("https://pypi.org/pypi/pytest/json", payload))

	got, ok := c.Get("https://pypi.org/pypi/pytest/json")
	require.True(t, ok)
	assert.Equal(t, payload, got)

	_, ok = c.Get("https://pypi.org/pypi/six/json")
	assert.False(t, ok, "different key must miss")
}

func TestCacheExpiry(t *testing.T) {
	c, err := cache.At(t.TempDir(), time.Hour)
	require.NoError(t, err)

	key := "https://pypi.org/pypi/pytest/json"
	require.NoError(t, c.Set(key, []byte("{}")))

	// Age the entry past the TTL by backdating its modtime.
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(c.Path(key), old, old))

	_, ok := c.Get(key)
	assert.False(t, ok, "expired entry must miss")
}

func TestCacheDefaultTTL(t *testing.T) {
	c, err := cache.At(t.TempDir(), 0)
	require.NoError(t, err)
	assert.Equal(t, cache.DefaultTTL, c.TTL)
}

func TestCacheClear(t *testing.T) {
	c, err := cache.At(t.TempDir(), time.Hour)
	require.NoError(t, err)

	require.NoError(t, c.Set("a", []byte("1")))
	require.NoError(t, c.Set("b", []byte("2")))
	require.NoError(t, c.Clear())

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestCachePathIsStable(t *testing.T) {
	c, err := cache.At(t.TempDir(), time.Hour)
	require.NoError(t, err)

	assert.Equal(t, c.Path("key"), c.Path("key"))
	assert.NotEqual(t, c.Path("key"), c.Path("other"))
}
