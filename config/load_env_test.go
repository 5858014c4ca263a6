package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "secret")
	key, err := GetAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "secret", key)
}

func TestGetAPIKeyMissing(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	_, err := GetAPIKey()
	assert.Error(t, err)
}

func TestGetRegion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"unset falls back", "", "CA"},
		{"lowercase uppercased", "us", "US"},
		{"long code truncated", "usa", "US"},
		{"non-letters stripped", "u-s!", "US"},
		{"digits stripped", "u1s2", "US"},
		{"single letter falls back", "u", "CA"},
		{"only punctuation falls back", "!!", "CA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REGION", tt.raw)
			assert.Equal(t, tt.want, GetRegion())
		})
	}
}

func TestGetMaxComments(t *testing.T) {
	t.Setenv("MAX_COMMENTS", "")
	assert.Equal(t, 200, GetMaxComments())

	t.Setenv("MAX_COMMENTS", "50")
	assert.Equal(t, 50, GetMaxComments())

	t.Setenv("MAX_COMMENTS", "plenty")
	assert.Equal(t, 200, GetMaxComments())
}

func TestGetCacheTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "")
	t.Setenv("CACHE_TTL_SECONDS", "")
	assert.Equal(t, 300, GetCacheTTL())

	t.Setenv("CACHE_TTL_SECONDS", "120")
	assert.Equal(t, 120, GetCacheTTL())

	// CACHE_TTL wins over the older name.
	t.Setenv("CACHE_TTL", "60")
	assert.Equal(t, 60, GetCacheTTL())
}
