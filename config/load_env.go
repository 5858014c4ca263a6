package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/subosito/gotenv"
)

const (
	DEFAULT_REGION       = "CA"
	DEFAULT_MAX_COMMENTS = 200
	DEFAULT_CACHE_TTL    = 300
)

func LoadEnv(env string) {
	envFile := ".env"
	if env != "" {
		envFile = ".env." + env
	}
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// GetAPIKey returns the YouTube Data API key. The key is the only credential
// this tool needs and there is no usable fallback, so an unset key is an error.
func GetAPIKey() (string, error) {
	key := os.Getenv("YOUTUBE_API_KEY")
	if key == "" {
		return "", errors.New("YOUTUBE_API_KEY not set. Add it to .env or the environment")
	}
	return key, nil
}

// GetRegion returns the configured ISO-3166-1 alpha-2 region code, sanitized
// to the first two letters uppercased. Anything unusable falls back to CA.
func GetRegion() string {
	raw := os.Getenv("REGION")
	if raw == "" {
		return DEFAULT_REGION
	}

	var letters strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) {
			letters.WriteRune(unicode.ToUpper(r))
		}
	}
	if letters.Len() < 2 {
		return DEFAULT_REGION
	}
	return letters.String()[:2]
}

// GetMaxComments returns the per-video comment ceiling.
func GetMaxComments() int {
	return getInt("MAX_COMMENTS", DEFAULT_MAX_COMMENTS)
}

// GetCacheTTL returns the cache TTL in seconds. CACHE_TTL wins over the
// older CACHE_TTL_SECONDS name.
func GetCacheTTL() int {
	if os.Getenv("CACHE_TTL") != "" {
		return getInt("CACHE_TTL", DEFAULT_CACHE_TTL)
	}
	return getInt("CACHE_TTL_SECONDS", DEFAULT_CACHE_TTL)
}

func getInt(name string, def int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
