// internal/config/config.go
//
// Environment-driven configuration for the Word Scramble server.
// A `.env` file in the working directory is loaded first (if present);
// real environment variables always win over it.
//
// Every setting has a development default so the server boots with no
// configuration at all: embedded word lists, in-memory dictionary,
// normalized scoring, port 5175.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the typed server settings.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string // "json" | "console"

	// Word source
	RootWordsFile string // empty → embedded start.txt
	DailySalt     string

	// Dictionary
	DictionaryBackend  string // "memory" | "sqlite" | "redis"
	DictionaryFile     string // empty → embedded dictionary.txt
	DictionaryLocale   string
	DictionaryDSN      string
	DictionarySeed     bool
	DictionaryFallback bool // back sqlite/redis with the word list
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisPrefix        string

	// Game
	ScoreMode string // "normalized" | "raw"

	// HTTP
	ClientOrigin      string
	CookieSecure      bool
	JWTSecret         string
	GameTokenTTL      time.Duration
	SweepInterval     time.Duration // how often expired games are dropped
	DebugPasswordHash string
	SubmitRate        float64 // submissions per second per game
	SubmitBurst       int
}

// Load reads `.env` (ignored if missing) and returns the resolved Config.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv resolves Config from the current process environment only.
func FromEnv() Config {
	return Config{
		Port:      getEnv("PORT", "5175"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),

		RootWordsFile: os.Getenv("WORDS_ROOT_FILE"),
		DailySalt:     getEnv("DAILY_SALT", "local_dev_salt"),

		DictionaryBackend:  strings.ToLower(getEnv("DICTIONARY_BACKEND", "memory")),
		DictionaryFile:     os.Getenv("DICTIONARY_FILE"),
		DictionaryLocale:   strings.ToLower(getEnv("DICTIONARY_LOCALE", "en")),
		DictionaryDSN:      getEnv("DICTIONARY_DSN", "./data/dictionary.db"),
		DictionarySeed:     getBool("DICTIONARY_SEED", true),
		DictionaryFallback: getBool("DICTIONARY_FALLBACK", true),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getInt("REDIS_DB", 0),
		RedisPrefix:        getEnv("REDIS_PREFIX", "scramble:"),

		ScoreMode: strings.ToLower(getEnv("SCORE_MODE", "normalized")),

		ClientOrigin:      getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		CookieSecure:      os.Getenv("NODE_ENV") == "production",
		JWTSecret:         getEnv("JWT_SECRET", "dev_secret_change_me"),
		GameTokenTTL:      time.Duration(getInt("GAME_TOKEN_TTL_HOURS", 24)) * time.Hour,
		SweepInterval:     time.Duration(getInt("GAME_SWEEP_SECONDS", 60)) * time.Second,
		DebugPasswordHash: os.Getenv("DEBUG_PASSWORD_HASH"),
		SubmitRate:        getFloat("SUBMIT_RATE", 5),
		SubmitBurst:       getInt("SUBMIT_BURST", 10),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
