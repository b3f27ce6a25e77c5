package config

import (
	"connect4/meta"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Mode       string // "play", "experiment" or "throughput"
	Depth      int
	Goroutines int
	Pruning    bool
	Deadline   time.Duration
	NumGames   int
	OutputDir  string
	LogLevel   zerolog.Level
}

// Load reads the optional .env files then the environment. Unset or invalid
// values fall back to the defaults in meta.
func Load(files ...string) *Config {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Msgf("failed to load %s", file)
		}
	}

	cfg := &Config{
		Mode:       strings.ToLower(GetEnv("CONNECT4_MODE", meta.MODE)),
		Depth:      GetEnvAsInt("CONNECT4_DEPTH", meta.DEPTH),
		Goroutines: GetEnvAsInt("CONNECT4_GOROUTINES", meta.GO_ROUTINES),
		Pruning:    GetEnvAsBool("CONNECT4_PRUNING", false),
		Deadline:   GetEnvAsDuration("CONNECT4_DEADLINE", 0),
		NumGames:   GetEnvAsInt("CONNECT4_GAMES", meta.NUM_GAMES),
		OutputDir:  GetEnv("CONNECT4_OUTPUT_DIR", meta.OUTPUT_DIR),
		LogLevel:   GetEnvAsLevel("LOG_LEVEL", zerolog.InfoLevel),
	}

	if cfg.Depth < 0 {
		log.Warn().Msgf("invalid search depth %d, using default: %d", cfg.Depth, meta.DEPTH)
		cfg.Depth = meta.DEPTH
	}
	if cfg.Goroutines < 1 {
		log.Warn().Msgf("invalid goroutines %d, using default: %d", cfg.Goroutines, meta.GO_ROUTINES)
		cfg.Goroutines = meta.GO_ROUTINES
	}
	if cfg.NumGames < 1 {
		log.Warn().Msgf("invalid number of games %d, using default: %d", cfg.NumGames, meta.NUM_GAMES)
		cfg.NumGames = meta.NUM_GAMES
	}

	return cfg
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid duration value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsLevel(key string, defaultValue zerolog.Level) zerolog.Level {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := zerolog.ParseLevel(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid log level for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
