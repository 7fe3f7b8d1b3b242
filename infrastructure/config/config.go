package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultChannelID         = "UCSpFnDQr88xCZ80N-X7t0nQ" // Corridor Crew
	DefaultMinDuration       = 120
	DefaultRequestsPerSecond = 5
	DefaultLogDir            = "logs"
	DefaultLogLevel          = "INFO"
)

var DefaultKeywords = []string{"react", "vfx artists react", "animators react", "stuntmen react"}

type Config struct {
	APIKey             string
	ChannelID          string
	Keywords           []string
	MinDurationSeconds int
	RequestsPerSecond  float64
	LogDir             string
	LogLevel           string
}

// Load lê o .env (se existir) e depois as variáveis de ambiente. Variáveis
// já definidas no ambiente têm prioridade sobre o arquivo.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		APIKey:    strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY")),
		ChannelID: getEnv("YOUTUBE_CHANNEL_ID", DefaultChannelID),
		Keywords:  DefaultKeywords,
		LogDir:    getEnv("LOG_DIR", DefaultLogDir),
		LogLevel:  getEnv("LOG_LEVEL", DefaultLogLevel),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY is required")
	}

	if raw, ok := os.LookupEnv("FILTER_KEYWORDS"); ok {
		cfg.Keywords = splitKeywords(raw)
	}

	var err error
	if cfg.MinDurationSeconds, err = getEnvInt("MIN_DURATION_SECONDS", DefaultMinDuration); err != nil {
		return nil, err
	}
	if cfg.MinDurationSeconds <= 0 {
		return nil, fmt.Errorf("MIN_DURATION_SECONDS must be positive, got %d", cfg.MinDurationSeconds)
	}

	if cfg.RequestsPerSecond, err = getEnvFloat("API_REQUESTS_PER_SECOND", DefaultRequestsPerSecond); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func splitKeywords(raw string) []string {
	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
