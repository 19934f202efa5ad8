package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"
)

const DefaultMealDBBaseURL = "https://www.themealdb.com/api/json/v1/1"

type Config struct {
	MealDB  MealDBConfig  `json:"mealdb"`
	Search  SearchConfig  `json:"search"`
	Storage StorageConfig `json:"storage"`
	Log     LogConfig     `json:"log"`
}

type MealDBConfig struct {
	BaseURL  string        `json:"base_url"`
	Timeout  time.Duration `json:"timeout"`
	RetryMax int           `json:"retry_max"` // 0 keeps a failed fetch as a permanent empty result
	// HTTPClient overrides the underlying transport, mostly for tests.
	HTTPClient *http.Client `json:"-"`
}

type SearchConfig struct {
	TopN int `json:"top_n"`
}

type StorageConfig struct {
	Backend    string `json:"backend"` // file, memory, sqlite, redis or azblob
	Dir        string `json:"dir"`
	SQLitePath string `json:"sqlite_path"`
	RedisURL   string `json:"redis_url"`
	Azure      AzureConfig
}

type AzureConfig struct {
	AccountName string `json:"account_name"`
	AccountKey  string `json:"-"`
	Container   string `json:"container"`
}

type LogConfig struct {
	Level        string `json:"level"`
	OTLPEndpoint string `json:"otlp_endpoint"`
}

func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnvOrDefault("MEALDB_TIMEOUT", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MEALDB_TIMEOUT: %w", err)
	}
	retryMax, err := strconv.Atoi(getEnvOrDefault("MEALDB_RETRY_MAX", "0"))
	if err != nil || retryMax < 0 {
		return nil, fmt.Errorf("invalid MEALDB_RETRY_MAX %q", os.Getenv("MEALDB_RETRY_MAX"))
	}
	topN, err := strconv.Atoi(getEnvOrDefault("MEALPLANNER_TOP_N", "20"))
	if err != nil || topN <= 0 {
		return nil, fmt.Errorf("invalid MEALPLANNER_TOP_N %q", os.Getenv("MEALPLANNER_TOP_N"))
	}

	dataDir := getEnvOrDefault("MEALPLANNER_DATA_DIR", "./data")
	config := &Config{
		MealDB: MealDBConfig{
			BaseURL:  getEnvOrDefault("MEALDB_BASE_URL", DefaultMealDBBaseURL),
			Timeout:  timeout,
			RetryMax: retryMax,
		},
		Search: SearchConfig{
			TopN: topN,
		},
		Storage: StorageConfig{
			Backend:    getEnvOrDefault("MEALPLANNER_STORE", "file"),
			Dir:        dataDir,
			SQLitePath: getEnvOrDefault("MEALPLANNER_SQLITE_PATH", dataDir+"/mealplanner.db"),
			RedisURL:   getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
			Azure: AzureConfig{
				AccountName: os.Getenv("AZURE_STORAGE_ACCOUNT_NAME"),
				AccountKey:  os.Getenv("AZURE_STORAGE_PRIMARY_ACCOUNT_KEY"),
				Container:   getEnvOrDefault("AZURE_STORAGE_CONTAINER", "mealplanner"),
			},
		},
		Log: LogConfig{
			Level:        getEnvOrDefault("LOG_LEVEL", "info"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
