package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Classifier service
	ClassifierURL  string
	MockClassifier bool // serve canned predictions without a network call
	PredictTimeout time.Duration
	HealthTimeout  time.Duration

	// Ingestion log sink
	SinkQueueSize int
}

// Load reads configuration from the environment, applying defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/ecotrip.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	classifierURL := os.Getenv("CLASSIFIER_URL")
	if classifierURL == "" {
		classifierURL = "http://localhost:8001"
	}

	return &Config{
		Port:           port,
		DBPath:         dbPath,
		JWTSecret:      jwtSecret,
		ClassifierURL:  classifierURL,
		MockClassifier: os.Getenv("MOCK_CLASSIFIER") == "true",
		PredictTimeout: durationEnv("PREDICT_TIMEOUT", 30*time.Second),
		HealthTimeout:  durationEnv("HEALTH_TIMEOUT", 3*time.Second),
		SinkQueueSize:  intEnv("SINK_QUEUE_SIZE", 256),
	}
}

func durationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
