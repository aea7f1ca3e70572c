package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultURL points at a local mongo instance
	DefaultURL = "mongodb://127.0.0.1:27017"
	// DefaultDatabaseName is used when DB_NAME is unset
	DefaultDatabaseName = "campus-rides"
	// FallbackSecret is the development placeholder assigned by the password backfill
	// when DEFAULT_PASSWORD is unset
	FallbackSecret = "ChangeMe123!"
	// DefaultSecretEnv names the variable operators set to override FallbackSecret
	DefaultSecretEnv = "DEFAULT_PASSWORD"
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	Env          string

	// DefaultSecret is the plaintext password handed to every backfilled user
	DefaultSecret string
	// DefaultSecretSet is false when DefaultSecret came from FallbackSecret
	DefaultSecretSet bool
	HashCost         int
}

// New sets up all config related services. An unparsable BCRYPT_COST is an error.
func New() (*Config, error) {
	env := getEnv("APP_ENV", "local")

	//setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	secret, secretSet := os.LookupEnv(DefaultSecretEnv)
	if secret == "" {
		secret, secretSet = FallbackSecret, false
	}

	cost, err := hashCost()
	if err != nil {
		return nil, err
	}

	return &Config{
		URL:              getEnv("DB_URI", DefaultURL),
		DatabaseName:     getEnv("DB_NAME", DefaultDatabaseName),
		BaseURL:          os.Getenv("BASE_URL"),
		Port:             os.Getenv("PORT"),
		Env:              env,
		DefaultSecret:    secret,
		DefaultSecretSet: secretSet,
		HashCost:         cost,
	}, nil
}

func hashCost() (int, error) {
	raw := os.Getenv("BCRYPT_COST")
	if raw == "" {
		return bcrypt.DefaultCost, nil
	}
	cost, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid BCRYPT_COST %q: %w", raw, err)
	}
	return cost, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().Errorw(message, "error", err)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
