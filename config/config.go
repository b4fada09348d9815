package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// DefaultGenerateTimeout bounds the response generator call when
// GENERATE_TIMEOUT_SECONDS is not set
const DefaultGenerateTimeout = 10 * time.Second

// Config holds the project config values
type Config struct {
	BaseUrl         string
	Port            string
	SeedFile        string
	GenerateTimeout time.Duration
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("APP_ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	timeout := DefaultGenerateTimeout
	if s := os.Getenv("GENERATE_TIMEOUT_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	return &Config{
		BaseUrl:         os.Getenv("BASE_URL"),
		Port:            os.Getenv("PORT"),
		SeedFile:        os.Getenv("SEED_FILE"),
		GenerateTimeout: timeout,
	}
}

func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
