package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	dErrors "emissions/pkg/domain-errors"
)

const (
	defaultAddr           = ":8080"
	defaultMaxTopN        = 50
	defaultRequestTimeout = 30 * time.Second
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	MaxTopN        int
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	Data           Data
}

// Data locates the input files loaded at startup.
type Data struct {
	File           string
	ContinentsFile string
	// RawInput runs delimiter and encoding normalization before parsing.
	RawInput bool
	// StrictIngest aborts the load on the first invalid row.
	StrictIngest bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:           os.Getenv("EMISSIONS_ADDR"),
		MaxTopN:        defaultMaxTopN,
		RequestTimeout: defaultRequestTimeout,
		LogLevel:       strings.ToLower(os.Getenv("LOG_LEVEL")),
		LogFormat:      strings.ToLower(os.Getenv("LOG_FORMAT")),
		Data: Data{
			File:           os.Getenv("EMISSIONS_DATA_FILE"),
			ContinentsFile: os.Getenv("EMISSIONS_CONTINENTS_FILE"),
			RawInput:       os.Getenv("EMISSIONS_RAW_INPUT") == "true",
			StrictIngest:   os.Getenv("EMISSIONS_STRICT_INGEST") == "true",
		},
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}

	if raw := os.Getenv("EMISSIONS_MAX_TOP_N"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Server{}, dErrors.New(dErrors.CodeValidation, "EMISSIONS_MAX_TOP_N must be an integer")
		}
		cfg.MaxTopN = n
	}
	if raw := os.Getenv("EMISSIONS_REQUEST_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Server{}, dErrors.New(dErrors.CodeValidation, "EMISSIONS_REQUEST_TIMEOUT must be a duration")
		}
		cfg.RequestTimeout = d
	}
	return cfg, nil
}

// Validate checks that the configuration can start a server.
func (c Server) Validate() error {
	if c.Data.File == "" {
		return dErrors.New(dErrors.CodeValidation, "EMISSIONS_DATA_FILE is required")
	}
	if c.MaxTopN < 1 {
		return dErrors.New(dErrors.CodeValidation, "EMISSIONS_MAX_TOP_N must be positive")
	}
	if c.RequestTimeout <= 0 {
		return dErrors.New(dErrors.CodeValidation, "EMISSIONS_REQUEST_TIMEOUT must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return dErrors.New(dErrors.CodeValidation, "LOG_LEVEL must be one of debug, info, warn, error")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return dErrors.New(dErrors.CodeValidation, "LOG_FORMAT must be json or text")
	}
	return nil
}
