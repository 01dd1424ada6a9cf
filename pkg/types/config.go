package types

import (
	"errors"
	"net/url"
	"time"
)

// Config holds the client settings loaded from config.yaml and the
// environment.
type Config struct {
	ServerURL      string        `json:"server_url" yaml:"server_url"`
	PageSize       int           `json:"page_size" yaml:"page_size"`
	DataDir        string        `json:"data_dir" yaml:"data_dir"`
	LogLevel       string        `json:"log_level" yaml:"log_level"`
	LogFormat      string        `json:"log_format" yaml:"log_format"`
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// Defaults applied when a key is absent from config.yaml.
const (
	DefaultServerURL      = "http://localhost:8080"
	DefaultPageSize       = 10
	DefaultLogLevel       = "warn"
	DefaultRequestTimeout = 30 * time.Second
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config validation errors.
var (
	ErrServerURLEmpty   = errors.New("server URL must not be empty")
	ErrServerURLInvalid = errors.New("server URL must be an absolute http(s) URL")
	ErrPageSizeInvalid  = errors.New("page size must be positive")
	ErrTimeoutInvalid   = errors.New("request timeout must not be negative")
	ErrLogFormatUnknown = errors.New("unknown log format")
	ErrLogLevelUnknown  = errors.New("unknown log level")
)

var knownLogFormats = map[string]bool{
	"":            true,
	LogFormatText: true,
	LogFormatJSON: true,
}

var knownLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.ServerURL == "" {
		return ErrServerURLEmpty
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrServerURLInvalid
	}
	if c.PageSize <= 0 {
		return ErrPageSizeInvalid
	}
	if c.RequestTimeout < 0 {
		return ErrTimeoutInvalid
	}
	if !knownLogFormats[c.LogFormat] {
		return ErrLogFormatUnknown
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
