package types

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		ServerURL:      "http://localhost:8080",
		PageSize:       10,
		RequestTimeout: time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty server URL returns ErrServerURLEmpty",
			mutate:  func(c *Config) { c.ServerURL = "" },
			wantErr: ErrServerURLEmpty,
		},
		{
			name:    "relative server URL returns ErrServerURLInvalid",
			mutate:  func(c *Config) { c.ServerURL = "localhost:8080" },
			wantErr: ErrServerURLInvalid,
		},
		{
			name:    "non-http scheme returns ErrServerURLInvalid",
			mutate:  func(c *Config) { c.ServerURL = "ftp://example.com" },
			wantErr: ErrServerURLInvalid,
		},
		{
			name:    "zero page size returns ErrPageSizeInvalid",
			mutate:  func(c *Config) { c.PageSize = 0 },
			wantErr: ErrPageSizeInvalid,
		},
		{
			name:    "negative timeout returns ErrTimeoutInvalid",
			mutate:  func(c *Config) { c.RequestTimeout = -time.Second },
			wantErr: ErrTimeoutInvalid,
		},
		{
			name:   "zero timeout is valid",
			mutate: func(c *Config) { c.RequestTimeout = 0 },
		},
		{
			name:    "unknown log format returns ErrLogFormatUnknown",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: ErrLogFormatUnknown,
		},
		{
			name:    "unknown log level returns ErrLogLevelUnknown",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: ErrLogLevelUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
