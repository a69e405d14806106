// MovieLens API - Read-Only Query Service for the MovieLens Dataset
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-api

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2, highest priority last):
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml)
//  3. Environment variables (MOVIELENS_ prefix, e.g. MOVIELENS_SERVER_PORT)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Dataset  DatasetConfig  `koanf:"dataset"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatasetConfig locates the MovieLens CSV files loaded at startup.
//
// Dir must contain movies.csv, ratings.csv, tags.csv, and links.csv in the
// layout of the published MovieLens archives (ml-latest-small, ml-25m, ...).
type DatasetConfig struct {
	// Dir is the directory holding the four CSV files.
	Dir string `koanf:"dir"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// APIConfig bounds pagination and analytics rankings.
//
// DefaultPageSize is applied when a list request omits the limit parameter;
// MaxPageSize is the hard ceiling (a larger explicit limit is rejected).
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
	TopN            int `koanf:"top_n"`
}

// SecurityConfig holds CORS and rate limiting settings. The API is read-only
// and unauthenticated; rate limiting is the only abuse control.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values outside their valid domain.
func (c *Config) Validate() error {
	if c.Dataset.Dir == "" {
		return fmt.Errorf("dataset.dir is required (set MOVIELENS_DATASET_DIR)")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d outside [1, 65535]", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be at least 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size %d below api.default_page_size %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.API.TopN < 1 {
		return fmt.Errorf("api.top_n must be at least 1, got %d", c.API.TopN)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	return nil
}
