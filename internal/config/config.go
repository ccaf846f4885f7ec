package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

type Config struct {
	Server struct {
		Host          string `json:"host"`
		Port          int    `json:"port"`
		JWTSecret     string `json:"jwtSecret"`
		TokenTTLHours int    `json:"tokenTtlHours"`
	} `json:"server"`
	Database struct {
		Driver string `json:"driver"` // "sqlite" or "postgres"
		DSN    string `json:"dsn"`
	} `json:"database"`
	Redis struct {
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis"`
	Uploads struct {
		Dir     string `json:"dir"`
		BaseURL string `json:"baseUrl"`
	} `json:"uploads"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton)
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		// Minimal validation, then defaults
		if c.Server.JWTSecret == "" {
			cfgErr = errors.New("jwtSecret must be set in config")
			return
		}
		if c.Database.Driver == "" {
			c.Database.Driver = "sqlite"
		}
		if c.Database.Driver == "sqlite" && c.Database.DSN == "" {
			c.Database.DSN = "lapor.db"
		}
		if c.Server.TokenTTLHours <= 0 {
			c.Server.TokenTTLHours = 7 * 24
		}
		if c.Uploads.Dir == "" {
			c.Uploads.Dir = "./uploads"
		}
		if c.Uploads.BaseURL == "" {
			c.Uploads.BaseURL = "/uploads"
		}
		cfg = &c
	})
	return cfg, cfgErr
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
