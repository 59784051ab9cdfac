// Package config reads process settings from FARMERBOT_* environment
// variables and decision thresholds from an optional YAML tuning file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"farmerbot/internal/domain/farmer"

	"gopkg.in/yaml.v3"
)

const (
	EnvAddr        = "FARMERBOT_ADDR"
	EnvHostURL     = "FARMERBOT_HOST_URL"
	EnvWSURL       = "FARMERBOT_WS_URL"
	EnvDSN         = "FARMERBOT_DB_DSN"
	EnvTuning      = "FARMERBOT_TUNING"
	EnvSeed        = "FARMERBOT_SEED"
	EnvLogLevel    = "FARMERBOT_LOG_LEVEL"
	EnvHostTimeout = "FARMERBOT_HOST_TIMEOUT_SECONDS"
)

type Config struct {
	Addr        string
	HostURL     string
	WSURL       string
	DSN         string
	TuningPath  string
	Seed        int64
	LogLevel    string
	HostTimeout time.Duration
	Tuning      farmer.Tuning
}

func FromEnv() (Config, error) {
	cfg := Config{
		Addr:        stringEnv(EnvAddr, ":8080"),
		HostURL:     stringEnv(EnvHostURL, ""),
		WSURL:       stringEnv(EnvWSURL, "ws://localhost:8765/bot"),
		DSN:         stringEnv(EnvDSN, ""),
		TuningPath:  stringEnv(EnvTuning, ""),
		Seed:        int64(intEnv(EnvSeed, 0)),
		LogLevel:    stringEnv(EnvLogLevel, "info"),
		HostTimeout: time.Duration(intEnv(EnvHostTimeout, 10)) * time.Second,
		Tuning:      farmer.DefaultTuning(),
	}
	if cfg.TuningPath != "" {
		t, err := LoadTuning(cfg.TuningPath)
		if err != nil {
			return Config{}, err
		}
		cfg.Tuning = t
	}
	return cfg, nil
}

// LoadTuning overlays the YAML file on the default tuning, so a file only
// needs the keys it changes.
func LoadTuning(path string) (farmer.Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return farmer.Tuning{}, fmt.Errorf("read tuning: %w", err)
	}
	return ParseTuning(raw)
}

func ParseTuning(raw []byte) (farmer.Tuning, error) {
	t := farmer.DefaultTuning()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return farmer.Tuning{}, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return farmer.Tuning{}, err
	}
	return t, nil
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
