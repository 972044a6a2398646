package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Backend API
	APIBaseURL     string `yaml:"api_base_url"`
	APITokenEnv    string `yaml:"api_token_env"`
	RequestTimeout int    `yaml:"request_timeout_seconds"`

	// IPFS pinning
	PinataBaseURL string `yaml:"pinata_base_url"`
	PinataJWTEnv  string `yaml:"pinata_jwt_env"`
	PinVisibility string `yaml:"pin_visibility"`

	// UI Settings
	Editor             string `yaml:"editor"`
	ColorTheme         string `yaml:"color_theme"`
	TableWidth         int    `yaml:"table_width"`
	CopyCIDToClipboard bool   `yaml:"copy_cid_to_clipboard"`

	// Drafts
	DefaultSort string `yaml:"default_sort"`
	ReverseSort bool   `yaml:"reverse_sort"`

	// Performance
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:         "http://localhost:5000/api",
		APITokenEnv:        "IPV_API_TOKEN",
		RequestTimeout:     30,
		PinataBaseURL:      "https://api.pinata.cloud",
		PinataJWTEnv:       "PINATA_JWT",
		PinVisibility:      "public",
		Editor:             "",
		ColorTheme:         "auto",
		TableWidth:         0,
		CopyCIDToClipboard: true,
		DefaultSort:        "title",
		ReverseSort:        false,
		WatchDebounceMS:    500,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:5000/api"
	}
	if cfg.APITokenEnv == "" {
		cfg.APITokenEnv = "IPV_API_TOKEN"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30
	}
	if cfg.PinataBaseURL == "" {
		cfg.PinataBaseURL = "https://api.pinata.cloud"
	}
	if cfg.PinataJWTEnv == "" {
		cfg.PinataJWTEnv = "PINATA_JWT"
	}
	if !isValidVisibility(cfg.PinVisibility) {
		cfg.PinVisibility = "public"
	}
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "title"
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// APIToken resolves the backend API token from the configured environment variable
func (c *Config) APIToken() string {
	return os.Getenv(c.APITokenEnv)
}

// PinataJWT resolves the Pinata JWT from the configured environment variable
func (c *Config) PinataJWT() string {
	return os.Getenv(c.PinataJWTEnv)
}

// isValidVisibility checks if the pin visibility is valid
func isValidVisibility(v string) bool {
	return v == "public" || v == "private"
}
