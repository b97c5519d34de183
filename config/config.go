package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/askmilo/askmilo-cli/subject"
	"github.com/joho/godotenv"
)

const DefaultConfigFileName = "config.json"

var (
	DefaultConfigDir      = os.ExpandEnv("$HOME/.config/askmilo")
	DefaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
)

const (
	DefaultBackendURL = "http://localhost:8000"
	DefaultTimeout    = 60 * time.Second
)

// Environment variables that override the config file.
const (
	EnvBackendURL       = "ASKMILO_BACKEND_URL"
	EnvLegacyBackendURL = "NEXT_PUBLIC_BACKEND_URL"
	EnvUploadURL        = "ASKMILO_UPLOAD_URL"
	EnvSubject          = "ASKMILO_SUBJECT"
	EnvTimeout          = "ASKMILO_TIMEOUT"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// BackendURL is the base url of the gateway, e.g. https://askmilo.example.com
	BackendURL string `json:"backend_url,omitempty"`
	// UploadURL overrides the full upload endpoint. Defaults to BackendURL + /upload.
	UploadURL string `json:"upload_url,omitempty"`
	Subject   string `json:"subject,omitempty"`
	// Timeout is a time.ParseDuration string applied to every gateway request.
	Timeout string `json:"timeout,omitempty"`
}

func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigFilePath)
}

func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

func LoadFromFile() (*Config, error) {
	return LoadFromPath(DefaultConfigFilePath)
}

// LoadFromPath reads the config at path. A missing file yields an empty config.
func LoadFromPath(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return &c, nil
}

// Load reads the config file, applies .env and environment overrides and validates the result.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg, err := LoadFromFile()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overwrites fields with any non-empty environment override.
func (c *Config) ApplyEnv() {
	if v := firstNonEmpty(os.Getenv(EnvBackendURL), os.Getenv(EnvLegacyBackendURL)); v != "" {
		c.BackendURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvUploadURL)); v != "" {
		c.UploadURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSubject)); v != "" {
		c.Subject = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		c.Timeout = v
	}
}

func (c *Config) Validate() error {
	if c.BackendURL != "" {
		if err := validateURL(c.BackendURL); err != nil {
			return fmt.Errorf("%w: backend_url: %v", ErrInvalidConfig, err)
		}
	}
	if c.UploadURL != "" {
		if err := validateURL(c.UploadURL); err != nil {
			return fmt.Errorf("%w: upload_url: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := c.DefaultSubject(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.RequestTimeout(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

// APIHost returns the backend base url without a trailing slash.
func (c *Config) APIHost() string {
	host := firstNonEmpty(c.BackendURL, DefaultBackendURL)
	return strings.TrimRight(host, "/")
}

func (c *Config) UploadEndpoint() string {
	if u := strings.TrimSpace(c.UploadURL); u != "" {
		return u
	}
	return c.APIHost() + "/upload"
}

func (c *Config) DefaultSubject() (subject.Subject, error) {
	if strings.TrimSpace(c.Subject) == "" {
		return subject.Default, nil
	}
	return subject.Parse(c.Subject)
}

func (c *Config) RequestTimeout() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(c.Timeout))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", d)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
