package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Provider is the read-only view of the configuration that the rest of the
// application depends on.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	GetFilesBaseURL() string
	GetSessionSecret() string
	GetSessionStore() string
	GetRedisAddr() string
	GetRedisPassword() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string        `yaml:"appAddr"`
	AppBaseURL    string        `yaml:"appBaseUrl"`
	APIBaseURL    string        `yaml:"apiBaseUrl"`
	APITimeout    time.Duration `yaml:"apiTimeout"`
	FilesBaseURL  string        `yaml:"filesBaseUrl"`
	SessionSecret string        `yaml:"sessionSecret"`
	SessionStore  string        `yaml:"sessionStore"`
	RedisAddr     string        `yaml:"redisAddr"`
	RedisPassword string        `yaml:"redisPassword"`
}

const configFileEnv = "CONFIG_FILE"

// New loads configuration from an optional YAML file named by CONFIG_FILE
// and then from environment variables, which win. A .env file is read first
// when present.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Load is New without the .env lookup and without exiting on error.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv(configFileEnv); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode yaml: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		AppAddr:      ":8080",
		AppBaseURL:   "http://localhost:8080",
		APITimeout:   10 * time.Second,
		SessionStore: "cookie",
	}
}

func (c *Config) applyEnv() error {
	setString(&c.AppAddr, "APP_ADDR")
	setString(&c.AppBaseURL, "APP_BASE_URL")
	setString(&c.APIBaseURL, "API_BASE_URL")
	setString(&c.FilesBaseURL, "FILES_BASE_URL")
	setString(&c.SessionSecret, "SESSION_SECRET")
	setString(&c.SessionStore, "SESSION_STORE")
	setString(&c.RedisAddr, "REDIS_ADDR")
	setString(&c.RedisPassword, "REDIS_PASSWORD")

	if raw, ok := os.LookupEnv("API_TIMEOUT"); ok && raw != "" {
		d, err := parseDuration(raw)
		if err != nil {
			return fmt.Errorf("config: parse API_TIMEOUT: %w", err)
		}
		c.APITimeout = d
	}
	return nil
}

// parseDuration accepts Go durations ("5s") and bare seconds ("5").
func parseDuration(raw string) (time.Duration, error) {
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(raw)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = strings.TrimSpace(v)
	}
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return errors.New("config: API_BASE_URL is required")
	}
	if len(c.SessionSecret) < 16 {
		return errors.New("config: SESSION_SECRET must be at least 16 characters")
	}
	switch c.SessionStore {
	case "cookie":
	case "redis":
		if c.RedisAddr == "" {
			return errors.New("config: REDIS_ADDR is required when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("config: unknown SESSION_STORE %q", c.SessionStore)
	}
	if c.APITimeout <= 0 {
		c.APITimeout = 10 * time.Second
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	if c.FilesBaseURL == "" {
		c.FilesBaseURL = c.APIBaseURL + "/files/images"
	}
	return nil
}

func (c *Config) GetAppAddr() string           { return c.AppAddr }
func (c *Config) GetAppBaseURL() string        { return c.AppBaseURL }
func (c *Config) GetAPIBaseURL() string        { return c.APIBaseURL }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetFilesBaseURL() string      { return c.FilesBaseURL }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetSessionStore() string      { return c.SessionStore }
func (c *Config) GetRedisAddr() string         { return c.RedisAddr }
func (c *Config) GetRedisPassword() string     { return c.RedisPassword }
