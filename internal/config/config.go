// Package config loads client and server settings from an optional YAML file.
// Command-line flags are applied on top in cmd/*.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Cache backends
const (
	CacheBolt  = "bolt"
	CacheRedis = "redis"
)

// Client holds the settings of a viewer session
type Client struct {
	ServerURL    string        `yaml:"server_url"`
	CSRFToken    string        `yaml:"csrf_token"`
	PDFID        string        `yaml:"pdf_id"`
	PDFPath      string        `yaml:"pdf_path"`
	TabTitle     string        `yaml:"tab_title"`
	SignatureURL string        `yaml:"signature_url"`
	UpdateURL    string        `yaml:"update_url"`
	Cache        CacheConfig   `yaml:"cache"`
	Interval     time.Duration `yaml:"interval"`
	AutoSave     bool          `yaml:"auto_save"`
}

// CacheConfig selects the local signature cache
type CacheConfig struct {
	Backend     string `yaml:"backend"` // bolt | redis
	DBPath      string `yaml:"db_path"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
}

// Server holds the settings of the reference backend
type Server struct {
	Address         string        `yaml:"address"`
	DBPath          string        `yaml:"db_path"`
	CSRFToken       string        `yaml:"csrf_token"`
	LogLevel        string        `yaml:"log_level"`
	MaxUploadMB     int64         `yaml:"max_upload_mb"`
	RateLimit       int           `yaml:"rate_limit"` // запросов в минуту на IP
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultClient returns client defaults
func DefaultClient() *Client {
	return &Client{
		ServerURL:    "http://localhost:8080",
		TabTitle:     "PdfDing",
		SignatureURL: "/api/v1/signatures",
		UpdateURL:    "/api/v1/pdf/update",
		Interval:     time.Second,
		Cache: CacheConfig{
			Backend:     CacheBolt,
			DBPath:      "pdfsync-client.db",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "pdfsync:",
		},
	}
}

// DefaultServer returns server defaults
func DefaultServer() *Server {
	return &Server{
		Address:         ":8080",
		DBPath:          "pdfsync.db",
		LogLevel:        "info",
		MaxUploadMB:     100,
		RateLimit:       600,
		ShutdownTimeout: 10 * time.Second,
	}
}

// LoadClient reads path over the defaults. An empty path yields the defaults.
func LoadClient(path string) (*Client, error) {
	cfg := DefaultClient()
	if err := load(path, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadServer reads path over the defaults. An empty path yields the defaults.
func LoadServer(path string) (*Server, error) {
	cfg := DefaultServer()
	if err := load(path, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func load(path string, out any) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks the client settings
func (c *Client) Validate() error {
	if c.ServerURL == "" {
		return errors.New("server_url is required")
	}
	if c.Interval <= 0 {
		return errors.New("interval must be > 0")
	}
	switch c.Cache.Backend {
	case CacheBolt:
		if c.Cache.DBPath == "" {
			return errors.New("cache.db_path is required for bolt backend")
		}
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New("cache.redis_addr is required for redis backend")
		}
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

// Validate checks the server settings
func (s *Server) Validate() error {
	if s.Address == "" {
		return errors.New("address is required")
	}
	if s.DBPath == "" {
		return errors.New("db_path is required")
	}
	if s.MaxUploadMB <= 0 {
		return errors.New("max_upload_mb must be > 0")
	}
	if s.RateLimit <= 0 {
		return errors.New("rate_limit must be > 0")
	}
	if s.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be > 0")
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// Level returns the slog level named by LogLevel, Info when it is invalid
func (s *Server) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// MaxUploadBytes returns the upload limit in bytes
func (s *Server) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}
