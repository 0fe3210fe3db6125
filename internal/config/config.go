package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация приложения
type Config struct {
	Server    ServerConfig    `toml:"server"`
	API       APIConfig       `toml:"api"`
	Session   SessionConfig   `toml:"session"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// APIConfig настройки клиента backend API салона
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	// Timeout в секундах, 0 - значение по умолчанию
	Timeout int `toml:"timeout"`
}

// SessionConfig настройки браузерных сессий
type SessionConfig struct {
	CookieName   string `toml:"cookie_name"`
	TTLMinutes   int    `toml:"ttl_minutes"`
	Secure       bool   `toml:"secure"`
	SweepSeconds int    `toml:"sweep_seconds"`
}

// RateLimitConfig ограничение запросов с одного IP.
// TrustedProxies - IP или CIDR балансировщиков, которым разрешено передавать X-Forwarded-For.
type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RequestsPerMinute int      `toml:"requests_per_minute"`
	Burst             int      `toml:"burst"`
	TrustedProxies    []string `toml:"trusted_proxies"`
	IdleMinutes       int      `toml:"idle_minutes"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Значения по умолчанию
const (
	DefaultHTTPPort          = 8080
	DefaultReadTimeout       = 15
	DefaultWriteTimeout      = 15
	DefaultIdleTimeout       = 60
	DefaultShutdownTimeout   = 10
	DefaultAPITimeout        = 15
	DefaultCookieName        = "salon_sid"
	DefaultSessionTTLMinutes = 60
	DefaultSweepSeconds      = 60
	DefaultRequestsPerMinute = 200
	DefaultBurst             = 50
	DefaultLimiterIdleMin    = 10
	DefaultLogLevel          = "info"
	DefaultMetricsPath       = "/metrics"
	DefaultServiceName       = "salon-web"
)

var (
	// ErrMissingAPIBaseURL возвращается, если не задан адрес backend API
	ErrMissingAPIBaseURL = errors.New("config: api.base_url is required")
)

// Load загружает конфигурацию из TOML файла.
// Перед чтением подгружает .env (если есть), переменные SALON_* перекрывают значения из файла.
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return ErrMissingAPIBaseURL
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("config: api.timeout must be >= 0, got %d", c.API.Timeout)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: server.http_port out of range: %d", c.Server.HTTPPort)
	}
	return nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, DefaultHTTPPort)
	setDefault(&c.Server.ReadTimeout, DefaultReadTimeout)
	setDefault(&c.Server.WriteTimeout, DefaultWriteTimeout)
	setDefault(&c.Server.IdleTimeout, DefaultIdleTimeout)
	setDefault(&c.Server.ShutdownTimeout, DefaultShutdownTimeout)

	setDefault(&c.API.Timeout, DefaultAPITimeout)

	if c.Session.CookieName == "" {
		c.Session.CookieName = DefaultCookieName
	}
	setDefault(&c.Session.TTLMinutes, DefaultSessionTTLMinutes)
	setDefault(&c.Session.SweepSeconds, DefaultSweepSeconds)

	setDefault(&c.RateLimit.RequestsPerMinute, DefaultRequestsPerMinute)
	setDefault(&c.RateLimit.Burst, DefaultBurst)
	setDefault(&c.RateLimit.IdleMinutes, DefaultLimiterIdleMin)

	if c.Logs.Level == "" {
		c.Logs.Level = DefaultLogLevel
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = DefaultServiceName
	}

	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
}

// applyEnv перекрывает значения из файла переменными окружения
func applyEnv(c *Config) error {
	if v := os.Getenv("SALON_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("SALON_API_TIMEOUT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid SALON_API_TIMEOUT %q: %w", v, err)
		}
		c.API.Timeout = n
	}
	if v := os.Getenv("SALON_HTTP_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid SALON_HTTP_PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = n
	}
	if v := os.Getenv("SALON_LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("SALON_LOG_FILE"); v != "" {
		c.Logs.File = v
	}
	return nil
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
