package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server             ServerConfig      `toml:"server"`
	Logs               LogsConfig        `toml:"logs"`
	Metrics            MetricsConfig     `toml:"metrics"`
	SalonService       IntegrationConfig `toml:"salon_service"`
	AppointmentService IntegrationConfig `toml:"appointment_service"`
	Redis              RedisConfig       `toml:"redis"`
	Drafts             DraftsConfig      `toml:"drafts"`
	RateLimit          RateLimitConfig   `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пустое значение - stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// IntegrationConfig настройки клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// RedisConfig настройки Redis для хранилища черновиков
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

// DraftsConfig настройки сессий черновиков
type DraftsConfig struct {
	TTLMinutes              int `toml:"ttl_minutes"`
	ScheduleCacheTTLMinutes int `toml:"schedule_cache_ttl_minutes"`
}

// RateLimitConfig настройки ограничения частоты запросов
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Load загружает конфигурацию из TOML файла.
// Перед чтением подхватывает .env (если есть) - секреты берутся из окружения.
func Load(path string) (*Config, error) {
	// .env опционален, его отсутствие не ошибка
	_ = godotenv.Load(".env")

	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// Секреты из окружения имеют приоритет над файлом
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Redis.Password = pass
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "salon-booking",
			Path:        "/metrics",
		},
		SalonService:       IntegrationConfig{Timeout: 5},
		AppointmentService: IntegrationConfig{Timeout: 10},
		Redis:              RedisConfig{PoolSize: 10},
		Drafts: DraftsConfig{
			TTLMinutes:              60,
			ScheduleCacheTTLMinutes: 15,
		},
		RateLimit: RateLimitConfig{RPS: 10, Burst: 20},
	}
}

func (c *Config) validate() error {
	if c.SalonService.URL == "" {
		return fmt.Errorf("config: salon_service.url is required")
	}
	if c.AppointmentService.URL == "" {
		return fmt.Errorf("config: appointment_service.url is required")
	}
	if c.Redis.Enabled && c.Redis.Address == "" {
		return fmt.Errorf("config: redis.address is required when redis.enabled")
	}
	if c.Drafts.TTLMinutes <= 0 {
		return fmt.Errorf("config: drafts.ttl_minutes must be positive")
	}
	return nil
}
