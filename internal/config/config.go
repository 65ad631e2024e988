package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Gemini   GeminiConfig   `toml:"gemini"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CatalogConfig настройки каталога квартир
type CatalogConfig struct {
	ApartmentsFile string `toml:"apartments_file"`
}

// GeminiConfig настройки интеграции с Gemini API.
// API-ключ передается через переменную окружения GEMINI_API_KEY,
// в конфиге его не храним.
type GeminiConfig struct {
	URL     string `toml:"url"`
	Model   string `toml:"model"`
	Timeout int    `toml:"timeout"`
}

// CalendarConfig настройки календаря просмотров
type CalendarConfig struct {
	SeedDemoData      bool `toml:"seed_demo_data"`
	DefaultSearchDays int  `toml:"default_search_days"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s not found: %w", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию с дефолтными значениями
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "ret-calendar-service",
		},
		Catalog: CatalogConfig{
			ApartmentsFile: "apartments.json",
		},
		Gemini: GeminiConfig{
			URL:     "https://generativelanguage.googleapis.com",
			Model:   "gemini-2.5-flash-lite",
			Timeout: 30,
		},
		Calendar: CalendarConfig{
			SeedDemoData:      true,
			DefaultSearchDays: 7,
		},
	}
}

// validate проверяет корректность загруженной конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server.http_port: %d", c.Server.HTTPPort)
	}
	if c.Catalog.ApartmentsFile == "" {
		return fmt.Errorf("catalog.apartments_file is required")
	}
	if c.Calendar.DefaultSearchDays <= 0 {
		return fmt.Errorf("invalid calendar.default_search_days: %d", c.Calendar.DefaultSearchDays)
	}
	return nil
}
