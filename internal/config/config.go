package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL.
// Два набора учетных данных: public-роль ограничена row-level политиками
// (публичные чтения доступности и создание бронирований), admin-роль
// обходит их (административные операции).
type DatabaseConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	DBName  string `toml:"dbname"`
	SSLMode string `toml:"sslmode"`

	PublicUser     string `toml:"public_user"`
	PublicPassword string `toml:"public_password"`
	AdminUser      string `toml:"admin_user"`
	AdminPassword  string `toml:"admin_password"`

	MaxOpenConns    int `toml:"max_open_conns"`
	MaxIdleConns    int `toml:"max_idle_conns"`
	ConnMaxLifetime int `toml:"conn_max_lifetime"` // секунды
}

// AuthConfig настройки админских сессий
type AuthConfig struct {
	SessionSecret   string `toml:"session_secret"`
	SessionTTLHours int    `toml:"session_ttl_hours"`
	CookieName      string `toml:"cookie_name"`
	CookieSecure    bool   `toml:"cookie_secure"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "admin_session"
	}
	if cfg.Auth.SessionTTLHours == 0 {
		cfg.Auth.SessionTTLHours = 24
	}
	if cfg.Auth.SessionSecret == "" {
		return nil, fmt.Errorf("config: auth.session_secret is required")
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	return &cfg, nil
}

// PublicDSN возвращает строку подключения для публичной роли
func (c *DatabaseConfig) PublicDSN() string {
	return c.dsn(c.PublicUser, c.PublicPassword)
}

// AdminDSN возвращает строку подключения для админской роли
func (c *DatabaseConfig) AdminDSN() string {
	return c.dsn(c.AdminUser, c.AdminPassword)
}

func (c *DatabaseConfig) dsn(user, password string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, user, password, c.DBName, c.SSLMode)
}
