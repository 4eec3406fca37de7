package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes environment overrides, e.g. SALON_DB_PASSWORD.
const EnvPrefix = "SALON"

const (
	AuthModeLocal  = "local"
	AuthModeRemote = "remote"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Auth            AuthConfig            `toml:"auth"`
	IdentityService IdentityServiceConfig `toml:"identity_service"`
	Redis           RedisConfig           `toml:"redis"`
	RateLimit       RateLimitConfig       `toml:"rate_limit"`
	Scheduling      SchedulingConfig      `toml:"scheduling"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	RunMigrations   bool   `toml:"run_migrations"`
}

// DSN builds a lib/pq connection URL.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	Mode                   string `toml:"mode"`
	JWTSecret              string `toml:"jwt_secret"`
	Issuer                 string `toml:"issuer"`
	TokenTTLMinutes        int    `toml:"token_ttl_minutes"`
	BootstrapOwnerUsername string `toml:"bootstrap_owner_username"`
	BootstrapOwnerPassword string `toml:"bootstrap_owner_password"`
	BootstrapOwnerName     string `toml:"bootstrap_owner_name"`
}

func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

type IdentityServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type RateLimitConfig struct {
	Enabled       bool `toml:"enabled"`
	Requests      int  `toml:"requests"`
	WindowSeconds int  `toml:"window_seconds"`
	FailOpen      bool `toml:"fail_open"`
}

func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

type SchedulingConfig struct {
	MinBookingNoticeMinutes int    `toml:"min_booking_notice_minutes"`
	PublicBookingDays       int    `toml:"public_booking_days"`
	Timezone                string `toml:"timezone"`
}

// Location returns the salon's time zone used to decide "today".
func (c SchedulingConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// envOverrides are read from SALON_* variables and win over the file.
// Unset variables leave the file value untouched.
type envOverrides struct {
	HTTPPort       int    `envconfig:"HTTP_PORT"`
	DBHost         string `envconfig:"DB_HOST"`
	DBPort         int    `envconfig:"DB_PORT"`
	DBUser         string `envconfig:"DB_USER"`
	DBPassword     string `envconfig:"DB_PASSWORD"`
	DBName         string `envconfig:"DB_NAME"`
	DBSSLMode      string `envconfig:"DB_SSLMODE"`
	LogLevel       string `envconfig:"LOG_LEVEL"`
	JWTSecret      string `envconfig:"JWT_SECRET"`
	AuthMode       string `envconfig:"AUTH_MODE"`
	OwnerPassword  string `envconfig:"OWNER_PASSWORD"`
	RedisAddr      string `envconfig:"REDIS_ADDR"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD"`
	IdentityURL    string `envconfig:"IDENTITY_URL"`
	MetricsEnabled *bool  `envconfig:"METRICS_ENABLED"`
}

// Load reads the TOML file, applies defaults and SALON_* environment
// overrides, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used for anything the file omits.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "salon",
			DBName:          "salon",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			RunMigrations:   true,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "salon_pos"},
		Auth: AuthConfig{
			Mode:               AuthModeLocal,
			Issuer:             "salon-pos",
			TokenTTLMinutes:    12 * 60,
			BootstrapOwnerName: "Owner",
		},
		IdentityService: IdentityServiceConfig{Timeout: 5},
		Redis:           RedisConfig{Addr: "localhost:6379"},
		RateLimit:       RateLimitConfig{Requests: 30, WindowSeconds: 60, FailOpen: true},
		Scheduling: SchedulingConfig{
			PublicBookingDays: 30,
		},
	}
}

func applyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("config: process env: %w", err)
	}

	setInt(&cfg.Server.HTTPPort, env.HTTPPort)
	setString(&cfg.Database.Host, env.DBHost)
	setInt(&cfg.Database.Port, env.DBPort)
	setString(&cfg.Database.User, env.DBUser)
	setString(&cfg.Database.Password, env.DBPassword)
	setString(&cfg.Database.DBName, env.DBName)
	setString(&cfg.Database.SSLMode, env.DBSSLMode)
	setString(&cfg.Logs.Level, env.LogLevel)
	setString(&cfg.Auth.JWTSecret, env.JWTSecret)
	setString(&cfg.Auth.Mode, env.AuthMode)
	setString(&cfg.Auth.BootstrapOwnerPassword, env.OwnerPassword)
	setString(&cfg.Redis.Addr, env.RedisAddr)
	setString(&cfg.Redis.Password, env.RedisPassword)
	setString(&cfg.IdentityService.URL, env.IdentityURL)
	if env.MetricsEnabled != nil {
		cfg.Metrics.Enabled = *env.MetricsEnabled
	}
	return nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	case c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "":
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	case c.Auth.Mode != AuthModeLocal && c.Auth.Mode != AuthModeRemote:
		return fmt.Errorf("%w: auth.mode must be %q or %q", ErrInvalidConfig, AuthModeLocal, AuthModeRemote)
	case c.Auth.JWTSecret == "":
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	case c.Auth.TokenTTLMinutes <= 0:
		return fmt.Errorf("%w: auth.token_ttl_minutes must be positive", ErrInvalidConfig)
	case c.Auth.Mode == AuthModeRemote && c.IdentityService.URL == "":
		return fmt.Errorf("%w: identity_service.url is required in remote auth mode", ErrInvalidConfig)
	case c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.WindowSeconds <= 0):
		return fmt.Errorf("%w: rate_limit requests and window_seconds must be positive", ErrInvalidConfig)
	case c.Scheduling.MinBookingNoticeMinutes < 0:
		return fmt.Errorf("%w: scheduling.min_booking_notice_minutes must not be negative", ErrInvalidConfig)
	case c.Scheduling.PublicBookingDays <= 0:
		return fmt.Errorf("%w: scheduling.public_booking_days must be positive", ErrInvalidConfig)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
