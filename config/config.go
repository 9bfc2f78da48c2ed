package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres   PostgresConfig
	Migrations MigrationsConfig

	// Deadline Sync specifics
	Google       GoogleConfig
	Telegram     TelegramConfig
	Notification NotificationConfig
	Internal     InternalConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
}

// DSN returns URL when set, otherwise builds one from the individual fields.
func (c PostgresConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

type MigrationsConfig struct {
	Enabled bool
	Path    string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	CalendarID   string
	Timezone     string
}

type TelegramConfig struct {
	BotToken string
}

type NotificationConfig struct {
	Channel         string // "email" or "telegram"
	RateLimitPerMin int
}

type InternalConfig struct {
	APIKey string
}

const (
	ChannelEmail    = "email"
	ChannelTelegram = "telegram"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = viper.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = viper.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.URL = viper.GetString("postgres.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.URL = dbURL
	}
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.MaxConns = viper.GetInt("postgres.max_conns")
	cfg.Postgres.MinConns = viper.GetInt("postgres.min_conns")
	cfg.Postgres.MaxConnLifetime = viper.GetDuration("postgres.max_conn_lifetime")

	cfg.Migrations.Enabled = viper.GetBool("migrations.enabled")
	cfg.Migrations.Path = viper.GetString("migrations.path")

	// Google
	cfg.Google.ClientID = expandEnvVar(viper.GetString("google.client_id"))
	cfg.Google.ClientSecret = expandEnvVar(viper.GetString("google.client_secret"))
	if id := viper.GetString("google_client_id"); id != "" {
		cfg.Google.ClientID = id
	}
	if secret := viper.GetString("google_client_secret"); secret != "" {
		cfg.Google.ClientSecret = secret
	}
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.Timezone = viper.GetString("google.timezone")

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Notification
	cfg.Notification.Channel = strings.ToLower(viper.GetString("notification.channel"))
	cfg.Notification.RateLimitPerMin = viper.GetInt("notification.rate_limit_per_min")

	cfg.Internal.APIKey = viper.GetString("internal.api_key")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 {
		return errors.New("http_server.port must be positive")
	}
	if c.Postgres.URL == "" && (c.Postgres.Host == "" || c.Postgres.DBName == "") {
		return errors.New("postgres: url or host/dbname is required")
	}
	switch c.Notification.Channel {
	case ChannelEmail:
	case ChannelTelegram:
		if c.Telegram.BotToken == "" {
			return errors.New("notification.channel is telegram but telegram.bot_token is empty")
		}
	default:
		return fmt.Errorf("unsupported notification.channel %q", c.Notification.Channel)
	}
	if c.Notification.RateLimitPerMin <= 0 {
		return errors.New("notification.rate_limit_per_min must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.read_timeout", "15s")
	viper.SetDefault("http_server.write_timeout", "15s")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.min_conns", 1)
	viper.SetDefault("postgres.max_conn_lifetime", "30m")
	viper.SetDefault("migrations.enabled", true)
	viper.SetDefault("migrations.path", "./migrations")

	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("google.timezone", "UTC")
	viper.SetDefault("notification.channel", ChannelEmail)
	viper.SetDefault("notification.rate_limit_per_min", 10)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
