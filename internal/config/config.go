package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Telegram TelegramConfig
	JWT      JWTConfig
	Log      LogConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// TelegramConfig holds the bot credentials used to verify login widget payloads.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	BotName  string `mapstructure:"bot_name"`
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings. An empty File logs to stdout.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the TGLOGIN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TGLOGIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// Telegram defaults
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.bot_name", "")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.issuer", "tglogin")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 7)
	v.SetDefault("log.compress", false)

	v.SetDefault("cors.allowed_origins", "*")

	envBindings := map[string][]string{
		"server.port":             {"TGLOGIN_SERVER_PORT"},
		"server.read_timeout":     {"TGLOGIN_SERVER_READ_TIMEOUT"},
		"server.write_timeout":    {"TGLOGIN_SERVER_WRITE_TIMEOUT"},
		"server.shutdown_timeout": {"TGLOGIN_SERVER_SHUTDOWN_TIMEOUT"},
		"server.environment":      {"TGLOGIN_SERVER_ENVIRONMENT"},
		// TELEGRAM_BOT_TOKEN is what existing deployments already export.
		"telegram.bot_token":   {"TGLOGIN_TELEGRAM_BOT_TOKEN", "TELEGRAM_BOT_TOKEN"},
		"telegram.bot_name":    {"TGLOGIN_TELEGRAM_BOT_NAME"},
		"jwt.secret":           {"TGLOGIN_JWT_SECRET"},
		"jwt.access_expiry":    {"TGLOGIN_JWT_ACCESS_EXPIRY"},
		"jwt.issuer":           {"TGLOGIN_JWT_ISSUER"},
		"log.level":            {"TGLOGIN_LOG_LEVEL"},
		"log.format":           {"TGLOGIN_LOG_FORMAT"},
		"log.file":             {"TGLOGIN_LOG_FILE"},
		"log.max_size_mb":      {"TGLOGIN_LOG_MAX_SIZE_MB"},
		"log.max_backups":      {"TGLOGIN_LOG_MAX_BACKUPS"},
		"log.max_age_days":     {"TGLOGIN_LOG_MAX_AGE_DAYS"},
		"log.compress":         {"TGLOGIN_LOG_COMPRESS"},
		"cors.allowed_origins": {"TGLOGIN_CORS_ALLOWED_ORIGINS"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TGLOGIN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TGLOGIN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.Telegram = TelegramConfig{
		BotToken: v.GetString("telegram.bot_token"),
		BotName:  v.GetString("telegram.bot_name"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:      v.GetString("log.level"),
		Format:     v.GetString("log.format"),
		File:       v.GetString("log.file"),
		MaxSizeMB:  v.GetInt("log.max_size_mb"),
		MaxBackups: v.GetInt("log.max_backups"),
		MaxAgeDays: v.GetInt("log.max_age_days"),
		Compress:   v.GetBool("log.compress"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	return cfg, nil
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
