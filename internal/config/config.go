package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	GinMode       string
	OpenAIAPIKey  string
	HTTPAddr      string
	LogLevel      string
	LogFormat     string
	Upload        UploadConfig
}

// UploadConfig holds the physical directories uploaded files are written to.
type UploadConfig struct {
	Root      string
	AvatarDir string
	CVDir     string
}

// Load reads configuration from the environment and an optional config file.
// Environment variables take precedence over the file, which takes precedence over defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "internuser")
	v.SetDefault("DB_PASSWORD", "internpassword")
	v.SetDefault("DB_NAME", "internship_management")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("SESSION_SECRET", "default-secret-key-change-me")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("UPLOAD_ROOT", "uploads")
	v.SetDefault("AVATAR_DIR", "")
	v.SetDefault("CV_DIR", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		DBDriver:      v.GetString("DB_DRIVER"),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		RedisHost:     v.GetString("REDIS_HOST"),
		RedisPort:     v.GetString("REDIS_PORT"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		GinMode:       v.GetString("GIN_MODE"),
		OpenAIAPIKey:  v.GetString("OPENAI_API_KEY"),
		HTTPAddr:      v.GetString("HTTP_ADDR"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		Upload:        newUploadConfig(v.GetString("UPLOAD_ROOT"), v.GetString("AVATAR_DIR"), v.GetString("CV_DIR")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newUploadConfig derives the avatar and CV directories from the upload root unless set explicitly.
func newUploadConfig(root, avatarDir, cvDir string) UploadConfig {
	if avatarDir == "" {
		avatarDir = filepath.Join(root, "profile-images")
	}
	if cvDir == "" {
		cvDir = filepath.Join(root, "cv-files")
	}
	return UploadConfig{
		Root:      root,
		AvatarDir: avatarDir,
		CVDir:     cvDir,
	}
}

// Validate checks values the server cannot start without.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	return nil
}
