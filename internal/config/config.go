package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the HTTP server needs beyond the LLM provider
// settings, which are discovered separately from the environment.
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Log      LogConfig
	Speech   SpeechConfig
	ThemeLog ThemeLogConfig `mapstructure:"theme_log"`
	Database DatabaseConfig
	CORS     CORSConfig `mapstructure:"cors"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type AuthConfig struct {
	Password string
}

type LogConfig struct {
	Path       string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAgeDays int `mapstructure:"max_age_days"`
}

type SpeechConfig struct {
	CacheDir string `mapstructure:"cache_dir"`
	Model    string
}

type ThemeLogConfig struct {
	Path string
	Keep int
}

type DatabaseConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads config.yaml from path and overlays environment variables.
// A missing config file is not an error; defaults and env vars apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("QUIZLAB")
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("log.path", "logs/quizlab.log")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("speech.cache_dir", "speech-cache")
	v.SetDefault("theme_log.keep", 5)

	v.BindEnv("server.port", "QUIZLAB_PORT")
	v.BindEnv("server.mode", "QUIZLAB_MODE")
	v.BindEnv("auth.password", "QUIZLAB_PASSWORD")
	v.BindEnv("database.path", "QUIZLAB_DB")
	v.BindEnv("speech.cache_dir", "QUIZLAB_SPEECH_CACHE")
	v.BindEnv("speech.model", "QUIZLAB_SPEECH_MODEL")
	v.BindEnv("theme_log.path", "QUIZLAB_THEME_LOG")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Auth.Password == "" {
		return nil, fmt.Errorf("auth password not set (QUIZLAB_PASSWORD or auth.password in config.yaml)")
	}
	if cfg.Server.Mode == "release" && len(cfg.Auth.Password) < 12 {
		return nil, fmt.Errorf("auth password is too short (%d chars), must be at least 12 characters in release mode", len(cfg.Auth.Password))
	}

	return &cfg, nil
}
