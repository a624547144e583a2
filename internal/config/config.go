package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Skroutz SkroutzConfig `mapstructure:"skroutz"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
}

// SkroutzConfig holds Skroutz API configuration
type SkroutzConfig struct {
	BaseURL              string   `mapstructure:"base_url"`
	Accept               string   `mapstructure:"accept"`
	Timeout              int      `mapstructure:"timeout"`
	MaxRetries           int      `mapstructure:"max_retries"`
	MaxRequestsPerSecond int      `mapstructure:"max_requests_per_second"`
	Proxies              []string `mapstructure:"proxies"`

	// Authentication
	Token string `mapstructure:"token"`
}

// RedisConfig holds the children cache connection details
type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	Database  int    `mapstructure:"database"`
	KeyPrefix string `mapstructure:"key_prefix"`
	TTL       int    `mapstructure:"ttl"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text|json
}

// Load reads configuration from a YAML file with environment variable
// overrides. An empty path looks for config.yaml in the current directory;
// a missing default file leaves defaults and environment in place.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("skroutz.base_url", "http://skroutz.gr/api")
	v.SetDefault("skroutz.accept", "application/vnd.skroutz+json;version=3")
	v.SetDefault("skroutz.timeout", 30)
	v.SetDefault("skroutz.max_retries", 3)
	v.SetDefault("skroutz.max_requests_per_second", 10)
	v.SetDefault("skroutz.proxies", []string{})
	v.SetDefault("skroutz.token", "")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.key_prefix", "skroutz:children:")
	v.SetDefault("redis.ttl", 3600)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
