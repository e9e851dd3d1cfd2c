package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Auth       AuthConfig       `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Cache      CacheConfig
}

type RunMode string

const (
	ModeLocal RunMode = "local"
	ModeProd  RunMode = "prod"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

type DeploymentConfig struct {
	Mode RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxOpen  int
	MaxIdle  int
}

type AuthConfig struct {
	// Secret signs and verifies JWT session tokens
	Secret string `validate:"required"`
	// TokenExpiry is how long an issued token stays valid
	TokenExpiry time.Duration
}

type LoggingConfig struct {
	Level LogLevel `validate:"required"`
}

type CacheConfig struct {
	Enabled bool
	// Backend selects the cache implementation: inmemory or redis
	Backend string
	Redis   RedisConfig
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/bizledger")

	v.SetEnvPrefix("BIZLEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(ModeLocal))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(LogLevelInfo))
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "bizledger")
	v.SetDefault("postgres.dbname", "bizledger")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.maxopen", 10)
	v.SetDefault("postgres.maxidle", 5)
	v.SetDefault("auth.tokenexpiry", "720h")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.backend", "inmemory")
	v.SetDefault("cache.redis.address", "localhost:6379")
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for tests and scripts
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: LogLevelDebug},
		Auth: AuthConfig{
			Secret:      "test-secret-do-not-use-in-prod",
			TokenExpiry: 24 * time.Hour,
		},
		Cache: CacheConfig{Enabled: true, Backend: "inmemory"},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
