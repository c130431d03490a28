package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfigNotFound is returned when CONFIG_PATH points to a missing file.
var ErrConfigNotFound = errors.New("config file does not exist")

type Config struct {
	Env        string           `yaml:"env"`        // Env is the current environment: local, development, production.
	HTTP       HTTPConfig       `yaml:"http"`       // HTTP holds the API server configuration.
	Monitoring MonitoringConfig `yaml:"monitoring"` // Monitoring holds the metrics/health server configuration.
	Postgres   PostgresConfig   `yaml:"postgres"`   // Postgres holds the database configuration.
	Migrations string           `yaml:"migrations"`
}

// HTTPConfig struct holds the configuration of the public REST API.
type HTTPConfig struct {
	Address         string        `yaml:"address"`          // Address is the listen address of the API.
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // ShutdownTimeout bounds graceful shutdown.
}

// MonitoringConfig struct holds the configuration of the /metrics and /healthz server.
type MonitoringConfig struct {
	Port int `yaml:"port"`
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Dbname   string `yaml:"db_name"`  // Dbname is the name of the database.
}

var envBindings = map[string]string{
	"env":                   "EMPLOYEES_ENV",
	"http.address":          "HTTP_ADDRESS",
	"http.read_timeout":     "HTTP_READ_TIMEOUT",
	"http.write_timeout":    "HTTP_WRITE_TIMEOUT",
	"http.shutdown_timeout": "HTTP_SHUTDOWN_TIMEOUT",
	"monitoring.port":       "MONITORING_PORT",
	"postgres.host":         "DB_HOST",
	"postgres.port":         "DB_PORT",
	"postgres.user":         "DB_USERNAME",
	"postgres.password":     "DB_PASSWORD",
	"postgres.db_name":      "DB_NAME",
	"migrations":            "MIGRATIONS_DIR",
}

// Load reads the configuration from an optional .env file, an optional YAML file
// at CONFIG_PATH and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	// .env is a convenience for local runs and may be absent.
	_ = godotenv.Load()

	vpr := viper.New()

	// Defaults for every optional key live here.
	vpr.SetDefault("env", "local")
	vpr.SetDefault("http.address", ":8000")
	vpr.SetDefault("http.read_timeout", "10s")
	vpr.SetDefault("http.write_timeout", "10s")
	vpr.SetDefault("http.shutdown_timeout", "10s")
	vpr.SetDefault("monitoring.port", "8080")
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("migrations", "migrations")

	for key, env := range envBindings {
		if err := vpr.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s to %s: %w", key, env, err)
		}
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}

		vpr.SetConfigFile(configPath)
		if filepath.Ext(configPath) == "" {
			vpr.SetConfigType("yaml")
		}
		if err := vpr.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		HTTP: HTTPConfig{
			Address: vpr.GetString("http.address"),
		},
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		Migrations: vpr.GetString("migrations"),
	}

	var err error
	if cfg.HTTP.ReadTimeout, err = durationOf(vpr, "http.read_timeout"); err != nil {
		return nil, err
	}
	if cfg.HTTP.WriteTimeout, err = durationOf(vpr, "http.write_timeout"); err != nil {
		return nil, err
	}
	if cfg.HTTP.ShutdownTimeout, err = durationOf(vpr, "http.shutdown_timeout"); err != nil {
		return nil, err
	}
	if cfg.Monitoring.Port, err = strconv.Atoi(vpr.GetString("monitoring.port")); err != nil {
		return nil, fmt.Errorf("failed to parse monitoring port from configuration: %w", err)
	}

	return cfg, nil
}

// MustLoad loads the configuration and panics on any error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

func durationOf(vpr *viper.Viper, key string) (time.Duration, error) {
	value, err := time.ParseDuration(vpr.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s from configuration: %w", key, err)
	}

	return value, nil
}
