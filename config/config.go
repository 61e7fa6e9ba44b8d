package config

import (
	"fmt"
	"os"
	"time"

	structValidator "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH     = "./res/config.yaml"
	CONFIG_PATH_ENV = "SIGNUP_CONFIG_PATH"

	DatabaseTypeMemory   = "memory"
	DatabaseTypeMongo    = "mongo"
	DatabaseTypePostgres = "postgres"
)

var (
	// MongoRequiredCollections must be listed in valid_collections.
	MongoRequiredCollections = []string{"accounts"}
	// MongoRequiredFields must be listed in valid_fields; the account
	// repository writes and filters on each of them.
	MongoRequiredFields = []string{"_id", "name", "email", "password"}
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName    string          `yaml:"service_name" validate:"required"`
	LogLevel       string          `yaml:"loglevel" validate:"required"`
	Host           string          `yaml:"host" validate:"required"`
	Port           string          `yaml:"port" validate:"required"`
	PrivateKeyPath string          `yaml:"private_key_path"`
	Hasher         HasherConfig    `yaml:"hasher"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
	Database       Database        `yaml:"database" validate:"required"`
}

// HasherConfig controls password hashing. A zero cost selects the hasher default.
type HasherConfig struct {
	Cost int `yaml:"cost" validate:"omitempty,min=4,max=31"`
}

// RateLimitConfig configures the token bucket in front of the signup route.
// A zero RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" validate:"gte=0"`
	Burst             int     `yaml:"burst" validate:"gte=0"`
}

type Database struct {
	Type string `yaml:"type" validate:"required,oneof=memory mongo postgres"`
	// For MongoDB
	MongoDB *MongoDBConfig `yaml:"mongodb_config" validate:"required_if=Type mongo"`
	// For PostgreSQL
	Postgres *PostgresConfig `yaml:"postgres_config" validate:"required_if=Type postgres"`
}

// MongoDBConfig holds the MongoDB connection settings.
type MongoDBConfig struct {
	DSN              string             `yaml:"dsn" validate:"required"`
	Timeout          time.Duration      `yaml:"timeout"`
	Options          MongoServerOptions `yaml:"mongo_server_options"`
	ValidCollections []string           `yaml:"valid_collections" validate:"required"`
	ValidFields      []string           `yaml:"valid_fields" validate:"required"`
}

// PostgresConfig holds the PostgreSQL connection settings.
type PostgresConfig struct {
	DSN     string                `yaml:"dsn" validate:"required"`
	Options PostgresServerOptions `yaml:"postgres_server_options"`
}

type MongoServerOptions struct {
	APIVersion           string `yaml:"api_version"`
	SetStrict            bool   `yaml:"set_strict"`
	SetDeprecationErrors bool   `yaml:"set_deprecation_errors"`
}

type PostgresServerOptions struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// ConfigPath returns the configuration path from the environment, or the
// default path when the variable is unset.
func ConfigPath() string {
	if path := os.Getenv(CONFIG_PATH_ENV); path != "" {
		return path
	}
	return CONFIG_PATH
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// It unmarshals the YAML content into a ServiceConfig struct and returns it.
// If there is an error reading the file or unmarshaling the content, it returns an error.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the struct tags of the configuration.
func (c *ServiceConfig) Validate(validator *structValidator.Validate) error {
	if err := validator.Struct(c); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.Database.Type == DatabaseTypeMongo {
		if err := requireAll("valid_collections", c.Database.MongoDB.ValidCollections, MongoRequiredCollections); err != nil {
			return err
		}
		if err := requireAll("valid_fields", c.Database.MongoDB.ValidFields, MongoRequiredFields); err != nil {
			return err
		}
	}
	return nil
}

// requireAll returns an error naming the first entry of required missing from list.
func requireAll(name string, list, required []string) error {
	present := ListToMap(list)
	for _, item := range required {
		if !present[item] {
			return fmt.Errorf("validation error: %s must include %q", name, item)
		}
	}
	return nil
}

func BuildServerAPIOptions(cfg MongoServerOptions) *options.ServerAPIOptions {
	opts := options.ServerAPI(options.ServerAPIVersion(cfg.APIVersion))
	opts.SetStrict(cfg.SetStrict)
	opts.SetDeprecationErrors(cfg.SetDeprecationErrors)

	return opts
}

func ListToMap(list []string) map[string]bool {
	result := make(map[string]bool)
	for _, item := range list {
		result[item] = true
	}
	return result
}
