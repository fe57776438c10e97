package app

import (
	"fmt"

	"github.com/joefazee/directory/app/database"
	"github.com/joefazee/directory/app/persons"
	"github.com/joefazee/directory/internal/cache"
	"github.com/joefazee/directory/internal/nexus"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// StorageConfig selects the repository implementation.
type StorageConfig struct {
	Driver         string `env:"STORAGE_DRIVER" env-default:"memory" validate:"oneof=memory postgres"`
	Seed           bool   `env:"STORAGE_SEED" env-default:"true"`
	AutoMigrate    bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`
	MigrationsPath string `env:"DB_MIGRATIONS_PATH" env-default:"migrations"`
}

type Config struct {
	DB      database.Config
	Storage StorageConfig
	Cache   cache.Config
	Persons persons.Config

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080"`
	Env      string `env:"APP_ENV" env-default:"development"`
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// UsesDatabase reports whether the postgres driver is selected
func (c *Config) UsesDatabase() bool {
	return c.Storage.Driver == StoragePostgres
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}
