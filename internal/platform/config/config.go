package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type StorageDriver string

const (
	DriverAuto     StorageDriver = ""
	DriverMemory   StorageDriver = "memory"
	DriverPostgres StorageDriver = "postgres"
	DriverSQLite   StorageDriver = "sqlite"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Log     LogConfig

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

type StorageConfig struct {
	Driver     StorageDriver `env:"STORAGE_DRIVER"`
	DSN        string        `env:"DB_DSN"`
	SQLitePath string        `env:"SQLITE_PATH" envDefault:"dogs.db"`

	// pool de postgres
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	App    string `env:"APP_NAME" envDefault:"dog-breeds"`
}

// Load lee .env (si existe) y luego el entorno. Las variables ya
// definidas en el entorno tienen prioridad sobre el .env.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// un .env faltante no es error (prod usa variables reales)
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	driver, err := resolveDriver(cfg.Storage)
	if err != nil {
		return Config{}, err
	}
	cfg.Storage.Driver = driver

	return cfg, nil
}

// Addr devuelve la dirección de escucha (":8080").
func (c ServerConfig) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// auto: postgres si hay DB_DSN, si no memory.
func resolveDriver(s StorageConfig) (StorageDriver, error) {
	d := StorageDriver(strings.ToLower(strings.TrimSpace(string(s.Driver))))
	switch d {
	case DriverAuto:
		if strings.TrimSpace(s.DSN) != "" {
			return DriverPostgres, nil
		}
		return DriverMemory, nil
	case DriverMemory, DriverSQLite:
		return d, nil
	case DriverPostgres:
		if strings.TrimSpace(s.DSN) == "" {
			return "", fmt.Errorf("STORAGE_DRIVER=postgres requires DB_DSN")
		}
		return d, nil
	default:
		return "", fmt.Errorf("unknown STORAGE_DRIVER %q", s.Driver)
	}
}
