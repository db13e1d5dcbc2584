package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"STORAGE_DRIVER", "DB_DSN", "SQLITE_PATH",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
		"LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(noEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 5*time.Second || cfg.Server.WriteTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts %+v", cfg.Server)
	}
	if cfg.Storage.Driver != DriverMemory {
		t.Fatalf("expected memory driver by default, got %q", cfg.Storage.Driver)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.Log.App != "dog-breeds" {
		t.Fatalf("unexpected app name %q", cfg.Log.App)
	}
}

func TestLoad_DSNSelectsPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/dogs")

	cfg, err := Load(noEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Driver != DriverPostgres {
		t.Fatalf("expected postgres, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.MaxOpenConns != 10 || cfg.Storage.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("unexpected pool defaults %+v", cfg.Storage)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "mongo")

	if _, err := Load(noEnvFile(t)); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestLoad_PostgresWithoutDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "postgres")

	if _, err := Load(noEnvFile(t)); err == nil {
		t.Fatalf("expected error when DB_DSN is missing")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nSTORAGE_DRIVER=sqlite\nSQLITE_PATH=/tmp/test.db\nCORS_ALLOWED_ORIGINS=http://a.test,http://b.test\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() {
		for _, k := range []string{"PORT", "STORAGE_DRIVER", "SQLITE_PATH", "CORS_ALLOWED_ORIGINS"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Storage.Driver != DriverSQLite || cfg.Storage.SQLitePath != "/tmp/test.db" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
}
