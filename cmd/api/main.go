package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dog-breeds/internal/adapters/storage/gormstore"
	pg "dog-breeds/internal/adapters/storage/postgres"
	"dog-breeds/internal/platform/config"
	"dog-breeds/internal/platform/logger"
	"dog-breeds/internal/router"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// @title           Dog Breeds API
// @version         1.0
// @description     Breeds and dogs registry API.
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// el logger todavía no existe
		bootstrap := logger.New(logger.Options{Level: zerolog.InfoLevel})
		bootstrap.Fatal().Err(err).Msg("config")
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	opts := router.Options{
		Logger:         log,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}

	closeStore, err := openStorage(cfg.Storage, cfg.Log.App, log, &opts)
	if err != nil {
		log.Fatal().Err(err).Str("driver", string(cfg.Storage.Driver)).Msg("storage")
	}
	defer closeStore()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("driver", string(cfg.Storage.Driver)).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

// openStorage completa opts con el store elegido y devuelve su cierre.
func openStorage(sc config.StorageConfig, appName string, log zerolog.Logger, opts *router.Options) (func(), error) {
	switch sc.Driver {
	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := pg.Open(ctx, pg.Options{
			DSN:             sc.DSN,
			AppName:         appName,
			MaxOpenConns:    sc.MaxOpenConns,
			MaxIdleConns:    sc.MaxIdleConns,
			ConnMaxLifetime: sc.ConnMaxLifetime,
			ConnMaxIdleTime: sc.ConnMaxIdleTime,
		})
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		opts.DB = db
		return func() { closeSQL(db, log) }, nil

	case config.DriverSQLite:
		gdb, err := gormstore.Open(sc.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		opts.Gorm = gdb
		return func() { closeGorm(gdb, log) }, nil

	default:
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return func() {}, nil
	}
}

func closeSQL(db *sql.DB, log zerolog.Logger) {
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("close db")
	}
}

func closeGorm(gdb *gorm.DB, log zerolog.Logger) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	closeSQL(sqlDB, log)
}
