package router

import (
	"database/sql"
	"net/http"

	_ "dog-breeds/docs"
	"dog-breeds/internal/adapters/storage/gormstore"
	mem "dog-breeds/internal/adapters/storage/memory"
	pg "dog-breeds/internal/adapters/storage/postgres"
	"dog-breeds/internal/domain/breeds"
	"dog-breeds/internal/domain/dogs"
	"dog-breeds/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"
)

type Options struct {
	Logger zerolog.Logger

	// Storage: DB (Postgres) > Gorm (SQLite) > in-memory.
	DB   *sql.DB
	Gorm *gorm.DB

	// vacío = "*"
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recover)
	r.Use(cors.Handler(corsOptions(opts.AllowedOrigins)))
	r.Use(chimw.StripSlashes)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		breedRepo breeds.Repository
		dogRepo   dogs.Repository
	)

	switch {
	case opts.DB != nil:
		breedRepo = pg.NewBreedsRepo(opts.DB)
		dogRepo = pg.NewDogsRepo(opts.DB)
	case opts.Gorm != nil:
		breedRepo = gormstore.NewBreedsRepo(opts.Gorm)
		dogRepo = gormstore.NewDogsRepo(opts.Gorm)
	default:
		store := mem.NewStore()
		breedRepo = mem.NewBreedRepo(store)
		dogRepo = mem.NewDogRepo(store)
	}

	// Services por módulo
	breedsSvc := breeds.NewService(breedRepo)
	dogsSvc := dogs.NewService(dogRepo, breedsSvc)

	// Rutas por módulo
	breeds.RegisterRoutes(r, breedsSvc)
	dogs.RegisterRoutes(r, dogsSvc)

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}
}
