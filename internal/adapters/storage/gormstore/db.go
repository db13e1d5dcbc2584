package gormstore

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// breedRow / dogRow son los modelos de tabla; el dominio no conoce gorm.
type breedRow struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(127);not null"`
	Size           string `gorm:"type:char(1);not null;default:m;check:size IN ('t','s','m','l')"`
	Friendliness   int    `gorm:"not null;check:friendliness BETWEEN 1 AND 5"`
	Trainability   int    `gorm:"not null;check:trainability BETWEEN 1 AND 5"`
	SheddingAmount int    `gorm:"not null;check:shedding_amount BETWEEN 1 AND 5"`
	ExerciseNeeds  int    `gorm:"not null;check:exercise_needs BETWEEN 1 AND 5"`
}

func (breedRow) TableName() string { return "breeds" }

type dogRow struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(127);not null"`
	Age          int    `gorm:"not null;check:age >= 0"`
	BreedID      int64  `gorm:"not null;index"`
	Gender       string `gorm:"type:char(1);not null;check:gender IN ('m','f')"`
	Color        string `gorm:"type:varchar(127);not null"`
	FavoriteFood string `gorm:"type:varchar(127);not null"`
	FavoriteToy  string `gorm:"type:varchar(127);not null"`

	// Belongs to Breed (FK con cascade)
	Breed *breedRow `gorm:"foreignKey:BreedID;references:ID;constraint:OnDelete:CASCADE"`
}

func (dogRow) TableName() string { return "dogs" }

// Open abre (o crea) la base SQLite en path con foreign keys activas
// y corre AutoMigrate.
func Open(path string, log zerolog.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", path)

	gormLogger := logger.New(
		&log,
		logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite: un solo writer a la vez
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&breedRow{}, &dogRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return db, nil
}
