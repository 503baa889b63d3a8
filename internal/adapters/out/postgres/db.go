package postgres

import (
	"fmt"

	"menu/internal/adapters/out/postgres/nutritionrepo"
	"menu/internal/adapters/out/postgres/orderrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN assembles a PostgreSQL connection string from its parts.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}

// Open connects to PostgreSQL through GORM. Driver errors are translated into
// GORM sentinels so repositories can detect duplicates with gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates the tables backing the repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &nutritionrepo.NutritionFactsDTO{})
}
