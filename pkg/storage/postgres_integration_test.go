//go:build integration

package storage

import (
	"fmt"
	"os"
	"testing"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestPostgresStore(t *testing.T) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "tour_test_db"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	require.NoError(t, err)

	db.Exec("DROP TABLE IF EXISTS storage_entries")
	require.NoError(t, db.AutoMigrate(&models.StorageEntry{}))
	defer db.Exec("DROP TABLE IF EXISTS storage_entries")

	runStoreContract(t, NewPostgresStore(db))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
