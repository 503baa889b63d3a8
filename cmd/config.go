package cmd

import (
	"errors"
	"io/fs"
	"os"

	"menu/internal/adapters/out/postgres"
	"menu/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DigestSchedule string
}

// LoadConfig reads the given env files (".env" when none are named) into the
// process environment and builds a Config from it. Missing env files are
// ignored; variables already set in the environment win over file values.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	return Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envOrDefault("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		DigestSchedule: os.Getenv("DIGEST_SCHEDULE"),
	}, nil
}

// Validate checks the settings the server cannot start without.
func (c Config) Validate() error {
	var err error
	if c.DBHost == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if c.DBUser == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_USER"))
	}
	if c.DBName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_NAME"))
	}
	return err
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
