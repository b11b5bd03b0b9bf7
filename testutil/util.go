package testutil

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
)

// EnvFile is the .env file at the module root
var EnvFile = moduleFile(".env")

// LoadEnv loads EnvFile when present.
// Variables already set in the environment win.
func LoadEnv() error {
	if _, err := os.Stat(EnvFile); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(EnvFile)
}

// PostgresConfigured reports whether a test database has been configured
func PostgresConfigured() bool {
	return os.Getenv("POSTGRES_DB_NAME") != ""
}

func moduleFile(filename string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", filename)
}
