package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// envFileVar names an alternative dotenv file; .env is used otherwise.
const envFileVar = "CALC_ENV_FILE"

// loadDotEnv loads environment variables from the dotenv file when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load %s: %w", path, err)
}
