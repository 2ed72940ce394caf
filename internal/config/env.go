package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the CLI and the HTTP server.
const (
	EnvParams        = "LABORCALC_PARAMS"
	EnvReferenceYear = "LABORCALC_REFERENCE_YEAR"
	EnvAddr          = "LABORCALC_ADDR"
)

// DefaultEnvFile is loaded when present; a missing default file is not an error.
const DefaultEnvFile = ".env"

// Environment holds settings taken from the process environment.
type Environment struct {
	ParamsFile    string
	ReferenceYear int
	Addr          string
}

// LoadEnvironment loads envFile into the process environment without
// overriding variables that are already set, then reads the LABORCALC_*
// variables. An explicitly named file must exist.
func LoadEnvironment(envFile string) (Environment, error) {
	file := envFile
	if file == "" {
		file = DefaultEnvFile
	}
	if err := godotenv.Load(file); err != nil {
		if envFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return Environment{}, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	env := Environment{
		ParamsFile: strings.TrimSpace(os.Getenv(EnvParams)),
		Addr:       strings.TrimSpace(os.Getenv(EnvAddr)),
	}
	if raw := strings.TrimSpace(os.Getenv(EnvReferenceYear)); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year <= 0 {
			return Environment{}, fmt.Errorf("%s must be a positive year, got %q", EnvReferenceYear, raw)
		}
		env.ReferenceYear = year
	}
	return env, nil
}
