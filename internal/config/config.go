// SPDX-License-Identifier: MIT

// Package config resolves the tspcompare settings.
//
// Sources are applied in order, later wins: built-in defaults, an optional
// dotenv file, TSPCOMPARE_* environment variables, command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Built-in defaults, overridden by every other source.
const (
	// DefaultVertices is the instance size when nothing else is configured.
	DefaultVertices = 20
	// DefaultBruteForceLimit mirrors tsp.DefaultBruteForceLimit.
	DefaultBruteForceLimit = 11
	// DefaultEnvFile is read from the working directory when present.
	DefaultEnvFile = ".env"

	envPrefix = "TSPCOMPARE_"
)

// Config is the resolved program configuration. Struct tags carry the flag
// name (also used in validation messages) and the validator rules.
type Config struct {
	// Vertices is the size of the generated instance.
	Vertices int `flag:"vertices" validate:"min=1,max=10000"`
	// Seed drives point generation; 0 seeds from the wall clock.
	Seed int64 `flag:"seed"`
	// BruteForceLimit is the largest n brute force runs without confirmation.
	BruteForceLimit int `flag:"bf-limit" validate:"min=1,max=20"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `flag:"log-level" validate:"oneof=debug info warn error"`
	// LogFormat is text or json.
	LogFormat string `flag:"log-format" validate:"oneof=text json"`
	// EnvFile names the dotenv file; empty disables it.
	EnvFile string `flag:"env-file"`
}

// Default returns the built-in configuration before any source is applied.
func Default() Config {
	return Config{
		Vertices:        DefaultVertices,
		BruteForceLimit: DefaultBruteForceLimit,
		LogLevel:        "info",
		LogFormat:       "text",
		EnvFile:         DefaultEnvFile,
	}
}

// Load resolves the configuration from args (without the program name), the
// process environment and the dotenv file. Usage and flag errors go to usage.
//
// A missing dotenv file is ignored unless it was named explicitly.
func Load(args []string, usage io.Writer) (*Config, error) {
	cfg := Default()

	flags := cfg // receives flag values; only the ones set are applied
	fset := newFlagSet(&flags, usage)
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	envFile, explicit := cfg.EnvFile, false
	if v, ok := os.LookupEnv(envPrefix + "ENV_FILE"); ok {
		envFile, explicit = v, true
	}
	if set["env-file"] {
		envFile, explicit = flags.EnvFile, true
	}
	cfg.EnvFile = envFile

	dotenv, err := readDotenv(envFile, explicit)
	if err != nil {
		return nil, err
	}
	if err = cfg.apply(func(key string) (string, bool) {
		v, ok := dotenv[envPrefix+key]
		return v, ok
	}); err != nil {
		return nil, err
	}
	if err = cfg.apply(func(key string) (string, bool) {
		return os.LookupEnv(envPrefix + key)
	}); err != nil {
		return nil, err
	}

	if set["vertices"] {
		cfg.Vertices = flags.Vertices
	}
	if set["seed"] {
		cfg.Seed = flags.Seed
	}
	if set["bf-limit"] {
		cfg.BruteForceLimit = flags.BruteForceLimit
	}
	if set["log-level"] {
		cfg.LogLevel = flags.LogLevel
	}
	if set["log-format"] {
		cfg.LogFormat = flags.LogFormat
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newFlagSet(c *Config, usage io.Writer) *flag.FlagSet {
	fset := flag.NewFlagSet("tspcompare", flag.ContinueOnError)
	if usage == nil {
		usage = io.Discard
	}
	fset.SetOutput(usage)
	fset.IntVar(&c.Vertices, "vertices", c.Vertices, "number of random vertices")
	fset.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = wall clock)")
	fset.IntVar(&c.BruteForceLimit, "bf-limit", c.BruteForceLimit, "largest n brute force runs without confirmation")
	fset.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fset.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
	fset.StringVar(&c.EnvFile, "env-file", c.EnvFile, "dotenv file with TSPCOMPARE_* settings")

	return fset
}

// apply overlays every key lookup finds. Keys are the environment variable
// names without the TSPCOMPARE_ prefix.
func (c *Config) apply(lookup func(key string) (string, bool)) error {
	var err error
	if v, ok := lookup("VERTICES"); ok {
		if c.Vertices, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%w: %sVERTICES: %v", ErrInvalidConfig, envPrefix, err)
		}
	}
	if v, ok := lookup("SEED"); ok {
		if c.Seed, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return fmt.Errorf("%w: %sSEED: %v", ErrInvalidConfig, envPrefix, err)
		}
	}
	if v, ok := lookup("BRUTE_FORCE_LIMIT"); ok {
		if c.BruteForceLimit, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%w: %sBRUTE_FORCE_LIMIT: %v", ErrInvalidConfig, envPrefix, err)
		}
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.LogFormat = v
	}

	return nil
}

// readDotenv parses the dotenv file without exporting it into the process
// environment, so real environment variables keep precedence.
func readDotenv(path string, explicit bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	m, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: env file %s: %v", ErrInvalidConfig, path, err)
	}

	return m, nil
}
