// Package config loads pathgrid settings from an optional YAML file and
// PATHGRID_* environment variables.
//
// Priority, lowest first: Default(), the YAML file, environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/heuristic"
	"github.com/katalvlaran/pathgrid/search"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PATHGRID_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = newValidator()

// newValidator reports fields by their yaml keys.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Config holds all settings for the CLI and the daemon.
type Config struct {
	Environment string       `yaml:"environment" validate:"oneof=development production test"`
	Grid        GridConfig   `yaml:"grid"`
	Search      SearchConfig `yaml:"search"`
	Server      ServerConfig `yaml:"server"`
	Log         LogConfig    `yaml:"log"`
}

// GridConfig describes the painting surface.
type GridConfig struct {
	Width    int `yaml:"width" validate:"min=1,max=1000"`
	Height   int `yaml:"height" validate:"min=1,max=1000"`
	CellSize int `yaml:"cell_size" validate:"min=1,max=64"`
}

// SearchConfig selects the default algorithm and heuristic.
type SearchConfig struct {
	Algorithm search.Algorithm `yaml:"algorithm"`
	Heuristic heuristic.Kind   `yaml:"heuristic"`
}

// ServerConfig configures the HTTP daemon.
type ServerConfig struct {
	Address         string        `yaml:"address" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	MaxGridCells    int           `yaml:"max_grid_cells" validate:"min=1"`
}

// LogConfig configures zap.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the reference deployment: a 75×75 grid with 7-pixel cells,
// Dijkstra, and a daemon on :8080.
func Default() *Config {
	return &Config{
		Environment: "development",
		Grid: GridConfig{
			Width:    gridgraph.DefaultWidth,
			Height:   gridgraph.DefaultHeight,
			CellSize: gridgraph.DefaultCellSize,
		},
		Search: SearchConfig{
			Algorithm: search.AlgorithmDijkstra,
			Heuristic: heuristic.None,
		},
		Server: ServerConfig{
			Address:         ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			MaxGridCells:    200 * 200,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty or the file does not exist) and the environment, then
// validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field ranges and that the heuristic fits the algorithm.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if !c.Search.Algorithm.Valid() {
		return fmt.Errorf("%w: search.algorithm %s", ErrInvalid, c.Search.Algorithm)
	}
	informed := c.Search.Algorithm.Informed()
	if informed && c.Search.Heuristic == heuristic.None {
		return fmt.Errorf("%w: search.heuristic is required for %s", ErrInvalid, c.Search.Algorithm)
	}
	if !informed && c.Search.Heuristic != heuristic.None {
		return fmt.Errorf("%w: search.heuristic must be none for %s", ErrInvalid, c.Search.Algorithm)
	}

	return nil
}

// Resolve picks the algorithm and heuristic for a request. Empty names fall
// back to the configured defaults: an empty heuristic takes the configured
// heuristic when the algorithm matches the configured one, otherwise the
// first choice offered for the algorithm.
func (s SearchConfig) Resolve(algName, kindName string) (search.Algorithm, heuristic.Kind, error) {
	alg := s.Algorithm
	if algName != "" {
		parsed, err := search.ParseAlgorithm(algName)
		if err != nil {
			return alg, heuristic.None, err
		}
		alg = parsed
	}

	if kindName == "" {
		if alg == s.Algorithm {
			return alg, s.Heuristic, nil
		}
		return alg, alg.Heuristics()[0], nil
	}
	kind, err := heuristic.ParseKind(kindName)
	if err != nil {
		return alg, heuristic.None, err
	}

	return alg, kind, nil
}

// IsDevelopment reports whether the environment is development.
func (c *Config) IsDevelopment() bool { return c.Environment == "development" }

// applyEnv overlays PATHGRID_* variables.
func (c *Config) applyEnv() error {
	c.Environment = getEnv("ENVIRONMENT", c.Environment)

	c.Grid.Width = getEnvInt("GRID_WIDTH", c.Grid.Width)
	c.Grid.Height = getEnvInt("GRID_HEIGHT", c.Grid.Height)
	c.Grid.CellSize = getEnvInt("CELL_SIZE", c.Grid.CellSize)

	if v := getEnv("ALGORITHM", ""); v != "" {
		alg, err := search.ParseAlgorithm(v)
		if err != nil {
			return fmt.Errorf("config: %sALGORITHM: %w", EnvPrefix, err)
		}
		c.Search.Algorithm = alg
	}
	if v, ok := os.LookupEnv(EnvPrefix + "HEURISTIC"); ok {
		kind, err := heuristic.ParseKind(v)
		if err != nil {
			return fmt.Errorf("config: %sHEURISTIC: %w", EnvPrefix, err)
		}
		c.Search.Heuristic = kind
	}

	c.Server.Address = getEnv("SERVER_ADDRESS", c.Server.Address)
	c.Server.ReadTimeout = getEnvDuration("READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvDuration("WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.MaxGridCells = getEnvInt("MAX_GRID_CELLS", c.Server.MaxGridCells)

	c.Log.Level = strings.ToLower(getEnv("LOG_LEVEL", c.Log.Level))
	c.Log.Development = getEnvBool("LOG_DEVELOPMENT", c.Log.Development)

	return nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable such as "5s"
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// formatValidationError turns validator errors into one readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := e.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
