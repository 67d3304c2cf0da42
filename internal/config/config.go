// Package config arma la configuración del servicio: defaults, archivo YAML opcional,
// variables de entorno y por último flags (eso lo resuelve cmd/api).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sigs.k8s.io/yaml"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App   string      `json:"app"`
	HTTP  HTTPConfig  `json:"http"`
	Store StoreConfig `json:"store"`
	Log   LogConfig   `json:"log"`
}

type HTTPConfig struct {
	Port          string   `json:"port"`
	ReadTimeout   Duration `json:"read_timeout"`
	WriteTimeout  Duration `json:"write_timeout"`
	ShutdownGrace Duration `json:"shutdown_grace"`
}

type StoreConfig struct {
	Driver     string `json:"driver"`
	DSN        string `json:"dsn"`
	SQLitePath string `json:"sqlite_path"`
	// AutoMigrate aplica el schema al arrancar con un driver SQL.
	AutoMigrate bool `json:"auto_migrate"`
}

type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Duration acepta "5s", "1m30s" o un número de segundos en YAML/JSON.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		d.Duration = time.Duration(secs * float64(time.Second))
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func Default() Config {
	return Config{
		App: "livestock-records",
		HTTP: HTTPConfig{
			Port:          "8080",
			ReadTimeout:   Duration{5 * time.Second},
			WriteTimeout:  Duration{10 * time.Second},
			ShutdownGrace: Duration{10 * time.Second},
		},
		Store: StoreConfig{
			Driver:      DriverMemory,
			SQLitePath:  "livestock.db",
			AutoMigrate: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load parte de los defaults, aplica el archivo (si path no es vacío) y después el entorno.
func Load(path string) (Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg, getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&cfg.App, "APP_NAME")
	set(&cfg.HTTP.Port, "PORT")
	set(&cfg.Store.Driver, "STORE_DRIVER")
	set(&cfg.Store.DSN, "DB_DSN")
	set(&cfg.Store.SQLitePath, "SQLITE_PATH")
	set(&cfg.Log.Level, "LOG_LEVEL")
	set(&cfg.Log.Format, "LOG_FORMAT")

	// con solo DB_DSN se asume Postgres
	if getenv("STORE_DRIVER") == "" && cfg.Store.Driver == DriverMemory && cfg.Store.DSN != "" {
		cfg.Store.Driver = DriverPostgres
	}
}

func (c Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.Store.DSN) == "" {
			return fmt.Errorf("store.dsn is required for driver %s", DriverPostgres)
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Store.SQLitePath) == "" {
			return fmt.Errorf("store.sqlite_path is required for driver %s", DriverSQLite)
		}
	default:
		return fmt.Errorf("invalid store driver: %q (memory | postgres | sqlite)", c.Store.Driver)
	}

	if _, err := strconv.Atoi(strings.TrimPrefix(c.HTTP.Port, ":")); err != nil {
		return fmt.Errorf("invalid http port: %q", c.HTTP.Port)
	}
	return nil
}

// Addr devuelve la dirección de escucha (":8080").
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.HTTP.Port, ":")
}

// Driver devuelve el driver normalizado.
func (c Config) Driver() string {
	return strings.ToLower(strings.TrimSpace(c.Store.Driver))
}
