package config

import (
	"errors"
	"fmt"
	"time"
)

// Source kinds the brave book data can be read from.
const (
	SourceYAML     = "yaml"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// EnvConfigPath overrides the -config flag default.
const EnvConfigPath = "BRAVEBOOK_CONFIG"

// Source selects where sheet rows come from.
type Source struct {
	Kind string `yaml:"kind"`
	// Path of the YAML export or the SQLite file. Unused for postgres.
	Path string `yaml:"path"`
	// AutoMigrate applies schema migrations on startup (sqlite, postgres).
	AutoMigrate bool           `yaml:"auto_migrate"`
	Database    DatabaseConfig `yaml:"database"`
}

// HTTP holds the lookup API listener settings.
type HTTP struct {
	BindAddress     string        `yaml:"bind_address"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr returns host:port for net.Listen.
func (h HTTP) Addr() string {
	return fmt.Sprintf("%s:%d", h.BindAddress, h.Port)
}

// Metrics configures the OpenTelemetry meter provider.
type Metrics struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// BraveBook holds all configuration for the brave book service.
type BraveBook struct {
	LogLevel string  `yaml:"log_level"`
	Source   Source  `yaml:"source"`
	HTTP     HTTP    `yaml:"http"`
	Metrics  Metrics `yaml:"metrics"`
}

// DefaultBraveBook returns BraveBook config with sensible defaults.
func DefaultBraveBook() BraveBook {
	return BraveBook{
		LogLevel: "info",
		Source: Source{
			Kind:        SourceYAML,
			Path:        "data/sheets.yaml",
			AutoMigrate: true,
			Database:    DefaultDatabase(),
		},
		HTTP: HTTP{
			BindAddress:     "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Metrics: Metrics{
			Enabled:     true,
			ServiceName: "bravebook",
		},
	}
}

// LoadBraveBook loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBraveBook(path string) (BraveBook, error) {
	cfg := DefaultBraveBook()
	if err := loadYAML(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values the service cannot start with.
func (c BraveBook) Validate() error {
	var errs []error

	switch c.Source.Kind {
	case SourceYAML, SourceSQLite:
		if c.Source.Path == "" {
			errs = append(errs, fmt.Errorf("source.path is required for %s source", c.Source.Kind))
		}
	case SourcePostgres:
		if c.Source.Database.Host == "" || c.Source.Database.DBName == "" {
			errs = append(errs, errors.New("source.database host and dbname are required for postgres source"))
		}
		if !validPort(c.Source.Database.Port) {
			errs = append(errs, fmt.Errorf("source.database.port %d out of range", c.Source.Database.Port))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source.kind %q", c.Source.Kind))
	}

	if !validPort(c.HTTP.Port) {
		errs = append(errs, fmt.Errorf("http.port %d out of range", c.HTTP.Port))
	}
	if c.HTTP.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("http.shutdown_timeout must not be negative"))
	}
	if c.Metrics.Enabled && c.Metrics.ServiceName == "" {
		errs = append(errs, errors.New("metrics.service_name is required when metrics are enabled"))
	}

	return errors.Join(errs...)
}

func validPort(p int) bool {
	return p > 0 && p <= 65535
}
