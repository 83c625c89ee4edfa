package runtimeconfig

import (
	"errors"
	"strings"
)

var ErrStorageDriverUnknown = errors.New("footnotes config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("footnotes config: storage dsn is required when persistence is enabled")
var ErrLoggingProviderUnknown = errors.New("footnotes config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("footnotes config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("footnotes config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the footnotes
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Storage  StorageConfig
	Logging  LoggingConfig
	Features Features
}

// StorageConfig selects the database the bun repository runs against. The
// driver decides the bun dialect; the host can instead hand over an already
// open *sql.DB through module options.
type StorageConfig struct {
	Driver string
	DSN    string
}

// LoggingConfig wires the go-logger provider.
type LoggingConfig struct {
	Enabled   bool
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// Features toggles optional subsystems.
type Features struct {
	// Persistence selects the bun repository over the in-memory store.
	Persistence bool
	// Markdown renders stored values as markdown instead of passthrough HTML.
	Markdown bool
}

// DefaultConfig returns the baseline configuration: in-memory storage,
// logging disabled, passthrough HTML rendering.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Driver: "sqlite3",
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate checks cross-field consistency before the module boots.
func (c Config) Validate() error {
	if c.Features.Persistence {
		switch normalize(c.Storage.Driver) {
		case "sqlite3", "sqlite", "postgres", "pg", "pgx":
		default:
			return ErrStorageDriverUnknown
		}
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	}

	if c.Logging.Enabled {
		switch normalize(c.Logging.Provider) {
		case "", "gologger":
		default:
			return ErrLoggingProviderUnknown
		}
		switch normalize(c.Logging.Level) {
		case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return ErrLoggingLevelInvalid
		}
		switch normalize(c.Logging.Format) {
		case "", "json", "console", "pretty":
		default:
			return ErrLoggingFormatInvalid
		}
	}

	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
