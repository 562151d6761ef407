// Package config loads runtime settings from defaults, an optional
// syllabus.yaml, an optional .env file and SYLLABUS_* environment variables,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/syllabus/internal/db"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Feed source names.
const (
	FeedSourceStore = "store"
	FeedSourceHTTP  = "http"
)

// Config holds all resolved settings.
type Config struct {
	DB       db.Config
	Feed     FeedConfig
	Location *time.Location
	Teacher  string
	Debug    bool
	LogDir   string
	HTTPAddr string
	// ConfigFile is the config file that was read, if any.
	ConfigFile string
}

// FeedConfig selects where calendar feeds come from.
type FeedConfig struct {
	Source     string
	URL        string
	Timeout    time.Duration
	MaxRetries int
}

// Options locate the optional files. Empty fields use the defaults.
type Options struct {
	// Dir is the configuration directory (default ~/.syllabus).
	Dir string
	// ConfigFile overrides the syllabus.yaml lookup.
	ConfigFile string
	// DotEnv is the .env file to load (default ./.env). Missing is not an error.
	DotEnv string
}

// DefaultDir returns ~/.syllabus, or SYLLABUS_HOME when set.
func DefaultDir() (string, error) {
	if dir := os.Getenv("SYLLABUS_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".syllabus"), nil
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	dotEnv := opts.DotEnv
	if dotEnv == "" {
		dotEnv = ".env"
	}
	// godotenv never overrides variables that are already set.
	if _, err := os.Stat(dotEnv); err == nil {
		if err := godotenv.Load(dotEnv); err != nil {
			return nil, fmt.Errorf("loading %s: %w", dotEnv, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", dotEnv, err)
	}

	dir := opts.Dir
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}

	v := newViper(dir)
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("syllabus")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("db.driver", string(db.DialectSQLite))
	v.SetDefault("db.dsn", filepath.Join(dir, "syllabus.db"))
	v.SetDefault("feed.source", FeedSourceStore)
	v.SetDefault("feed.url", "")
	v.SetDefault("feed.timeout", 10*time.Second)
	v.SetDefault("feed.retries", 0)
	v.SetDefault("timezone", "")
	v.SetDefault("teacher", "")
	v.SetDefault("debug", false)
	v.SetDefault("log.dir", filepath.Join(dir, "logs"))
	v.SetDefault("http.addr", ":8080")

	v.SetEnvPrefix("SYLLABUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	driver, err := db.ParseDialect(v.GetString("db.driver"))
	if err != nil {
		return nil, err
	}

	loc, err := LoadLocation(v.GetString("timezone"))
	if err != nil {
		return nil, err
	}

	source := strings.ToLower(strings.TrimSpace(v.GetString("feed.source")))
	switch source {
	case FeedSourceStore, FeedSourceHTTP:
	default:
		return nil, fmt.Errorf("feed.source: unknown source %q (expected store or http)", source)
	}
	if source == FeedSourceHTTP && v.GetString("feed.url") == "" {
		return nil, fmt.Errorf("feed.url is required when feed.source is http")
	}

	timeout := v.GetDuration("feed.timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("feed.timeout must be positive")
	}

	return &Config{
		DB: db.Config{Driver: driver, DSN: v.GetString("db.dsn")},
		Feed: FeedConfig{
			Source:     source,
			URL:        v.GetString("feed.url"),
			Timeout:    timeout,
			MaxRetries: v.GetInt("feed.retries"),
		},
		Location:   loc,
		Teacher:    v.GetString("teacher"),
		Debug:      v.GetBool("debug"),
		LogDir:     v.GetString("log.dir"),
		HTTPAddr:   v.GetString("http.addr"),
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

// LoadLocation resolves an IANA zone name. Empty means the system zone.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	return loc, nil
}
