package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"asset-sorter/core/assets"
	"asset-sorter/core/database"
	"asset-sorter/core/logger"
	"asset-sorter/core/server"
	"asset-sorter/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration, one section per package.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Host holds configuration for the DAM host API.
	Host assets.Config `mapstructure:"host"`
	// Sorter holds configuration for reorder reconciliation.
	Sorter SorterConfig `mapstructure:"sorter"`
	// Storage holds configuration for the object storage used for order snapshots.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the reorder history database.
	Database database.Config `mapstructure:"database"`
}

// SorterConfig holds reconcile settings.
type SorterConfig struct {
	// Concurrency caps the number of position updates in flight per reconciliation.
	Concurrency int `mapstructure:"concurrency" default:"8"`
	// Snapshots enables writing the persisted order to storage before each reconciliation.
	Snapshots bool `mapstructure:"snapshots" default:"true"`
	// SnapshotRetention is the number of snapshots kept per folder. Zero keeps all.
	SnapshotRetention int `mapstructure:"snapshot_retention" default:"20"`
	// History enables recording every position write in the database.
	History bool `mapstructure:"history" default:"true"`
}

// LoadConfig reads path/.env into the environment, then builds the config from
// tag defaults overridden by environment variables (HOST_URL -> host.url).
func LoadConfig(path string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	bindValues(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the sorter cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Host.URL) == "" {
		errs = append(errs, errors.New("host.url is required"))
	}
	if strings.TrimSpace(c.Host.PositionField) == "" {
		errs = append(errs, errors.New("host.position_field is required"))
	}
	if c.Host.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("host.page_size must be positive, got %d", c.Host.PageSize))
	}
	if c.Sorter.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("sorter.concurrency must not be negative, got %d", c.Sorter.Concurrency))
	}
	if c.Sorter.SnapshotRetention < 0 {
		errs = append(errs, fmt.Errorf("sorter.snapshot_retention must not be negative, got %d", c.Sorter.SnapshotRetention))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// bindValues registers every mapstructure key with its `default` tag so
// AutomaticEnv can resolve it, recursing into nested sections.
func bindValues(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
