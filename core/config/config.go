package config

import (
	"fmt"
	"reflect"
	"strings"

	"item-matcher/core/catalog"
	"item-matcher/core/database"
	"item-matcher/core/logger"
	"item-matcher/core/reconcile"
	"item-matcher/core/server"
	"item-matcher/core/slot"
	"item-matcher/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Catalog locates the source and candidate catalogs.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Slot selects where the ledger is persisted.
	Slot slot.Config `mapstructure:"slot"`
	// Matcher holds the scoring and auto-match settings.
	Matcher reconcile.Config `mapstructure:"matcher"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SLOT_DRIVER -> slot.driver)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects unsupported driver, kind and strategy names.
func (c *Config) Validate() error {
	if !c.Database.IsValidDriver() {
		return fmt.Errorf("invalid database driver %q", c.Database.Driver)
	}
	if !c.Slot.IsValidDriver() {
		return fmt.Errorf("invalid slot driver %q", c.Slot.Driver)
	}
	if !c.Catalog.IsValidKind() {
		return fmt.Errorf("invalid catalog kind %q/%q", c.Catalog.SourceKind, c.Catalog.CandidateKind)
	}
	if err := c.Matcher.Validate(); err != nil {
		return fmt.Errorf("invalid matcher config: %w", err)
	}
	return nil
}

// NeedsStorage reports whether any configured component reads from object storage.
func (c *Config) NeedsStorage() bool {
	return c.Slot.Driver == slot.DriverStorage ||
		c.Catalog.SourceKind == catalog.KindStorage ||
		c.Catalog.CandidateKind == catalog.KindStorage
}

// NeedsDatabase reports whether the ledger slot lives in the database.
func (c *Config) NeedsDatabase() bool {
	return c.Slot.Driver == slot.DriverDatabase
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
