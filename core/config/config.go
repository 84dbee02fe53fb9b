package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"ucs/core/database"
	"ucs/core/logger"
	"ucs/core/server"
	"ucs/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the base name of the optional config file (ucs.yaml, ucs.toml, ucs.json).
const FileName = "ucs"

// Config is the root of the UCS configuration.
type Config struct {
	// Server configures the HTTP API.
	Server server.Config `mapstructure:"server"`
	// Storage configures the bucket and the transport used to reach it.
	Storage storage.Config `mapstructure:"storage"`
	// Log configures the zap logger.
	Log logger.Config `mapstructure:"log"`
	// Database configures the optional activity ledger.
	Database database.Config `mapstructure:"database"`
}

// envAliases are the standard AWS variables accepted when the STORAGE_*
// variable of the same key is unset.
var envAliases = map[string]string{
	"storage.access_key": "AWS_ACCESS_KEY_ID",
	"storage.secret_key": "AWS_SECRET_ACCESS_KEY",
	"storage.region":     "AWS_REGION",
}

// LoadConfig reads the configuration found in dir.
//
// Precedence, highest first: environment (a .env file in dir is loaded into
// it), the optional ucs config file in dir, struct tag defaults.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal in production.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// The config file is optional too; only a broken one is an error
	v.SetConfigName(FileName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. STORAGE_ACCESS_KEY -> storage.access_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Accept the standard AWS names as a second choice
	for key, alias := range envAliases {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), alias); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// bindValues registers every tagged leaf field as a viper key, with the
// value of its `default` tag. Keys must be known for AutomaticEnv to see them.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
