package config

import (
	"reflect"
	"strings"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
	"github.com/bme-wacoisd/google-classroom/core/database"
	"github.com/bme-wacoisd/google-classroom/core/logger"
	"github.com/bme-wacoisd/google-classroom/core/server"
	"github.com/bme-wacoisd/google-classroom/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config aggregates the per-package configuration sections. Each section
// owns its own defaults through struct tags.
type Config struct {
	// Server configures the HTTP listener and the API surface.
	Server server.Config `mapstructure:"server"`
	// Classroom configures the Google Classroom API client.
	Classroom classroom.Config `mapstructure:"classroom"`
	// Storage configures the export archive bucket (MinIO or S3).
	Storage storage.Config `mapstructure:"storage"`
	// Log configures the zap logger.
	Log logger.Config `mapstructure:"log"`
	// Database configures the optional run-history database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig reads configuration from the environment, with an optional
// .env file layered underneath. Keys map as SECTION_KEY, so SERVER_PORT
// feeds server.port.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Walk the struct tags so every key has a registered default.
	bindValues(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues recurses through the config struct and registers the 'default'
// tag of every 'mapstructure'-tagged field in viper. Registration matters
// even for empty defaults: AutomaticEnv only sees keys viper knows about.
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

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
