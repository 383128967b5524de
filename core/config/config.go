package config

import (
	"reflect"
	"strings"

	"competency-matrix/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Library holds configuration for the query library (language, projection flags).
	Library LibraryConfig `mapstructure:"library"`
	// Data holds configuration for the dataset location on disk.
	Data DataConfig `mapstructure:"data"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LibraryConfig holds configuration for the query library.
type LibraryConfig struct {
	// Language is the language entries are returned in (es, en).
	Language string `mapstructure:"language" default:"es"`
	// IncludeComplementary controls whether competency projections carry
	// complementary competencies by default.
	IncludeComplementary bool `mapstructure:"include_complementary" default:"true"`
	// IncludeIndicators controls whether competency projections carry
	// level indicators by default.
	IncludeIndicators bool `mapstructure:"include_indicators" default:"true"`
	// SearchLimit is the default maximum number of search results.
	SearchLimit int `mapstructure:"search_limit" default:"20"`
}

// DataConfig holds configuration for the dataset location.
type DataConfig struct {
	// Dir is the root directory of the dataset. Role documents live in
	// one subdirectory per language, e.g. data/es/backend-developer.json.
	Dir string `mapstructure:"dir" default:"data"`
	// NativeLanguage is the language the role documents are authored in.
	NativeLanguage string `mapstructure:"native_language" default:"es"`
	// TranslationsDir holds roles.json plus one subdirectory per
	// non-native language with per-role translation documents.
	TranslationsDir string `mapstructure:"translations_dir" default:"translations"`
}

// Supported dataset languages.
const (
	LanguageEs = "es"
	LanguageEn = "en"
)

// IsValidLanguage checks if the configured language is supported.
func (c LibraryConfig) IsValidLanguage() bool {
	switch c.Language {
	case LanguageEs, LanguageEn:
		return true
	default:
		return false
	}
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LIBRARY_LANGUAGE -> library.language)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
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

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
