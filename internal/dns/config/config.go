package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// ZoneDir is the directory scanned for zone files.
	ZoneDir string `koanf:"zone_dir" validate:"required"`

	// ZoneExts lists the file extensions treated as zone files.
	ZoneExts []string `koanf:"zone_exts" validate:"required,dive,startswith=."`

	// StorePath is the bbolt database file records are compiled into.
	// Empty disables compilation and runs check-only.
	StorePath string `koanf:"store_path"`

	// CacheSize bounds the record-set cache in front of the store.
	// Zero disables the cache.
	CacheSize int `koanf:"cache_size" validate:"gte=0"`

	// BloomFPRate is the target false-positive rate for the name filter
	// sized over the compiled record names.
	BloomFPRate float64 `koanf:"bloom_fp_rate" validate:"required,fp_rate"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// DEFAULT_APP_CONFIG defines the default settings for the zone tooling:
// where zone files live, which extensions count, cache and filter sizing,
// environment and log verbosity.
var DEFAULT_APP_CONFIG = AppConfig{
	ZoneDir:     "/etc/rr-codec/zones/",
	ZoneExts:    []string{".zone", ".db"},
	StorePath:   "",
	CacheSize:   1000,
	BloomFPRate: 0.01,
	Env:         "prod",
	LogLevel:    "info",
}

// validFPRate validates a bloom filter false-positive rate. The rate must
// be strictly between 0 and 1; the endpoints make the filter degenerate.
func validFPRate(fl validator.FieldLevel) bool {
	rate := fl.Field().Float()
	return rate > 0 && rate < 1
}

// envLoader loads environment variables with the prefix "RRC_",
// lowercasing keys and stripping the prefix. It is a variable so tests
// can substitute a fixed environment.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "RRC_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "RRC_"))
			value = strings.TrimSpace(value)

			if value == "" {
				return key, value
			}

			if strings.Contains(value, " ") || strings.Contains(value, ",") {
				parts := strings.FieldsFunc(value, func(r rune) bool {
					return r == ' ' || r == ','
				})
				return key, parts
			}

			return key, value
		},
	}), nil)
}

// defaultLoader loads default configuration values into the provided Koanf
// instance using the structs provider and the DEFAULT_APP_CONFIG struct.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers the custom "fp_rate" validation with the
// provided validator.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("fp_rate", validFPRate)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	err = registerValidation(validate)
	if err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
