// Package config resolves dashboard settings from flags, a YAML file,
// AGRIBOT_* environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/atikulmunna/agribot/internal/i18n"
	"github.com/atikulmunna/agribot/internal/logging"
	"github.com/atikulmunna/agribot/internal/logbuf"
	"github.com/atikulmunna/agribot/internal/telemetry"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// EnvPrefix is prepended to environment variable names.
const EnvPrefix = "AGRIBOT"

// Keys.
const (
	KeyPort              = "port"
	KeyLocale            = "locale"
	KeyLogLevel          = "log_level"
	KeyDev               = "dev"
	KeyLogCapacity       = "log.capacity"
	KeyFeedInterval      = "log.feed_interval"
	KeyAutoFeed          = "log.auto_feed"
	KeySeedFile          = "log.seed_file"
	KeyTelemetryInterval = "telemetry.interval"
	KeyExportDir         = "export.dir"
	KeyI18nDir           = "i18n.dir"
	KeyCORSOrigins       = "cors.origins"
)

// Config is the resolved settings for one process.
type Config struct {
	Port     int
	Locale   i18n.Locale
	LogLevel string
	Dev      bool

	LogCapacity  int
	FeedInterval time.Duration
	AutoFeed     bool
	SeedFile     string

	TelemetryInterval time.Duration

	ExportDir   string
	I18nDir     string
	CORSOrigins []string
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyLocale, string(i18n.English))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDev, false)
	v.SetDefault(KeyLogCapacity, logbuf.DefaultCapacity)
	v.SetDefault(KeyFeedInterval, logbuf.DefaultFeedInterval)
	v.SetDefault(KeyAutoFeed, true)
	v.SetDefault(KeySeedFile, "")
	v.SetDefault(KeyTelemetryInterval, telemetry.DefaultInterval)
	v.SetDefault(KeyExportDir, ".")
	v.SetDefault(KeyI18nDir, "")
	v.SetDefault(KeyCORSOrigins, []string{})
}

// BindEnv makes AGRIBOT_LOG_CAPACITY and friends override file values.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadDotEnv loads path (default ".env") into the process environment.
// A missing file is not an error; existing variables are not overwritten.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads every key from v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:              v.GetInt(KeyPort),
		LogLevel:          v.GetString(KeyLogLevel),
		Dev:               v.GetBool(KeyDev),
		LogCapacity:       v.GetInt(KeyLogCapacity),
		FeedInterval:      v.GetDuration(KeyFeedInterval),
		AutoFeed:          v.GetBool(KeyAutoFeed),
		SeedFile:          v.GetString(KeySeedFile),
		TelemetryInterval: v.GetDuration(KeyTelemetryInterval),
		ExportDir:         v.GetString(KeyExportDir),
		I18nDir:           v.GetString(KeyI18nDir),
		CORSOrigins:       splitList(v.GetStringSlice(KeyCORSOrigins)),
	}

	locale, err := i18n.ParseLocale(v.GetString(KeyLocale))
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLocale, err)
	}
	cfg.Locale = locale

	return cfg, cfg.Validate()
}

// splitList accepts a YAML list, or a comma or space separated string as
// AGRIBOT_CORS_ORIGINS provides it.
func splitList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate rejects values no component could run with.
func (c Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: %s %d out of range", ErrInvalid, KeyPort, c.Port))
	}
	if c.LogCapacity <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, KeyLogCapacity, c.LogCapacity))
	}
	if c.FeedInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, KeyFeedInterval, c.FeedInterval))
	}
	if c.TelemetryInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, KeyTelemetryInterval, c.TelemetryInterval))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err))
	}
	if _, err := i18n.ParseLocale(string(c.Locale)); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLocale, err))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CatalogPattern is the glob for translation override files, or "" when
// no directory is configured.
func (c Config) CatalogPattern() string {
	if c.I18nDir == "" {
		return ""
	}
	return strings.TrimRight(c.I18nDir, "/") + "/**/*.json"
}
