package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	AppName     = "wishlist"
	EnvFileName = "config.env"

	LogLevelEnv = "WISHLIST_LOG_LEVEL"
	FormatEnv   = "WISHLIST_FORMAT"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// LogLevel returns the configured log level, defaulting to info.
func LogLevel() zerolog.Level {
	v := strings.TrimSpace(os.Getenv(LogLevelEnv))
	if v == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(v))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// OutputFormat returns the configured output format, defaulting to text.
func OutputFormat() string {
	return NormalizeFormat(os.Getenv(FormatEnv))
}

// NormalizeFormat maps a user supplied format name to a known format.
// Unknown names fall back to text.
func NormalizeFormat(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case FormatJSON:
		return FormatJSON
	case FormatYAML, "yml":
		return FormatYAML
	default:
		return FormatText
	}
}
