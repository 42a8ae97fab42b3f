// Package env consolidates all environment variable reading for the application.
// Config overrides are applied only at startup (see config.Load).
package env

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment variable names (single source of truth)
const (
	LibraryPathVar = "LIB7ZIP_PATH"
	SearchPathVar  = "LIB7ZIP_SEARCH_PATH"
	ConfigFileVar  = "LIB7ZIP_CONFIG"
	ShareCodecsVar = "LIB7ZIP_SHARE_CODECS"
	CacheSizeVar   = "LIB7ZIP_PROPERTY_CACHE_SIZE"
	LOGLevel       = "LOG_LEVEL"
	TZVar          = "TZ"
)

// Config keys matching the variables above.
const (
	KeyLibraryPath = "library_path"
	KeySearchPaths = "search_paths"
	KeyShareCodecs = "share_codecs"
	KeyCacheSize   = "property_cache_size"
	KeyLogLevel    = "log_level"
)

// TZ returns the TZ environment variable (e.g. for logger timezone).
func TZ() string {
	return os.Getenv(TZVar)
}

// LogLevel returns LOG_LEVEL with default "INFO" (for early logger init before config).
func LogLevel() string {
	return getEnv(LOGLevel, "INFO")
}

// LibraryPath returns the explicit plugin library override, if any.
func LibraryPath() string {
	return os.Getenv(LibraryPathVar)
}

// ConfigFile returns the optional config file path.
func ConfigFile() string {
	return os.Getenv(ConfigFileVar)
}

// ConfigOverrides holds all config values that can be set via environment variables.
type ConfigOverrides struct {
	LibraryPath       string
	SearchPaths       []string
	ShareCodecs       bool
	PropertyCacheSize int
	LogLevel          string
}

// ReadConfigOverrides reads all relevant environment variables once and returns
// the overrides plus the config keys that were set.
func ReadConfigOverrides() (ConfigOverrides, []string) {
	var o ConfigOverrides
	var keys []string

	if v := os.Getenv(LibraryPathVar); v != "" {
		o.LibraryPath = v
		keys = append(keys, KeyLibraryPath)
	}
	if v := os.Getenv(SearchPathVar); v != "" {
		o.SearchPaths = filepath.SplitList(v)
		keys = append(keys, KeySearchPaths)
	}
	if os.Getenv(ShareCodecsVar) != "" {
		o.ShareCodecs = getEnvBool(ShareCodecsVar, false)
		keys = append(keys, KeyShareCodecs)
	}
	if os.Getenv(CacheSizeVar) != "" {
		if n := getEnvInt(CacheSizeVar, 0); n > 0 {
			o.PropertyCacheSize = n
			keys = append(keys, KeyCacheSize)
		}
	}
	if v := os.Getenv(LOGLevel); v != "" {
		o.LogLevel = v
		keys = append(keys, KeyLogLevel)
	}
	return o, keys
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.ToLower(v) == "true" || v == "1"
	}
	return defaultVal
}
