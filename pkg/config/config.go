package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"lib7zip/pkg/env"
	"lib7zip/pkg/logger"
	"lib7zip/pkg/paths"
)

const (
	DefaultEnvPrefix         = "LIB7ZIP"
	DefaultLogLevel          = "INFO"
	DefaultPropertyCacheSize = 4096
)

// Config holds application configuration
type Config struct {
	// Plugin library location. An explicit path wins over the search list.
	LibraryPath string   `json:"library_path,omitempty" mapstructure:"library_path"`
	SearchPaths []string `json:"search_paths,omitempty" mapstructure:"search_paths"`

	LogLevel string `json:"log_level" mapstructure:"log_level"`

	// Hand the library's codec registry to archive handlers that ask for it.
	ShareCodecs bool `json:"share_codecs" mapstructure:"share_codecs"`

	// Number of item properties kept per open archive.
	PropertyCacheSize int `json:"property_cache_size" mapstructure:"property_cache_size"`

	// path the configuration was loaded from, if any
	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SearchPaths:       paths.DefaultSearchPaths(),
		LogLevel:          DefaultLogLevel,
		PropertyCacheSize: DefaultPropertyCacheSize,
	}
}

// Load builds the configuration from defaults, the optional config file named
// by LIB7ZIP_CONFIG and finally the environment.
func Load() (*Config, error) {
	return LoadFile(env.ConfigFile())
}

// LoadFile is Load with an explicit config file. An empty path or a missing
// file leaves the defaults in place.
func LoadFile(path string) (*Config, error) {
	v := viper.NewWithOptions(
		viper.KeyDelimiter("."),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.AllowEmptyEnv(false)
	v.AutomaticEnv()

	def := Default()
	_ = v.BindEnv(env.KeyLibraryPath)
	v.SetDefault(env.KeyLibraryPath, def.LibraryPath)

	_ = v.BindEnv(env.KeySearchPaths)
	v.SetDefault(env.KeySearchPaths, def.SearchPaths)

	_ = v.BindEnv(env.KeyLogLevel)
	v.SetDefault(env.KeyLogLevel, def.LogLevel)

	_ = v.BindEnv(env.KeyShareCodecs)
	v.SetDefault(env.KeyShareCodecs, def.ShareCodecs)

	_ = v.BindEnv(env.KeyCacheSize)
	v.SetDefault(env.KeyCacheSize, def.PropertyCacheSize)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
			logger.Info("No config found, using defaults", "path", path)
		} else {
			logger.Info("Loaded configuration", "path", path)
		}
	}

	decodeHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(string(os.PathListSeparator)),
	)

	cfg := &Config{path: path}
	if err := v.Unmarshal(cfg, viper.DecodeHook(decodeHooks)); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	overrides, keys := env.ReadConfigOverrides()
	ApplyEnvOverrides(cfg, overrides, keys)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the application cannot work with.
func (c *Config) Validate() error {
	if c.PropertyCacheSize <= 0 {
		return fmt.Errorf("property_cache_size must be positive, got %d", c.PropertyCacheSize)
	}
	return nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// ResolveLibrary finds the plugin library on fsys.
func (c *Config) ResolveLibrary(fsys afero.Fs) (string, error) {
	return paths.FindLibrary(fsys, c.LibraryPath, c.SearchPaths)
}

// Save writes the configuration back to the file it came from.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no file path")
	}
	return c.SaveFile(c.path)
}

// SaveFile writes the configuration as indented JSON.
func (c *Config) SaveFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func keySet(list []string, s string) bool {
	for _, k := range list {
		if k == s {
			return true
		}
	}
	return false
}

// ApplyEnvOverrides copies the variables named in keys from o onto cfg.
func ApplyEnvOverrides(cfg *Config, o env.ConfigOverrides, keys []string) {
	if keySet(keys, env.KeyLibraryPath) {
		cfg.LibraryPath = o.LibraryPath
	}
	if keySet(keys, env.KeySearchPaths) {
		cfg.SearchPaths = o.SearchPaths
	}
	if keySet(keys, env.KeyShareCodecs) {
		cfg.ShareCodecs = o.ShareCodecs
	}
	if keySet(keys, env.KeyCacheSize) {
		cfg.PropertyCacheSize = o.PropertyCacheSize
	}
	if keySet(keys, env.KeyLogLevel) {
		cfg.LogLevel = o.LogLevel
	}
}
