package initialization

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"lib7zip/pkg/archive"
	"lib7zip/pkg/config"
	"lib7zip/pkg/ffi7z"
	"lib7zip/pkg/logger"
)

// InitializedComponents holds everything a command needs to work with
// archives.
type InitializedComponents struct {
	Config   *config.Config
	Library  *ffi7z.Library
	Registry *archive.Registry
}

// OpenOptions returns archive options carrying the configured defaults.
func (c *InitializedComponents) OpenOptions() archive.OpenOptions {
	return archive.OpenOptions{
		ShareCodecs: c.Config.ShareCodecs,
		CacheSize:   c.Config.PropertyCacheSize,
	}
}

// Close unloads the library. Archives opened through the registry must be
// closed first.
func (c *InitializedComponents) Close() error {
	if c.Library == nil {
		return nil
	}
	return c.Library.Close()
}

// Exit prints a fatal error and exits with status 1.
func Exit(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// Bootstrap loads the configuration and the plugin library it points at.
func Bootstrap() (*InitializedComponents, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)
	return BootstrapWith(cfg, afero.NewOsFs())
}

// BootstrapWith resolves the library against fsys and loads it.
func BootstrapWith(cfg *config.Config, fsys afero.Fs) (*InitializedComponents, error) {
	path, err := cfg.ResolveLibrary(fsys)
	if err != nil {
		return nil, err
	}
	lib, err := ffi7z.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Info("Using 7-Zip library", "path", path)

	return &InitializedComponents{
		Config:   cfg,
		Library:  lib,
		Registry: archive.NewRegistry(lib),
	}, nil
}
