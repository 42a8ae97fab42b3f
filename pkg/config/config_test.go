package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lib7zip/pkg/env"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		env.LibraryPathVar, env.SearchPathVar, env.ConfigFileVar, env.ShareCodecsVar,
		env.CacheSizeVar, env.LOGLevel,
		"LIB7ZIP_LIBRARY_PATH", "LIB7ZIP_SEARCH_PATHS", "LIB7ZIP_LOG_LEVEL",
	} {
		t.Setenv(v, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.LibraryPath)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultPropertyCacheSize, cfg.PropertyCacheSize)
	assert.False(t, cfg.ShareCodecs)
	assert.NotEmpty(t, cfg.SearchPaths)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "absent.json")
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, DefaultPropertyCacheSize, cfg.PropertyCacheSize)
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "lib7zip.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"library_path": "/from/file/7z.so",
		"search_paths": ["/a", "/b"],
		"share_codecs": true,
		"property_cache_size": 12
	}`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/file/7z.so", cfg.LibraryPath)
	assert.Equal(t, []string{"/a", "/b"}, cfg.SearchPaths)
	assert.True(t, cfg.ShareCodecs)
	assert.Equal(t, 12, cfg.PropertyCacheSize)

	t.Setenv(env.LibraryPathVar, "/from/env/7z.so")
	t.Setenv(env.LOGLevel, "DEBUG")
	t.Setenv(env.CacheSizeVar, "99")

	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env/7z.so", cfg.LibraryPath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 99, cfg.PropertyCacheSize)
}

func TestLoadViaConfigVar(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level": "WARN"}`), 0644))
	t.Setenv(env.ConfigFileVar, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "WARN", cfg.LogLevel)
}

func TestLoadRejectsBadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.PropertyCacheSize = 0
	require.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "cfg.json")
	cfg := Default()
	cfg.LibraryPath = "/opt/7zip/7z.so"
	cfg.ShareCodecs = true
	require.NoError(t, cfg.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.LibraryPath, loaded.LibraryPath)
	assert.True(t, loaded.ShareCodecs)

	require.NoError(t, loaded.Save())
	require.Error(t, Default().Save())
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := Default()
	ApplyEnvOverrides(cfg, env.ConfigOverrides{
		LibraryPath: "/x/7z.so",
		SearchPaths: []string{"/y"},
		LogLevel:    "ERROR",
	}, []string{env.KeyLibraryPath, env.KeyLogLevel})

	assert.Equal(t, "/x/7z.so", cfg.LibraryPath)
	assert.Equal(t, "ERROR", cfg.LogLevel)
	assert.NotEqual(t, []string{"/y"}, cfg.SearchPaths)
}

func TestResolveLibrary(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/opt/7zip/7z.so", []byte("elf"), 0644))

	cfg := Default()
	cfg.SearchPaths = []string{"/nowhere", "/opt/7zip"}
	path, err := cfg.ResolveLibrary(fs)
	if err != nil {
		// non-linux names differ
		t.Skip(err)
	}
	assert.Equal(t, filepath.Join("/opt/7zip", "7z.so"), path)

	cfg.LibraryPath = "/missing/7z.so"
	_, err = cfg.ResolveLibrary(fs)
	require.Error(t, err)
}
