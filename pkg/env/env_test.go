package env

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadConfigOverrides(t *testing.T) {
	t.Setenv(LibraryPathVar, "/opt/7zip/7z.so")
	t.Setenv(SearchPathVar, filepath.Join("/a", "b")+string(filepath.ListSeparator)+"/c")
	t.Setenv(ShareCodecsVar, "TRUE")
	t.Setenv(CacheSizeVar, "64")
	t.Setenv(LOGLevel, "debug")

	o, keys := ReadConfigOverrides()
	if o.LibraryPath != "/opt/7zip/7z.so" {
		t.Errorf("LibraryPath = %q", o.LibraryPath)
	}
	if !reflect.DeepEqual(o.SearchPaths, []string{"/a/b", "/c"}) {
		t.Errorf("SearchPaths = %v", o.SearchPaths)
	}
	if !o.ShareCodecs || o.PropertyCacheSize != 64 || o.LogLevel != "debug" {
		t.Errorf("unexpected overrides %+v", o)
	}
	want := []string{KeyLibraryPath, KeySearchPaths, KeyShareCodecs, KeyCacheSize, KeyLogLevel}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
}

func TestReadConfigOverridesIgnoresInvalid(t *testing.T) {
	t.Setenv(LibraryPathVar, "")
	t.Setenv(SearchPathVar, "")
	t.Setenv(ShareCodecsVar, "")
	t.Setenv(CacheSizeVar, "lots")
	t.Setenv(LOGLevel, "")

	o, keys := ReadConfigOverrides()
	if len(keys) != 0 {
		t.Errorf("keys = %v, want none", keys)
	}
	if o.PropertyCacheSize != 0 {
		t.Errorf("PropertyCacheSize = %d", o.PropertyCacheSize)
	}
	if LogLevel() != "INFO" {
		t.Errorf("LogLevel() = %q, want INFO", LogLevel())
	}
}
