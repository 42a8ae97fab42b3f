package paths

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestFindLibrary(t *testing.T) {
	fs := afero.NewMemMapFs()
	name := LibraryNames()[0]
	lib := filepath.Join("/opt/second", name)
	if err := afero.WriteFile(fs, lib, []byte("elf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fs.MkdirAll(filepath.Join("/opt/first", name), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindLibrary(fs, "", []string{"/opt/missing", "/opt/first", "/opt/second"})
	if err != nil {
		t.Fatalf("FindLibrary: %v", err)
	}
	if got != lib {
		t.Errorf("FindLibrary = %q, want %q", got, lib)
	}
}

func TestFindLibraryExplicit(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/custom/lib7z.so", []byte("elf"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindLibrary(fs, "/custom/lib7z.so", []string{"/ignored"})
	if err != nil || got != "/custom/lib7z.so" {
		t.Errorf("FindLibrary = %q, %v", got, err)
	}

	_, err = FindLibrary(fs, "/custom/none.so", nil)
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("err = %v, want ErrLibraryNotFound", err)
	}
}

func TestFindLibraryNotFound(t *testing.T) {
	_, err := FindLibrary(afero.NewMemMapFs(), "", []string{"/a", "/b"})
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("err = %v, want ErrLibraryNotFound", err)
	}
}

func TestDefaultSearchPaths(t *testing.T) {
	if len(DefaultSearchPaths()) == 0 {
		t.Error("no default search paths")
	}
}
