package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

// ErrLibraryNotFound is returned when no candidate path holds the plugin
// library.
var ErrLibraryNotFound = errors.New("7-Zip plugin library not found")

// LibraryNames lists the file names the plugin ships under, preferred first.
func LibraryNames() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"7z.dll"}
	case "darwin":
		return []string{"7z.so", "7z.dylib"}
	default:
		return []string{"7z.so"}
	}
}

// DefaultSearchPaths returns the directories searched when no explicit
// library path is configured.
// If running in Docker (/.dockerenv exists), /app/lib is searched first.
func DefaultSearchPaths() []string {
	var dirs []string
	if _, err := os.Stat("/.dockerenv"); err == nil {
		dirs = append(dirs, "/app/lib")
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	switch runtime.GOOS {
	case "windows":
		for _, v := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
			if pf := os.Getenv(v); pf != "" {
				dirs = append(dirs, filepath.Join(pf, "7-Zip"))
			}
		}
	default:
		dirs = append(dirs,
			"/usr/local/lib/7zip",
			"/usr/lib/7zip",
			"/usr/libexec/7zip",
			"/usr/lib/p7zip",
			"/usr/local/lib/p7zip",
			"/opt/7zip",
		)
	}
	return dirs
}

// FindLibrary resolves the plugin library path. An explicit path wins and
// must exist; otherwise every search directory is checked for each library
// name in order.
func FindLibrary(fs afero.Fs, explicit string, searchPaths []string) (string, error) {
	if explicit != "" {
		if _, err := fs.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, explicit, err)
		}
		return explicit, nil
	}
	for _, dir := range searchPaths {
		for _, name := range LibraryNames() {
			candidate := filepath.Join(dir, name)
			if info, err := fs.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%w in %v", ErrLibraryNotFound, searchPaths)
}
