package archive

import (
	"bytes"
	"errors"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeka/zip"

	"lib7zip/pkg/env"
	"lib7zip/pkg/ffi7z"
	"lib7zip/pkg/paths"
)

var (
	libOnce sync.Once
	libReg  *Registry
	libErr  error
)

// nativeRegistry loads the installed plugin once per test binary. The
// library stays loaded; handlers created by earlier tests may still hold
// code pages.
func nativeRegistry(t *testing.T) *Registry {
	t.Helper()
	libOnce.Do(func() {
		var dirs []string
		for _, d := range paths.DefaultSearchPaths() {
			// p7zip 16.02 predates the vtable layout used here.
			if !strings.Contains(d, "p7zip") {
				dirs = append(dirs, d)
			}
		}
		path, err := paths.FindLibrary(afero.NewOsFs(), env.LibraryPath(), dirs)
		if err != nil {
			libErr = err
			return
		}
		lib, err := ffi7z.Load(path)
		if err != nil {
			libErr = err
			return
		}
		libReg = NewRegistry(lib)
	})
	if libReg == nil {
		t.Skipf("no 7-Zip library: %v", libErr)
	}
	return libReg
}

type zipEntry struct {
	name     string
	data     string
	password string
}

// buildZip writes a zip of stored entries. Entries with a password are
// deflated and encrypted with the traditional PKWARE cipher; names ending in
// "/" are directories.
func buildZip(t *testing.T, entries []zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	mtime := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	for _, e := range entries {
		var (
			w   io.Writer
			err error
		)
		if e.password == "" {
			hdr := &zip.FileHeader{Name: e.name, Method: zip.Store}
			hdr.SetModTime(mtime)
			w, err = zw.CreateHeader(hdr)
		} else {
			w, err = zw.Encrypt(e.name, e.password, zip.StandardEncryption)
		}
		require.NoError(t, err)
		_, err = w.Write([]byte(e.data))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeZip(t *testing.T, entries []zipEntry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.zip")
	require.NoError(t, os.WriteFile(path, buildZip(t, entries), 0o644))
	return path
}

var plainEntries = []zipEntry{
	{name: "dir/"},
	{name: "dir/a.txt", data: "hi"},
	{name: "b.txt", data: "bye"},
}

func TestNativeRegistry(t *testing.T) {
	reg := nativeRegistry(t)

	formats, err := reg.Formats()
	require.NoError(t, err)
	require.NotEmpty(t, formats)

	zf, err := reg.Format("zip")
	require.NoError(t, err)
	assert.Contains(t, zf.Extensions, "zip")
	assert.True(t, zf.MatchesSignature([]byte("PK\x03\x04")))

	methods, err := reg.Methods()
	require.NoError(t, err)
	var names []string
	for _, m := range methods {
		names = append(names, m.Name)
	}
	assert.Contains(t, names, "LZMA")
	assert.Contains(t, names, "Copy")
}

func TestNativeIterate(t *testing.T) {
	reg := nativeRegistry(t)
	a, err := reg.OpenFile(writeZip(t, plainEntries), OpenOptions{})
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "zip", strings.ToLower(a.Format().Name))

	type triple struct {
		path  string
		isDir bool
		crc   uint32
	}
	var got []triple
	items, err := a.Items()
	require.NoError(t, err)
	for _, it := range items {
		p, err := it.Path()
		require.NoError(t, err)
		dir, err := it.IsDir()
		require.NoError(t, err)
		crc, _, err := it.CRC()
		require.NoError(t, err)
		got = append(got, triple{filepath.ToSlash(p), dir, crc})
	}
	assert.ElementsMatch(t, []triple{
		{"dir", true, 0},
		{"dir/a.txt", false, crc32.ChecksumIEEE([]byte("hi"))},
		{"b.txt", false, crc32.ChecksumIEEE([]byte("bye"))},
	}, got)

	it, err := a.ItemByPath("b.txt")
	require.NoError(t, err)
	size, err := it.Size()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), size)
}

func TestNativeExtract(t *testing.T) {
	reg := nativeRegistry(t)
	a, err := reg.OpenFile(writeZip(t, plainEntries), OpenOptions{})
	require.NoError(t, err)
	defer a.Close()

	out := t.TempDir()
	require.NoError(t, a.Extract(out, ExtractOptions{}))

	data, err := os.ReadFile(filepath.Join(out, "dir", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
	data, err = os.ReadFile(filepath.Join(out, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "bye", string(data))

	assert.NoError(t, a.Test(ExtractOptions{}))
}

func TestNativeEncryptedEntry(t *testing.T) {
	reg := nativeRegistry(t)
	a, err := reg.OpenFile(writeZip(t, []zipEntry{
		{name: "plain.txt", data: "open"},
		{name: "secret.txt", data: "hidden words", password: "pw"},
	}), OpenOptions{})
	require.NoError(t, err)
	defer a.Close()

	it, err := a.ItemByPath("secret.txt")
	require.NoError(t, err)
	enc, err := it.Encrypted()
	require.NoError(t, err)
	assert.True(t, enc)

	data, err := it.Bytes("pw")
	require.NoError(t, err)
	assert.Equal(t, "hidden words", string(data))

	_, err = it.Bytes("wrong")
	var xerr *ExtractError
	require.True(t, errors.As(err, &xerr), "got %v", err)
	assert.Equal(t, it.Index(), xerr.Index)

	_, err = it.Bytes("")
	assert.ErrorIs(t, err, ErrPasswordRequired)

	plain, err := a.ItemByPath("plain.txt")
	require.NoError(t, err)
	data, err = plain.Bytes("")
	require.NoError(t, err)
	assert.Equal(t, "open", string(data))
}

func TestNativeRejectsGarbage(t *testing.T) {
	reg := nativeRegistry(t)
	_, err := reg.Open(bytes.NewReader([]byte("definitely not an archive")), OpenOptions{Name: "x.zip", Format: "zip"})
	assert.ErrorIs(t, err, ErrNoFormat)
}
