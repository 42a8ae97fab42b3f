package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"lib7zip/pkg/ffi7z"
	"lib7zip/pkg/hresult"
	"lib7zip/pkg/idl"
	"lib7zip/pkg/logger"
	"lib7zip/pkg/propvar"
)

// allocString hands s to native code as a BSTR the plugin may free.
func allocString(alloc propvar.Allocator, s string) (*propvar.WChar, error) {
	wide, err := propvar.EncodeWide(s)
	if err != nil {
		return nil, err
	}
	p := alloc.AllocBSTR(wide)
	if p == nil {
		return nil, propvar.ErrAlloc
	}
	return p, nil
}

// openCallback answers the handler while it parses the archive headers. When
// the archive came from a file it also serves the sibling volumes of a
// multi-volume set.
type openCallback struct {
	alloc    propvar.Allocator
	password string

	fs   afero.Fs
	dir  string
	name string

	passwordAsked  bool
	subArchiveName string

	volumes []*ffi7z.Unknown
	files   []afero.File
}

func newOpenCallback(alloc propvar.Allocator, password string, fsys afero.Fs, path string) (*openCallback, *ffi7z.Unknown) {
	cb := &openCallback{alloc: alloc, password: password}
	ifaces := []*idl.Interface{idl.IArchiveOpenCallback, idl.ICryptoGetTextPassword, idl.IArchiveOpenSetSubArchiveName}
	if fsys != nil && path != "" {
		cb.fs = fsys
		cb.dir, cb.name = filepath.Split(path)
		ifaces = append(ifaces, idl.IArchiveOpenVolumeCallback)
	}
	return cb, ffi7z.NewUnknown(cb, ifaces...)
}

func (cb *openCallback) SetTotal(files *uint64, bytes *uint64) error {
	if files != nil && bytes != nil {
		logger.Debug("Open total", "files", *files, "bytes", *bytes)
	}
	return nil
}

func (cb *openCallback) SetCompleted(files *uint64, bytes *uint64) error {
	return nil
}

// CryptoGetTextPassword supplies the password for encrypted headers. Without
// one the open is aborted.
func (cb *openCallback) CryptoGetTextPassword(password **propvar.WChar) error {
	if password == nil {
		return hresult.E_POINTER
	}
	*password = nil
	cb.passwordAsked = true
	if cb.password == "" {
		return hresult.E_ABORT
	}
	p, err := allocString(cb.alloc, cb.password)
	if err != nil {
		return err
	}
	*password = p
	return nil
}

func (cb *openCallback) SetSubArchiveName(name *propvar.WChar) error {
	s, err := propvar.WString(name)
	if err != nil {
		return err
	}
	cb.subArchiveName = s
	logger.Debug("Sub-archive name", "name", s)
	return nil
}

// GetProperty reports the name of the first volume; every other property is
// left empty.
func (cb *openCallback) GetProperty(propId uint32, value *propvar.PropVariant) error {
	if value == nil {
		return hresult.E_POINTER
	}
	if PropID(propId) != PropName {
		return nil
	}
	return value.SetString(cb.alloc, cb.name)
}

// GetStream opens a sibling volume. S_FALSE tells the handler the volume does
// not exist.
func (cb *openCallback) GetStream(name *propvar.WChar, inStream **ffi7z.IInStream) error {
	if inStream == nil {
		return hresult.E_POINTER
	}
	*inStream = nil
	volume, err := propvar.WString(name)
	if err != nil {
		return err
	}
	path := filepath.Join(cb.dir, filepath.Base(volume))
	f, err := cb.fs.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("Volume not found", "path", path)
		return hresult.S_FALSE
	}
	if err != nil {
		return fmt.Errorf("open volume %s: %w", path, err)
	}
	logger.Debug("Opened volume", "path", path)
	cb.name = filepath.Base(volume)
	unk := newInStream(f)
	cb.files = append(cb.files, f)
	cb.volumes = append(cb.volumes, unk)
	*inStream = (*ffi7z.IInStream)(unk.Handle(idl.IInStream))
	return nil
}

// close releases the volume files. The handler must be done with them.
func (cb *openCallback) close() error {
	var errs []error
	for _, f := range cb.files {
		errs = append(errs, f.Close())
	}
	cb.files = nil
	return errors.Join(errs...)
}
