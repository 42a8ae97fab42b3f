package ffi7z

/*
#cgo linux LDFLAGS: -ldl
#include <stdlib.h>
#include "ffi7z_static.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/google/uuid"

	"lib7zip/pkg/hresult"
	"lib7zip/pkg/logger"
	"lib7zip/pkg/propvar"
)

// ErrNotLoaded is returned by calls on a closed library.
var ErrNotLoaded = errors.New("ffi7z: library not loaded")

// Library is a loaded 7-Zip plugin library.
type Library struct {
	path string
	mu   sync.RWMutex
	lib  *C.FFI7Z_Library
}

// Load opens the plugin library at path and resolves its entry points.
func Load(path string) (*Library, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var errBuf [512]C.char
	lib := C.FFI7Z_LoadLibrary(cpath, &errBuf[0], C.size_t(len(errBuf)))
	if lib == nil {
		return nil, fmt.Errorf("load %s: %s", path, C.GoString(&errBuf[0]))
	}
	logger.Debug("Loaded 7-Zip library", "path", path)
	return &Library{path: path, lib: lib}, nil
}

// Path returns the file the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// Close unloads the library. Every native object created through it must
// have been released first.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lib == nil {
		return nil
	}
	C.FFI7Z_FreeLibrary(l.lib)
	l.lib = nil
	return nil
}

func (l *Library) handle() (*C.FFI7Z_Library, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.lib == nil {
		return nil, ErrNotLoaded
	}
	return l.lib, nil
}

// NumFormats returns the number of archive formats the library handles.
func (l *Library) NumFormats() (uint32, error) {
	lib, err := l.handle()
	if err != nil {
		return 0, err
	}
	var n C.uint32_t
	code := hresult.FromInt32(int32(C.FFI7Z_GetNumberOfFormats(lib, &n)))
	return uint32(n), hresult.Check("GetNumberOfFormats", code)
}

// FormatProperty reads one property of a format into v.
func (l *Library) FormatProperty(index, propID uint32, v *propvar.PropVariant) error {
	lib, err := l.handle()
	if err != nil {
		return err
	}
	code := hresult.FromInt32(int32(C.FFI7Z_GetHandlerProperty2(lib, C.uint32_t(index), C.PROPID(propID), (*C.PROPVARIANT)(unsafe.Pointer(v)))))
	return hresult.Check("GetHandlerProperty2", code)
}

// NumMethods returns the number of codecs the library provides.
func (l *Library) NumMethods() (uint32, error) {
	lib, err := l.handle()
	if err != nil {
		return 0, err
	}
	var n C.uint32_t
	code := hresult.FromInt32(int32(C.FFI7Z_GetNumberOfMethods(lib, &n)))
	return uint32(n), hresult.Check("GetNumberOfMethods", code)
}

// MethodProperty reads one property of a codec into v.
func (l *Library) MethodProperty(index, propID uint32, v *propvar.PropVariant) error {
	lib, err := l.handle()
	if err != nil {
		return err
	}
	code := hresult.FromInt32(int32(C.FFI7Z_GetMethodProperty(lib, C.uint32_t(index), C.PROPID(propID), (*C.PROPVARIANT)(unsafe.Pointer(v)))))
	return hresult.Check("GetMethodProperty", code)
}

// CreateObject creates the object registered under clsid and returns its
// iid interface. The caller owns the returned reference.
func (l *Library) CreateObject(clsid, iid uuid.UUID) (unsafe.Pointer, error) {
	lib, err := l.handle()
	if err != nil {
		return nil, err
	}
	cls := GUIDFromUUID(clsid)
	want := GUIDFromUUID(iid)
	var out unsafe.Pointer
	code := hresult.FromInt32(int32(C.FFI7Z_CreateObject(lib, (*C.GUID)(unsafe.Pointer(&cls)), (*C.GUID)(unsafe.Pointer(&want)), &out)))
	if err := hresult.Check("CreateObject", code); err != nil {
		return nil, fmt.Errorf("create %s: %w", clsid, err)
	}
	if out == nil {
		return nil, fmt.Errorf("create %s: %w", clsid, hresult.E_POINTER)
	}
	return out, nil
}

// Allocator returns the allocator matching the library's own.
func (l *Library) Allocator() propvar.Allocator {
	return NativeAllocator{}
}
