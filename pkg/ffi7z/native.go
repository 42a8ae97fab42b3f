package ffi7z

import (
	"fmt"
	"unsafe"

	"lib7zip/pkg/hresult"
	"lib7zip/pkg/idl"
)

// QueryInterface asks any native object for iface. The caller owns the
// returned reference.
func QueryInterface(obj unsafe.Pointer, iface *idl.Interface) (unsafe.Pointer, error) {
	if obj == nil {
		return nil, hresult.E_POINTER
	}
	iid := GUIDFromUUID(iface.ID)
	var out unsafe.Pointer
	code := (*IUnknown)(obj).QueryInterface(&iid, &out)
	if err := hresult.Check("QueryInterface("+iface.Name+")", code); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("QueryInterface(%s): %w", iface.Name, hresult.E_POINTER)
	}
	return out, nil
}

// AddRef adds a native reference to obj.
func AddRef(obj unsafe.Pointer) uint32 {
	if obj == nil {
		return 0
	}
	return (*IUnknown)(obj).AddRef()
}

// Release drops a native reference to obj. A nil obj is ignored.
func Release(obj unsafe.Pointer) uint32 {
	if obj == nil {
		return 0
	}
	return (*IUnknown)(obj).Release()
}
