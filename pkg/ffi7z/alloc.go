package ffi7z

/*
#include "ffi7z_static.h"
*/
import "C"

import (
	"unsafe"

	"lib7zip/pkg/propvar"
)

// NativeAllocator allocates variants and BSTRs with the C allocator so the
// plugin can free what it receives and the other way round.
type NativeAllocator struct{}

func (NativeAllocator) NewVariant() *propvar.PropVariant {
	return (*propvar.PropVariant)(unsafe.Pointer(C.FFI7Z_NewPropVariant()))
}

func (NativeAllocator) FreeVariant(v *propvar.PropVariant) {
	C.FFI7Z_DeletePropVariant((*C.PROPVARIANT)(unsafe.Pointer(v)))
}

func (NativeAllocator) AllocBSTR(data []byte) *propvar.WChar {
	var p *C.char
	if len(data) > 0 {
		p = (*C.char)(unsafe.Pointer(&data[0]))
	}
	return (*propvar.WChar)(unsafe.Pointer(C.FFI7Z_SysAllocStringByteLen(p, C.uint32_t(len(data)))))
}

func (NativeAllocator) FreeBSTR(p *propvar.WChar) {
	C.FFI7Z_SysFreeString(C.BSTR(unsafe.Pointer(p)))
}
