package ffi7z

/*
#include "ffi7z_gen.h"
*/
import "C"

import (
	"lib7zip/pkg/hresult"
	"lib7zip/pkg/logger"
)

// lookupUnknown resolves a token for root interface calls. It returns an
// untyped nil for dead tokens so the caller's type assertion fails.
func lookupUnknown(token C.uintptr_t) any {
	u := objects.get(uintptr(token))
	if u == nil {
		return nil
	}
	return u
}

// lookupSelf resolves a token to the wrapped value.
func lookupSelf(token C.uintptr_t) any {
	u := objects.get(uintptr(token))
	if u == nil {
		return nil
	}
	return u.self
}

func hr(code hresult.Code) C.HRESULT {
	return C.HRESULT(code.Int32())
}

// statusOf converts a callback result. Errors without a status code of their
// own are logged and reported as E_UNEXPECTED.
func statusOf(err error, iface, method string) C.HRESULT {
	code, ok := hresult.FromError(err)
	if !ok {
		logger.Error("Callback failed", "interface", iface, "method", method, "err", err)
	}
	return hr(code)
}

func missingStatus(iface, method string) C.HRESULT {
	logger.Error("Callback on released object", "interface", iface, "method", method)
	return hr(hresult.E_UNEXPECTED)
}

func missingCount(iface, method string) C.uint32_t {
	logger.Error("Callback on released object", "interface", iface, "method", method)
	return 0
}

func missingVoid(iface, method string) {
	logger.Error("Callback on released object", "interface", iface, "method", method)
}

// The recover helpers are deferred by every entry point; a panic must never
// unwind into native frames.

func recoverStatus(status *C.HRESULT, iface, method string) {
	if r := recover(); r != nil {
		logger.Error("Callback panicked", "interface", iface, "method", method, "panic", r)
		*status = hr(hresult.E_UNEXPECTED)
	}
}

func recoverCount(count *C.uint32_t, iface, method string) {
	if r := recover(); r != nil {
		logger.Error("Callback panicked", "interface", iface, "method", method, "panic", r)
		*count = 0
	}
}

func recoverVoid(iface, method string) {
	if r := recover(); r != nil {
		logger.Error("Callback panicked", "interface", iface, "method", method, "panic", r)
	}
}
