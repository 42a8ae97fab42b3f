package ffi7z

/*
#include <stdlib.h>
#include "ffi7z_gen.h"
*/
import "C"

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"

	"lib7zip/pkg/hresult"
	"lib7zip/pkg/idl"
	"lib7zip/pkg/logger"
)

// Unknown lets a Go value pose as a native object. It owns one
// managed-backed struct per exposed interface, all carrying the same
// back-reference token, and answers the IUnknown methods itself.
//
// The reference count only tracks what native code claims to hold; memory is
// reclaimed by the Go collector once the Unknown is unreachable, so callers
// keep it alive for as long as native code may call it.
type Unknown struct {
	self      any
	token     uintptr
	refs      atomic.Int64
	instances map[*idl.Interface]unsafe.Pointer
	ifaces    []*idl.Interface
}

type instanceSet struct {
	token uintptr
	ptrs  []unsafe.Pointer
}

// NewUnknown exposes self as IUnknown and every interface in supported.
// Ancestors of a supported interface are reachable through its vtable prefix
// but are not answered by QueryInterface. It panics if self lacks the
// methods of an interface it claims.
func NewUnknown(self any, supported ...*idl.Interface) *Unknown {
	u := &Unknown{
		self:      self,
		instances: make(map[*idl.Interface]unsafe.Pointer),
	}
	u.refs.Store(1)

	want := map[*idl.Interface]bool{idl.IUnknown: true}
	for _, iface := range supported {
		want[iface] = true
	}
	for _, iface := range idl.Default.All() {
		if !want[iface] {
			continue
		}
		delete(want, iface)
		if !implementsInterface(self, iface) {
			panic(fmt.Sprintf("ffi7z: %T does not implement %s", self, iface.Name))
		}
		u.ifaces = append(u.ifaces, iface)
	}
	for iface := range want {
		panic(fmt.Sprintf("ffi7z: interface %s is not registered", iface.Name))
	}

	u.token = objects.add(u)
	set := instanceSet{token: u.token}
	for _, iface := range u.ifaces {
		obj := (*C.FFI7Z_GoIUnknown)(C.calloc(1, C.sizeof_FFI7Z_GoIUnknown))
		obj.vtable = (*C.FFI7Z_IUnknown_vtable)(C.FFI7Z_GoVtable(C.uint32_t(idl.Default.IndexOf(iface))))
		obj.self_handle = C.uintptr_t(u.token)
		u.instances[iface] = unsafe.Pointer(obj)
		set.ptrs = append(set.ptrs, unsafe.Pointer(obj))
	}
	runtime.AddCleanup(u, releaseInstances, set)
	return u
}

func releaseInstances(set instanceSet) {
	objects.remove(set.token)
	for _, p := range set.ptrs {
		C.free(p)
	}
}

// Self returns the wrapped value.
func (u *Unknown) Self() any {
	return u.self
}

// Refs returns the native reference count.
func (u *Unknown) Refs() uint32 {
	return uint32(u.refs.Load())
}

// Interfaces returns the exposed interfaces in registry order.
func (u *Unknown) Interfaces() []*idl.Interface {
	out := make([]*idl.Interface, len(u.ifaces))
	copy(out, u.ifaces)
	return out
}

// Supports reports whether iface is exposed.
func (u *Unknown) Supports(iface *idl.Interface) bool {
	_, ok := u.instances[iface]
	return ok
}

// Handle returns the native pointer for iface, or nil if it is not exposed.
// It does not touch the reference count.
func (u *Unknown) Handle(iface *idl.Interface) unsafe.Pointer {
	return u.instances[iface]
}

// QueryInterface hands out the handle for a supported interface and counts
// the new reference.
func (u *Unknown) QueryInterface(iid *GUID, outObject *unsafe.Pointer) error {
	if outObject == nil {
		return hresult.E_POINTER
	}
	*outObject = nil
	if iid == nil {
		return hresult.E_INVALIDARG
	}
	iface, ok := idl.Default.ByID(iid.UUID())
	if !ok {
		logger.Debug("QueryInterface for unknown interface", "iid", iid.String(), "object", fmt.Sprintf("%T", u.self))
		return hresult.E_NOINTERFACE
	}
	p, ok := u.instances[iface]
	if !ok {
		return hresult.E_NOINTERFACE
	}
	u.refs.Add(1)
	*outObject = p
	return nil
}

// AddRef increments the native reference count.
func (u *Unknown) AddRef() uint32 {
	return uint32(u.refs.Add(1))
}

// Release decrements the native reference count. Nothing is freed here.
func (u *Unknown) Release() uint32 {
	n := u.refs.Add(-1)
	if n < 0 {
		logger.Warn("Release below zero", "object", fmt.Sprintf("%T", u.self))
		u.refs.Store(0)
		return 0
	}
	return uint32(n)
}
