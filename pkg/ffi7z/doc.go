// Package ffi7z is the cgo side of the 7-Zip plugin interop layer. It loads
// the plugin library, calls native objects through their vtables and lets Go
// values pose as native objects through Unknown.
//
// The *_gen files are produced by cmd/ffi7zgen from the interface model in
// pkg/idl and must not be edited by hand. The target ABI is 7-Zip 23 or newer
// built for unix, whose IUnknown has no virtual destructor.
package ffi7z

//go:generate go run ../../cmd/ffi7zgen -o .
