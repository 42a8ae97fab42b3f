// Package codegen derives the native declarations and the Go glue for the
// vtable interfaces described by an idl.Registry. Output depends only on the
// registry contents and order, so repeated runs are byte-identical.
package codegen

import (
	"fmt"
	"sort"

	"lib7zip/pkg/idl"
)

const header = "// Code generated by ffi7zgen. DO NOT EDIT.\n"

// Output file names, relative to the target package directory.
const (
	TypesHeaderFile  = "ffi7z_gen.h"
	ThunksHeaderFile = "ffi7z_thunks_gen.h"
	VtablesFile      = "ffi7z_vtables_gen.c"
	CallsHeaderFile  = "ffi7z_calls_gen.h"
	ThunksGoFile     = "thunks_gen.go"
	CallsGoFile      = "calls_gen.go"
)

// StaticHeader is the hand-written header providing the base native types.
const StaticHeader = "ffi7z_static.h"

// Options control the Go side of the output.
type Options struct {
	// Package is the Go package name of the generated files.
	Package string
	// Module is the import path prefix of the sibling packages.
	Module string
}

// DefaultOptions matches the layout of this module.
var DefaultOptions = Options{Package: "ffi7z", Module: "lib7zip"}

// Generator renders every output for one registry.
type Generator struct {
	reg  *idl.Registry
	opts Options
}

// New validates that every argument type has a mapping and returns a
// generator.
func New(reg *idl.Registry, opts Options) (*Generator, error) {
	tm := newTypeMapper(reg)
	for _, iface := range reg.All() {
		for _, m := range iface.Methods {
			for _, a := range m.Args {
				if err := tm.check(a.Type); err != nil {
					return nil, fmt.Errorf("%s.%s(%s): %w", iface.Name, m.Name, a.Name, err)
				}
			}
		}
	}
	return &Generator{reg: reg, opts: opts}, nil
}

// File is one generated output.
type File struct {
	Name    string
	Content []byte
}

// Files renders all outputs in a stable order.
func (g *Generator) Files() ([]File, error) {
	thunks, err := g.ThunksGo()
	if err != nil {
		return nil, err
	}
	calls, err := g.CallsGo()
	if err != nil {
		return nil, err
	}
	files := []File{
		{Name: TypesHeaderFile, Content: g.TypesHeader()},
		{Name: ThunksHeaderFile, Content: g.ThunksHeader()},
		{Name: VtablesFile, Content: g.VtablesSource()},
		{Name: CallsHeaderFile, Content: g.CallsHeader()},
		{Name: ThunksGoFile, Content: thunks},
		{Name: CallsGoFile, Content: calls},
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
