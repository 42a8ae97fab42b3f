// Package idl is the declarative description of the vtable interfaces shared
// with the 7-Zip plugin library. It holds no native or Go glue; the code
// generators and the runtime shim derive everything from it.
package idl

import (
	"fmt"

	"github.com/google/uuid"
)

// ReturnType is the native return convention of a method.
type ReturnType int

const (
	// Status methods return an HRESULT.
	Status ReturnType = iota
	// Void methods return nothing.
	Void
	// Uint32 methods return an unsigned 32-bit value (reference counts).
	Uint32
)

// CType returns the C spelling of the return type.
func (r ReturnType) CType() string {
	switch r {
	case Void:
		return "void"
	case Uint32:
		return "uint32_t"
	default:
		return "HRESULT"
	}
}

func (r ReturnType) String() string {
	return r.CType()
}

// Method is a single vtable slot.
type Method struct {
	Name   string
	Args   []Arg
	Return ReturnType
}

// NewMethod builds a method from arguments in compact notation. It panics on
// malformed declarations since those are static program text.
func NewMethod(name string, ret ReturnType, args ...string) *Method {
	m := &Method{Name: name, Return: ret}
	for _, raw := range args {
		arg, err := ParseArg(raw)
		if err != nil {
			panic(fmt.Sprintf("idl: %s: %v", name, err))
		}
		m.Args = append(m.Args, arg)
	}
	return m
}

// Interface is a vtable interface with single inheritance.
type Interface struct {
	Name    string
	ID      uuid.UUID
	Parent  *Interface
	Methods []*Method
}

// NewInterface declares an interface. parent is nil only for the root.
func NewInterface(name string, id uuid.UUID, parent *Interface, methods ...*Method) *Interface {
	return &Interface{Name: name, ID: id, Parent: parent, Methods: methods}
}

// Origin pairs a method with the interface that declares it.
type Origin struct {
	Interface *Interface
	Method    *Method
}

// AllMethodsWithOrigin returns every slot in vtable order, inherited slots
// first, each tagged with its declaring interface.
func (i *Interface) AllMethodsWithOrigin() []Origin {
	var out []Origin
	if i.Parent != nil {
		out = i.Parent.AllMethodsWithOrigin()
	}
	for _, m := range i.Methods {
		out = append(out, Origin{Interface: i, Method: m})
	}
	return out
}

// AllMethods returns every slot in vtable order.
func (i *Interface) AllMethods() []*Method {
	origins := i.AllMethodsWithOrigin()
	out := make([]*Method, len(origins))
	for n, o := range origins {
		out[n] = o.Method
	}
	return out
}

// Ancestors returns the parent chain, nearest first.
func (i *Interface) Ancestors() []*Interface {
	var out []*Interface
	for p := i.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}
	return out
}

// Extends reports whether i is other or inherits from it.
func (i *Interface) Extends(other *Interface) bool {
	for p := i; p != nil; p = p.Parent {
		if p == other {
			return true
		}
	}
	return false
}

// Names returns the derived native identifiers for the interface.
func (i *Interface) Names() Names {
	return Names{Interface: i.Name}
}

func (i *Interface) String() string {
	return i.Name
}

// Names derives the identifiers the generated native code uses for an
// interface.
type Names struct {
	Interface string
}

// VtableStruct is the vtable struct type.
func (n Names) VtableStruct() string { return "FFI7Z_" + n.Interface + "_vtable" }

// HandleStruct is the opaque handle struct: a vtable pointer only.
func (n Names) HandleStruct() string { return "FFI7Z_" + n.Interface }

// ManagedStruct is the Go-backed struct: vtable pointer plus back-reference.
func (n Names) ManagedStruct() string { return "FFI7Z_Go" + n.Interface }

// ManagedVtable is the static vtable literal wired to the Go entry points.
func (n Names) ManagedVtable() string { return "FFI7Z_Go" + n.Interface + "_vtable" }

// Thunk is the Go entry point for a method declared on this interface.
func (n Names) Thunk(method string) string { return "FFI7Z_Go_" + n.Interface + "_" + method }

// Caller is the C stub that dispatches through a native vtable slot.
func (n Names) Caller(method string) string { return "FFI7Z_Call_" + n.Interface + "_" + method }
