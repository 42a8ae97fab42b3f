package codegen

import (
	"fmt"
	"strings"

	"lib7zip/pkg/idl"
)

func guard(name string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_").Replace(name))
}

func openHeader(b *strings.Builder, file string, includes ...string) {
	b.WriteString(header)
	fmt.Fprintf(b, "\n#ifndef %s\n#define %s\n\n", guard(file), guard(file))
	for _, inc := range includes {
		fmt.Fprintf(b, "#include %q\n", inc)
	}
}

func closeHeader(b *strings.Builder) {
	b.WriteString("\n#endif\n")
}

// TypesHeader declares the vtable, handle and managed-backed structs of every
// interface plus the vtable lookup used by the runtime shim.
func (g *Generator) TypesHeader() []byte {
	tm := newTypeMapper(g.reg)
	var b strings.Builder
	openHeader(&b, TypesHeaderFile, StaticHeader)

	b.WriteString("\n")
	for _, iface := range g.reg.All() {
		n := iface.Names()
		fmt.Fprintf(&b, "typedef struct %s %s;\n", n.VtableStruct(), n.VtableStruct())
		fmt.Fprintf(&b, "typedef struct %s %s;\n", n.HandleStruct(), n.HandleStruct())
		fmt.Fprintf(&b, "typedef struct %s %s;\n", n.ManagedStruct(), n.ManagedStruct())
	}

	for _, iface := range g.reg.All() {
		n := iface.Names()
		fmt.Fprintf(&b, "\nstruct %s {\n", n.VtableStruct())
		for _, m := range iface.AllMethods() {
			fmt.Fprintf(&b, "\t%s (*%s)(%s);\n", m.Return.CType(), m.Name, tm.cParams("void *self", m.Args))
		}
		b.WriteString("};\n")

		fmt.Fprintf(&b, "\nstruct %s {\n", n.HandleStruct())
		fmt.Fprintf(&b, "\tconst %s *vtable;\n", n.VtableStruct())
		b.WriteString("};\n")

		fmt.Fprintf(&b, "\nstruct %s {\n", n.ManagedStruct())
		fmt.Fprintf(&b, "\tconst %s *vtable;\n", n.VtableStruct())
		b.WriteString("\tuintptr_t self_handle;\n")
		b.WriteString("};\n")
	}

	b.WriteString("\nconst void *FFI7Z_GoVtable(uint32_t index);\n")
	closeHeader(&b)
	return []byte(b.String())
}

// ThunksHeader declares one Go entry point per declared method. Only the
// vtable source includes it; the cgo export header declares the same symbols
// without const qualifiers.
func (g *Generator) ThunksHeader() []byte {
	tm := newTypeMapper(g.reg)
	var b strings.Builder
	openHeader(&b, ThunksHeaderFile, TypesHeaderFile)
	for _, iface := range g.reg.All() {
		if len(iface.Methods) == 0 {
			continue
		}
		b.WriteString("\n")
		n := iface.Names()
		for _, m := range iface.Methods {
			fmt.Fprintf(&b, "%s %s(%s);\n", m.Return.CType(), n.Thunk(m.Name), tm.cParams("void *self", m.Args))
		}
	}
	closeHeader(&b)
	return []byte(b.String())
}

// VtablesSource defines the static vtable literals. Every slot points at the
// entry point of the interface that declares the method, so inherited slots
// share one entry point.
func (g *Generator) VtablesSource() []byte {
	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "\n#include %q\n", ThunksHeaderFile)
	for _, iface := range g.reg.All() {
		n := iface.Names()
		fmt.Fprintf(&b, "\nstatic const %s %s = {\n", n.VtableStruct(), n.ManagedVtable())
		for _, o := range iface.AllMethodsWithOrigin() {
			fmt.Fprintf(&b, "\t.%s = %s,\n", o.Method.Name, o.Interface.Names().Thunk(o.Method.Name))
		}
		b.WriteString("};\n")
	}

	b.WriteString("\nconst void *FFI7Z_GoVtable(uint32_t index)\n{\n\tswitch (index) {\n")
	for i, iface := range g.reg.All() {
		fmt.Fprintf(&b, "\tcase %d:\n\t\treturn &%s;\n", i, iface.Names().ManagedVtable())
	}
	b.WriteString("\t}\n\treturn NULL;\n}\n")
	return []byte(b.String())
}

// CallsHeader defines static inline stubs that dispatch through a native
// vtable slot, since Go cannot call C function pointers.
func (g *Generator) CallsHeader() []byte {
	tm := newTypeMapper(g.reg)
	var b strings.Builder
	openHeader(&b, CallsHeaderFile, TypesHeaderFile)
	for _, iface := range g.reg.All() {
		n := iface.Names()
		for _, m := range iface.AllMethods() {
			self := n.HandleStruct() + " *self"
			fmt.Fprintf(&b, "\nstatic inline %s %s(%s)\n{\n", m.Return.CType(), n.Caller(m.Name), tm.cParams(self, m.Args))
			call := "self->vtable->" + m.Name + "(" + callArgs(m) + ")"
			if m.Return == idl.Void {
				fmt.Fprintf(&b, "\t%s;\n", call)
			} else {
				fmt.Fprintf(&b, "\treturn %s;\n", call)
			}
			b.WriteString("}\n")
		}
	}
	closeHeader(&b)
	return []byte(b.String())
}

func callArgs(m *idl.Method) string {
	parts := []string{"self"}
	for _, a := range m.Args {
		parts = append(parts, a.Name)
	}
	return strings.Join(parts, ", ")
}
