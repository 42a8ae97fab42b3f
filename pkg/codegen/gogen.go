package codegen

import (
	"fmt"
	"go/format"
	"strings"

	"lib7zip/pkg/idl"
)

type goFile struct {
	b  strings.Builder
	tm *typeMapper
}

func (f *goFile) printf(format string, args ...any) {
	fmt.Fprintf(&f.b, format, args...)
}

// render prepends the package clause, cgo preamble and the imports the body
// actually used, then gofmts the result.
func (g *Generator) render(f *goFile, include string) ([]byte, error) {
	var out strings.Builder
	out.WriteString(header)
	fmt.Fprintf(&out, "\npackage %s\n\n/*\n#include %q\n*/\nimport \"C\"\n\n", g.opts.Package, include)

	var std, local []string
	if f.tm.used["unsafe"] {
		std = append(std, `"unsafe"`)
	}
	for _, pkg := range []string{"hresult", "idl", "propvar"} {
		if f.tm.used[pkg] {
			local = append(local, fmt.Sprintf("%q", g.opts.Module+"/pkg/"+pkg))
		}
	}
	if len(std)+len(local) > 0 {
		out.WriteString("import (\n")
		for _, s := range std {
			out.WriteString("\t" + s + "\n")
		}
		if len(std) > 0 && len(local) > 0 {
			out.WriteString("\n")
		}
		for _, s := range local {
			out.WriteString("\t" + s + "\n")
		}
		out.WriteString(")\n")
	}
	out.WriteString(f.b.String())

	src, err := format.Source([]byte(out.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func (tm *typeMapper) goParams(args []idl.Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = goName(a.Name) + " " + tm.goType(a.Type)
	}
	return strings.Join(parts, ", ")
}

func (tm *typeMapper) cgoParams(args []idl.Arg) string {
	parts := []string{"self unsafe.Pointer"}
	for _, a := range args {
		parts = append(parts, goName(a.Name)+" "+tm.cgoType(a.Type))
	}
	return strings.Join(parts, ", ")
}

func goResult(r idl.ReturnType) string {
	switch r {
	case idl.Void:
		return ""
	case idl.Uint32:
		return " uint32"
	default:
		return " error"
	}
}

// ThunksGo renders the managed method sets and one exported entry point per
// declared method.
func (g *Generator) ThunksGo() ([]byte, error) {
	f := &goFile{tm: newTypeMapper(g.reg)}
	f.tm.used["unsafe"] = true
	f.tm.used["idl"] = true

	for _, iface := range g.reg.All() {
		f.printf("\n// %sMethods are the methods %s declares.\n", iface.Name, iface.Name)
		if len(iface.Methods) == 0 {
			f.printf("type %sMethods interface{}\n", iface.Name)
		} else {
			f.printf("type %sMethods interface {\n", iface.Name)
			for _, m := range iface.Methods {
				f.printf("\t%s(%s)%s\n", m.Name, f.tm.goParams(m.Args), goResult(m.Return))
			}
			f.printf("}\n")
		}

		f.printf("\n// %sImpl is implemented by managed objects exposing %s.\n", iface.Name, iface.Name)
		f.printf("type %sImpl interface {\n", iface.Name)
		if p := iface.Parent; p != nil && p.Parent != nil {
			f.printf("\t%sImpl\n", p.Name)
		}
		f.printf("\t%sMethods\n}\n", iface.Name)
	}

	f.printf("\n// implementsInterface reports whether self can back iface. The root\n")
	f.printf("// interface is always served by the shim itself.\n")
	f.printf("func implementsInterface(self any, iface *idl.Interface) bool {\n\tswitch iface {\n")
	for _, iface := range g.reg.All() {
		f.printf("\tcase idl.%s:\n", iface.Name)
		if iface.Parent == nil {
			f.printf("\t\treturn true\n")
			continue
		}
		f.printf("\t\t_, ok := self.(%sImpl)\n\t\treturn ok\n", iface.Name)
	}
	f.printf("\t}\n\treturn false\n}\n")

	for _, iface := range g.reg.All() {
		for _, m := range iface.Methods {
			g.thunk(f, iface, m)
		}
	}
	return g.render(f, TypesHeaderFile)
}

func (g *Generator) thunk(f *goFile, iface *idl.Interface, m *idl.Method) {
	n := iface.Names()
	lookup := "lookupSelf"
	if iface.Parent == nil {
		lookup = "lookupUnknown"
	}
	args := make([]string, len(m.Args))
	for i, a := range m.Args {
		args[i] = f.tm.toGo(goName(a.Name), a.Type)
	}
	call := "impl." + m.Name + "(" + strings.Join(args, ", ") + ")"
	names := fmt.Sprintf("%q, %q", iface.Name, m.Name)

	f.printf("\n//export %s\n", n.Thunk(m.Name))
	switch m.Return {
	case idl.Status:
		f.printf("func %s(%s) (status C.HRESULT) {\n", n.Thunk(m.Name), f.tm.cgoParams(m.Args))
		f.printf("\tdefer recoverStatus(&status, %s)\n", names)
	case idl.Uint32:
		f.printf("func %s(%s) (count C.uint32_t) {\n", n.Thunk(m.Name), f.tm.cgoParams(m.Args))
		f.printf("\tdefer recoverCount(&count, %s)\n", names)
	default:
		f.printf("func %s(%s) {\n", n.Thunk(m.Name), f.tm.cgoParams(m.Args))
		f.printf("\tdefer recoverVoid(%s)\n", names)
	}
	f.printf("\timpl, ok := %s((*C.%s)(self).self_handle).(%sMethods)\n", lookup, n.ManagedStruct(), iface.Name)
	f.printf("\tif !ok {\n")
	switch m.Return {
	case idl.Status:
		f.printf("\t\treturn missingStatus(%s)\n\t}\n", names)
		f.printf("\treturn statusOf(%s, %s)\n", call, names)
	case idl.Uint32:
		f.printf("\t\treturn missingCount(%s)\n\t}\n", names)
		f.printf("\treturn C.uint32_t(%s)\n", call)
	default:
		f.printf("\t\tmissingVoid(%s)\n\t\treturn\n\t}\n", names)
		f.printf("\t%s\n", call)
	}
	f.printf("}\n")
}

// CallsGo renders the Go handle types with one method per vtable slot.
func (g *Generator) CallsGo() ([]byte, error) {
	f := &goFile{tm: newTypeMapper(g.reg)}
	f.tm.used["unsafe"] = true

	for _, iface := range g.reg.All() {
		n := iface.Names()
		f.printf("\n// %s is a native %s object.\n", iface.Name, iface.Name)
		f.printf("type %s C.%s\n", iface.Name, n.HandleStruct())
		for _, m := range iface.AllMethods() {
			args := []string{fmt.Sprintf("(*C.%s)(unsafe.Pointer(p))", n.HandleStruct())}
			for _, a := range m.Args {
				args = append(args, f.tm.toC(goName(a.Name), a.Type))
			}
			call := "C." + n.Caller(m.Name) + "(" + strings.Join(args, ", ") + ")"

			f.printf("\nfunc (p *%s) %s(%s)", iface.Name, m.Name, f.tm.goParams(m.Args))
			switch m.Return {
			case idl.Status:
				f.tm.used["hresult"] = true
				f.printf(" hresult.Code {\n\treturn hresult.FromInt32(int32(%s))\n}\n", call)
			case idl.Uint32:
				f.printf(" uint32 {\n\treturn uint32(%s)\n}\n", call)
			default:
				f.printf(" {\n\t%s\n}\n", call)
			}
		}
	}
	return g.render(f, CallsHeaderFile)
}
