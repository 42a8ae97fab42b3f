package codegen

import (
	"fmt"
	"strings"

	"lib7zip/pkg/idl"
)

// builtin maps a C base type onto its cgo spelling and the Go type handed to
// managed implementations.
type builtin struct {
	cgo    string
	goType string
	pkg    string
}

var builtins = map[string]builtin{
	"int8_t":      {cgo: "C.int8_t", goType: "int8"},
	"uint8_t":     {cgo: "C.uint8_t", goType: "uint8"},
	"int16_t":     {cgo: "C.int16_t", goType: "int16"},
	"uint16_t":    {cgo: "C.uint16_t", goType: "uint16"},
	"int32_t":     {cgo: "C.int32_t", goType: "int32"},
	"uint32_t":    {cgo: "C.uint32_t", goType: "uint32"},
	"int64_t":     {cgo: "C.int64_t", goType: "int64"},
	"uint64_t":    {cgo: "C.uint64_t", goType: "uint64"},
	"PROPID":      {cgo: "C.PROPID", goType: "uint32"},
	"VARTYPE":     {cgo: "C.VARTYPE", goType: "uint16"},
	"GUID":        {cgo: "C.GUID", goType: "GUID"},
	"PROPVARIANT": {cgo: "C.PROPVARIANT", goType: "propvar.PropVariant", pkg: "propvar"},
	"wchar_t":     {cgo: "C.wchar_t", goType: "propvar.WChar", pkg: "propvar"},
}

// goReserved are identifiers an argument may not shadow inside generated
// bodies.
var goReserved = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
	"self": true, "impl": true, "ok": true, "status": true, "count": true,
	"p": true, "unsafe": true, "propvar": true, "hresult": true, "idl": true,
}

// typeMapper resolves argument types against a registry.
type typeMapper struct {
	reg  *idl.Registry
	used map[string]bool
}

func newTypeMapper(reg *idl.Registry) *typeMapper {
	return &typeMapper{reg: reg, used: map[string]bool{}}
}

// check reports types the generators have no mapping for.
func (m *typeMapper) check(t idl.TypeDecl) error {
	base := t.Base()
	if base == "void" {
		if t.Depth() == 0 {
			return fmt.Errorf("void argument")
		}
		return nil
	}
	if _, ok := builtins[base]; ok {
		return nil
	}
	if m.reg.IsInterfaceType(t) {
		if t.Depth() == 0 {
			return fmt.Errorf("interface %s passed by value", base)
		}
		return nil
	}
	return fmt.Errorf("unsupported type %q", t.String())
}

// cMangle rewrites interface names to their opaque handle struct.
func (m *typeMapper) cMangle(t idl.TypeDecl) idl.TypeDecl {
	return t.Mangle(func(tok string) string {
		if iface, ok := m.reg.ByName(tok); ok {
			return iface.Names().HandleStruct()
		}
		return ""
	})
}

// cParam renders a C parameter with the stars bound to the name.
func (m *typeMapper) cParam(arg idl.Arg) string {
	t := m.cMangle(arg.Type)
	var words []string
	for _, tok := range t.Tokens {
		if tok != "*" {
			words = append(words, tok)
		}
	}
	return strings.Join(words, " ") + " " + strings.Repeat("*", t.Depth()) + arg.Name
}

// cParams renders the full C parameter list including the receiver.
func (m *typeMapper) cParams(self string, args []idl.Arg) string {
	parts := []string{self}
	for _, a := range args {
		parts = append(parts, m.cParam(a))
	}
	return strings.Join(parts, ", ")
}

func (m *typeMapper) baseGo(base string) string {
	if b, ok := builtins[base]; ok {
		if b.pkg != "" {
			m.used[b.pkg] = true
		}
		return b.goType
	}
	return base
}

func (m *typeMapper) baseCgo(base string) string {
	if b, ok := builtins[base]; ok {
		return b.cgo
	}
	if iface, ok := m.reg.ByName(base); ok {
		return "C." + iface.Names().HandleStruct()
	}
	return "C." + base
}

// goType is the type managed code sees.
func (m *typeMapper) goType(t idl.TypeDecl) string {
	if t.Base() == "void" {
		m.used["unsafe"] = true
		return strings.Repeat("*", t.Depth()-1) + "unsafe.Pointer"
	}
	return strings.Repeat("*", t.Depth()) + m.baseGo(t.Base())
}

// cgoType is the type of the same value on the cgo side.
func (m *typeMapper) cgoType(t idl.TypeDecl) string {
	if t.Base() == "void" {
		m.used["unsafe"] = true
		return strings.Repeat("*", t.Depth()-1) + "unsafe.Pointer"
	}
	return strings.Repeat("*", t.Depth()) + m.baseCgo(t.Base())
}

// toGo converts a cgo value into its managed type.
func (m *typeMapper) toGo(expr string, t idl.TypeDecl) string {
	switch {
	case t.Base() == "void":
		return expr
	case t.Depth() == 0:
		return m.goType(t) + "(" + expr + ")"
	default:
		m.used["unsafe"] = true
		return "(" + m.goType(t) + ")(unsafe.Pointer(" + expr + "))"
	}
}

// toC converts a managed value into its cgo type.
func (m *typeMapper) toC(expr string, t idl.TypeDecl) string {
	switch {
	case t.Base() == "void":
		return expr
	case t.Depth() == 0:
		return m.cgoType(t) + "(" + expr + ")"
	default:
		m.used["unsafe"] = true
		return "(" + m.cgoType(t) + ")(unsafe.Pointer(" + expr + "))"
	}
}

// goName turns a C argument name into a Go parameter name.
func goName(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	out := b.String()
	if goReserved[out] {
		out += "_"
	}
	return out
}
