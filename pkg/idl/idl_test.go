package idl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArg(t *testing.T) {
	tests := []struct {
		raw   string
		base  string
		depth int
		cnst  bool
		name  string
		str   string
	}{
		{"uint32_t size", "uint32_t", 0, false, "size", "uint32_t size"},
		{"const uint64_t * complete_value", "uint64_t", 1, true, "complete_value", "const uint64_t * complete_value"},
		{"void ** out_object", "void", 2, false, "out_object", "void ** out_object"},
		{"IInStream*stream", "IInStream", 1, false, "stream", "IInStream * stream"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			arg, err := ParseArg(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.base, arg.Type.Base())
			assert.Equal(t, tt.depth, arg.Type.Depth())
			assert.Equal(t, tt.cnst, arg.Type.Const())
			assert.Equal(t, tt.name, arg.Name)
			assert.Equal(t, tt.str, arg.String())
		})
	}
}

func TestParseArgErrors(t *testing.T) {
	for _, raw := range []string{
		"size",
		"uint32_t *",
		"* uint32_t size",
		"uint32_t * const p",
		"unsigned int x",
		"uint32_t[4] x",
	} {
		_, err := ParseArg(raw)
		assert.Error(t, err, raw)
	}
}

func TestMangle(t *testing.T) {
	typ, err := ParseType("IInStream **")
	require.NoError(t, err)
	mangled := typ.Mangle(func(tok string) string {
		if tok == "IInStream" {
			return "FFI7Z_IInStream"
		}
		return ""
	})
	assert.Equal(t, "FFI7Z_IInStream **", mangled.String())
	assert.Equal(t, "IInStream **", typ.String())
}

func TestAllMethodsLength(t *testing.T) {
	for _, iface := range Default.All() {
		want := len(iface.Methods)
		if iface.Parent != nil {
			want += len(iface.Parent.AllMethods())
		}
		assert.Len(t, iface.AllMethods(), want, iface.Name)
	}
}

func TestAllMethodsWithOrigin(t *testing.T) {
	origins := IArchiveExtractCallback.AllMethodsWithOrigin()
	require.Len(t, origins, 8)

	want := []struct {
		iface  *Interface
		method string
	}{
		{IUnknown, "QueryInterface"},
		{IUnknown, "AddRef"},
		{IUnknown, "Release"},
		{IProgress, "SetTotal"},
		{IProgress, "SetCompleted"},
		{IArchiveExtractCallback, "GetStream"},
		{IArchiveExtractCallback, "PrepareOperation"},
		{IArchiveExtractCallback, "SetOperationResult"},
	}
	for i, w := range want {
		assert.Same(t, w.iface, origins[i].Interface)
		assert.Equal(t, w.method, origins[i].Method.Name)
	}
}

func TestAncestorsAndExtends(t *testing.T) {
	assert.Equal(t, []*Interface{ISequentialInStream, IUnknown}, IInStream.Ancestors())
	assert.True(t, IInStream.Extends(IUnknown))
	assert.True(t, IInStream.Extends(IInStream))
	assert.False(t, IInStream.Extends(IOutStream))
	assert.Empty(t, IUnknown.Ancestors())
}

func TestNames(t *testing.T) {
	n := IInArchive.Names()
	assert.Equal(t, "FFI7Z_IInArchive_vtable", n.VtableStruct())
	assert.Equal(t, "FFI7Z_IInArchive", n.HandleStruct())
	assert.Equal(t, "FFI7Z_GoIInArchive", n.ManagedStruct())
	assert.Equal(t, "FFI7Z_GoIInArchive_vtable", n.ManagedVtable())
	assert.Equal(t, "FFI7Z_Go_IInArchive_Open", n.Thunk("Open"))
	assert.Equal(t, "FFI7Z_Call_IInArchive_Open", n.Caller("Open"))
}

func TestSevenZipIID(t *testing.T) {
	assert.Equal(t, "23170f69-40c1-278a-0000-000600600000", SevenZipIID(0x06, 0x60).String())
	assert.Equal(t, "23170f69-40c1-278a-0000-000300010000", ISequentialInStream.ID.String())
}

func TestDefaultRegistry(t *testing.T) {
	all := Default.All()
	require.Len(t, all, 16)
	assert.Same(t, IUnknown, all[0])
	assert.Equal(t, 0, Default.IndexOf(IUnknown))
	assert.Equal(t, 15, Default.IndexOf(IInArchive))

	got, ok := Default.ByName("IOutStream")
	require.True(t, ok)
	assert.Same(t, IOutStream, got)

	got, ok = Default.ByID(SevenZipIID(0x05, 0x10))
	require.True(t, ok)
	assert.Same(t, ICryptoGetTextPassword, got)

	_, ok = Default.ByID(uuid.New())
	assert.False(t, ok)

	foreign := NewInterface("IForeign", uuid.New(), IUnknown)
	assert.Equal(t, -1, Default.IndexOf(foreign))
}

func TestNewRegistryValidation(t *testing.T) {
	root := NewInterface("IRoot", uuid.New(), nil,
		NewMethod("QueryInterface", Status, "const GUID * iid", "void ** out"),
		NewMethod("AddRef", Uint32),
		NewMethod("Release", Uint32),
	)
	child := NewInterface("IChild", uuid.New(), root,
		NewMethod("Use", Status, "IOther * other"),
	)
	other := NewInterface("IOther", uuid.New(), root)
	dupID := NewInterface("IDup", root.ID, root)
	badRoot := NewInterface("IBadRoot", uuid.New(), nil, NewMethod("Only", Void))

	tests := []struct {
		name   string
		ifaces []*Interface
		ok     bool
	}{
		{"valid", []*Interface{root, other, child}, true},
		{"forward reference", []*Interface{root, child, other}, false},
		{"parent after child", []*Interface{other, root}, false},
		{"duplicate name", []*Interface{root, other, other}, false},
		{"duplicate id", []*Interface{root, dupID}, false},
		{"bad root", []*Interface{badRoot}, false},
		{"second root", []*Interface{root, badRoot}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.ifaces...)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewMethodPanicsOnBadArgument(t *testing.T) {
	assert.Panics(t, func() { NewMethod("Broken", Status, "uint32_t") })
}
