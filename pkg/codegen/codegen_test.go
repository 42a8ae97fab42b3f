package codegen

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lib7zip/pkg/idl"
)

func newDefault(t *testing.T) *Generator {
	t.Helper()
	g, err := New(idl.Default, DefaultOptions)
	require.NoError(t, err)
	return g
}

func TestDeterministic(t *testing.T) {
	first, err := newDefault(t).Files()
	require.NoError(t, err)
	second, err := newDefault(t).Files()
	require.NoError(t, err)
	require.Len(t, first, 6)
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.True(t, bytes.Equal(first[i].Content, second[i].Content), first[i].Name)
	}
}

var (
	literalRe = regexp.MustCompile(`(?s)static const (\w+)_vtable FFI7Z_Go(\w+)_vtable = \{\n(.*?)\};`)
	slotRe    = regexp.MustCompile(`\t\.(\w+) = FFI7Z_Go_(\w+?)_(\w+),`)
)

func TestVtableLiteralsUseDeclaringInterface(t *testing.T) {
	src := string(newDefault(t).VtablesSource())
	literals := literalRe.FindAllStringSubmatch(src, -1)
	require.Len(t, literals, idl.Default.Len())

	for i, iface := range idl.Default.All() {
		lit := literals[i]
		assert.Equal(t, "FFI7Z_"+iface.Name, lit[1])
		assert.Equal(t, iface.Name, lit[2])

		slots := slotRe.FindAllStringSubmatch(lit[3], -1)
		origins := iface.AllMethodsWithOrigin()
		require.Len(t, slots, len(origins), iface.Name)
		for j, o := range origins {
			assert.Equal(t, o.Method.Name, slots[j][1])
			assert.Equal(t, o.Interface.Name, slots[j][2], "%s slot %d", iface.Name, j)
			assert.Equal(t, o.Method.Name, slots[j][3])
		}
	}
	assert.Contains(t, src, "\tcase 15:\n\t\treturn &FFI7Z_GoIInArchive_vtable;\n")
}

func TestTypesHeader(t *testing.T) {
	src := string(newDefault(t).TypesHeader())
	assert.Contains(t, src, "HRESULT (*Open)(void *self, FFI7Z_IInStream *stream, const uint64_t *max_check_start_position, FFI7Z_IArchiveOpenCallback *open_callback);")
	assert.Contains(t, src, "HRESULT (*GetStream)(void *self, uint32_t index, FFI7Z_ISequentialOutStream **out_stream, int32_t ask_extract_mode);")
	assert.Contains(t, src, "struct FFI7Z_IInStream {\n\tconst FFI7Z_IInStream_vtable *vtable;\n};")
	assert.Contains(t, src, "struct FFI7Z_GoIInStream {\n\tconst FFI7Z_IInStream_vtable *vtable;\n\tuintptr_t self_handle;\n};")

	for _, iface := range idl.Default.All() {
		body := between(t, src, "struct "+iface.Names().VtableStruct()+" {\n", "};")
		assert.Equal(t, len(iface.AllMethods()), strings.Count(body, "(*"), iface.Name)
	}
}

func TestThunkDeclarations(t *testing.T) {
	g := newDefault(t)
	hdr := string(g.ThunksHeader())
	thunks, err := g.ThunksGo()
	require.NoError(t, err)

	want := 0
	for _, iface := range idl.Default.All() {
		want += len(iface.Methods)
		for _, m := range iface.Methods {
			name := iface.Names().Thunk(m.Name)
			assert.Contains(t, hdr, " "+name+"(void *self")
			assert.Contains(t, string(thunks), "//export "+name+"\n")
		}
	}
	assert.Equal(t, want, strings.Count(hdr, "FFI7Z_Go_"))
	assert.Equal(t, want, strings.Count(string(thunks), "//export "))
	assert.NotContains(t, hdr, "FFI7Z_Go_IInStream_Read", "inherited methods get no thunk of their own")
}

func TestThunksGo(t *testing.T) {
	src, err := newDefault(t).ThunksGo()
	require.NoError(t, err)
	s := string(src)
	assert.True(t, strings.HasPrefix(s, header))
	assert.Contains(t, s, "type IInStreamImpl interface {\n\tISequentialInStreamImpl\n\tIInStreamMethods\n}")
	assert.Contains(t, s, "\tGetPropertyInfo(index uint32, name **propvar.WChar, propId *uint32, varType *uint16) error\n")
	assert.Contains(t, s, "func FFI7Z_Go_IUnknown_AddRef(self unsafe.Pointer) (count C.uint32_t) {")
	assert.Contains(t, s, "impl, ok := lookupUnknown((*C.FFI7Z_GoIUnknown)(self).self_handle).(IUnknownMethods)")
	assert.Contains(t, s, "impl, ok := lookupSelf((*C.FFI7Z_GoIProgress)(self).self_handle).(IProgressMethods)")
	assert.Contains(t, s, "defer recoverStatus(&status, \"IArchiveExtractCallback\", \"GetStream\")")
}

func TestCallsGo(t *testing.T) {
	g := newDefault(t)
	src, err := g.CallsGo()
	require.NoError(t, err)
	s := string(src)
	assert.Contains(t, s, "type IInArchive C.FFI7Z_IInArchive\n")
	assert.Contains(t, s, "func (p *IInStream) Read(data unsafe.Pointer, size uint32, processedSize *uint32) hresult.Code {")
	assert.Contains(t, s, "func (p *IInArchive) Release() uint32 {")

	calls := string(g.CallsHeader())
	for _, iface := range idl.Default.All() {
		for _, m := range iface.AllMethods() {
			assert.Contains(t, calls, " "+iface.Names().Caller(m.Name)+"("+iface.Names().HandleStruct()+" *self")
		}
	}
}

func TestCheckedInNativeFilesAreCurrent(t *testing.T) {
	g := newDefault(t)
	dir := filepath.Join("..", "ffi7z")
	for name, content := range map[string][]byte{
		TypesHeaderFile:  g.TypesHeader(),
		ThunksHeaderFile: g.ThunksHeader(),
		VtablesFile:      g.VtablesSource(),
		CallsHeaderFile:  g.CallsHeader(),
	} {
		onDisk, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, string(content), string(onDisk), "%s is stale; run go generate ./pkg/ffi7z", name)
	}
}

func TestRejectsUnsupportedTypes(t *testing.T) {
	root := idl.NewInterface("IRoot", uuid.New(), nil,
		idl.NewMethod("QueryInterface", idl.Status, "const GUID * iid", "void ** out"),
		idl.NewMethod("AddRef", idl.Uint32),
		idl.NewMethod("Release", idl.Uint32),
	)
	tests := []struct {
		name string
		arg  string
	}{
		{"unknown base", "double ratio"},
		{"void value", "void nothing"},
		{"interface by value", "IRoot other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := idl.NewInterface("ILeaf", uuid.New(), root, idl.NewMethod("Use", idl.Status, tt.arg))
			reg, err := idl.NewRegistry(root, leaf)
			require.NoError(t, err)
			_, err = New(reg, DefaultOptions)
			assert.Error(t, err)
		})
	}
}

func TestGoName(t *testing.T) {
	tests := map[string]string{
		"out_object":               "outObject",
		"seekOrigin":               "seekOrigin",
		"max_check_start_position": "maxCheckStartPosition",
		"type":                     "type_",
		"self":                     "self_",
		"index":                    "index",
	}
	for in, want := range tests {
		assert.Equal(t, want, goName(in), in)
	}
}

func between(t *testing.T, s, start, end string) string {
	t.Helper()
	i := strings.Index(s, start)
	require.GreaterOrEqual(t, i, 0, start)
	rest := s[i+len(start):]
	j := strings.Index(rest, end)
	require.GreaterOrEqual(t, j, 0, end)
	return rest[:j]
}
