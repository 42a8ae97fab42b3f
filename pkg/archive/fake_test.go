package archive

import (
	"bytes"
	"errors"
	"hash/crc32"
	"os"
	"sync"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"lib7zip/pkg/ffi7z"
	"lib7zip/pkg/hresult"
	"lib7zip/pkg/idl"
	"lib7zip/pkg/propvar"
)

// The fakes below stand in for the plugin library. The handler is a Go
// object exposed through the generated vtables, so every call the archive
// layer makes, and every callback the handler makes, crosses the native
// boundary for real.

type fakeEntry struct {
	path      string
	dir       bool
	data      []byte
	password  string
	corrupt   bool
	mtime     time.Time
	noCRC     bool
	sizeAsI64 bool
}

type fakeFormat struct {
	name    string
	clsid   uuid.UUID
	ext     string
	sig     []byte
	flags   FormatFlag
	entries []fakeEntry

	// rejects makes Open answer S_FALSE even when the signature matches.
	rejects bool
	// headerPassword encrypts the headers.
	headerPassword string
	// volumes makes Open ask the volume callback for these names.
	volumes []string
	// reverse delivers items in descending index order.
	reverse bool
	// holdStreams keeps every output stream until Extract returns.
	holdStreams bool
	// codecs makes the handler accept ISetCompressCodecsInfo.
	codecs bool
}

var decoderClassID = uuid.MustParse("23170f69-40c1-278b-0000-000000000001")

// fakeAllocator is the heap allocator with a ledger of variants, so tests can
// check that every variant handed out is freed exactly once.
type fakeAllocator struct {
	*propvar.HeapAllocator

	mu       sync.Mutex
	variants map[*propvar.PropVariant]int
	acquired int
	doubles  int
}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{
		HeapAllocator: propvar.NewHeapAllocator(),
		variants:      make(map[*propvar.PropVariant]int),
	}
}

func (a *fakeAllocator) NewVariant() *propvar.PropVariant {
	v := a.HeapAllocator.NewVariant()
	a.mu.Lock()
	a.variants[v] = 0
	a.acquired++
	a.mu.Unlock()
	return v
}

func (a *fakeAllocator) FreeVariant(v *propvar.PropVariant) {
	a.mu.Lock()
	frees, ok := a.variants[v]
	if !ok || frees > 0 {
		a.doubles++
	}
	a.variants[v] = frees + 1
	a.mu.Unlock()
	a.HeapAllocator.FreeVariant(v)
}

// outstanding counts variants acquired but not yet freed.
func (a *fakeAllocator) outstanding() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, frees := range a.variants {
		if frees == 0 {
			n++
		}
	}
	return n
}

type fakeNative struct {
	alloc   *fakeAllocator
	formats []*fakeFormat

	mu           sync.Mutex
	numFormats   int
	handlers     []*fakeHandler
	unknowns     []*ffi7z.Unknown
	createErrors map[uuid.UUID]error
}

func newFakeNative(formats ...*fakeFormat) *fakeNative {
	return &fakeNative{alloc: newFakeAllocator(), formats: formats}
}

func (n *fakeNative) NumFormats() (uint32, error) {
	n.mu.Lock()
	n.numFormats++
	n.mu.Unlock()
	return uint32(len(n.formats)), nil
}

func (n *fakeNative) FormatProperty(index, propID uint32, v *propvar.PropVariant) error {
	if int(index) >= len(n.formats) {
		return hresult.E_INVALIDARG
	}
	f := n.formats[index]
	switch FormatProp(propID) {
	case FormatName:
		return v.SetString(n.alloc, f.name)
	case FormatClassID:
		return v.SetUUID(n.alloc, f.clsid)
	case FormatExtension:
		return v.SetString(n.alloc, f.ext)
	case FormatFlags:
		v.SetUint32(n.alloc, uint32(f.flags))
	case FormatSignature:
		if len(f.sig) > 0 && !f.flags.Has(FlagMultiSignature) {
			return v.SetBytes(n.alloc, f.sig)
		}
	case FormatMultiSignature:
		if f.flags.Has(FlagMultiSignature) {
			return v.SetBlobArray(n.alloc, [][]byte{f.sig, []byte("ALT")})
		}
	case FormatUpdate:
		v.SetBool(n.alloc, false)
	}
	return nil
}

func (n *fakeNative) NumMethods() (uint32, error) {
	return 1, nil
}

func (n *fakeNative) MethodProperty(index, propID uint32, v *propvar.PropVariant) error {
	if index != 0 {
		return hresult.E_INVALIDARG
	}
	switch MethodProp(propID) {
	case MethodID:
		v.SetUint64(n.alloc, 0x030101)
	case MethodName:
		return v.SetString(n.alloc, "LZMA")
	case MethodDecoder:
		return v.SetUUID(n.alloc, decoderClassID)
	case MethodDecoderIsAssigned:
		v.SetBool(n.alloc, true)
	}
	return nil
}

type fakeCoder struct{}

func (n *fakeNative) CreateObject(clsid, iid uuid.UUID) (unsafe.Pointer, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.createErrors[clsid]; err != nil {
		return nil, err
	}
	if clsid == decoderClassID {
		unk := ffi7z.NewUnknown(&fakeCoder{})
		n.unknowns = append(n.unknowns, unk)
		return unk.Handle(idl.IUnknown), nil
	}
	if iid != idl.IInArchive.ID {
		return nil, hresult.E_NOINTERFACE
	}
	for _, f := range n.formats {
		if f.clsid != clsid {
			continue
		}
		h := &fakeHandler{native: n, format: f}
		ifaces := []*idl.Interface{idl.IInArchive}
		if f.codecs {
			ifaces = append(ifaces, idl.ISetCompressCodecsInfo)
		}
		h.unk = ffi7z.NewUnknown(h, ifaces...)
		n.handlers = append(n.handlers, h)
		return h.unk.Handle(idl.IInArchive), nil
	}
	return nil, hresult.E_NOTIMPL
}

func (n *fakeNative) Allocator() propvar.Allocator {
	return n.alloc
}

func (n *fakeNative) lastHandler() *fakeHandler {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.handlers) == 0 {
		return nil
	}
	return n.handlers[len(n.handlers)-1]
}

type fakeHandler struct {
	native *fakeNative
	format *fakeFormat
	unk    *ffi7z.Unknown

	opened      bool
	closeCalls  int
	propReads   int
	subName     string
	volumeNames []string
	volumeData  map[string][]byte

	codecMethods uint32
	codecObject  unsafe.Pointer
}

func readAll(stream *ffi7z.IInStream, n int) ([]byte, hresult.Code) {
	var pos uint64
	if code := stream.Seek(0, 0, &pos); code != hresult.S_OK {
		return nil, code
	}
	buf := make([]byte, n)
	got := 0
	for got < n {
		var processed uint32
		code := stream.Read(unsafe.Pointer(&buf[got]), uint32(n-got), &processed)
		if code != hresult.S_OK {
			return nil, code
		}
		if processed == 0 {
			break
		}
		got += int(processed)
	}
	return buf[:got], hresult.S_OK
}

func (h *fakeHandler) password(obj unsafe.Pointer) (string, error) {
	p, err := ffi7z.QueryInterface(obj, idl.ICryptoGetTextPassword)
	if err != nil {
		return "", err
	}
	defer ffi7z.Release(p)
	var pw *propvar.WChar
	code := (*ffi7z.ICryptoGetTextPassword)(p).CryptoGetTextPassword(&pw)
	if code != hresult.S_OK {
		return "", code
	}
	defer h.native.alloc.FreeBSTR(pw)
	return propvar.BSTRString(pw)
}

func (h *fakeHandler) Open(stream *ffi7z.IInStream, maxCheckStartPosition *uint64, openCallback *ffi7z.IArchiveOpenCallback) error {
	if maxCheckStartPosition != nil {
		return hresult.E_INVALIDARG
	}
	head, code := readAll(stream, len(h.format.sig))
	if code != hresult.S_OK {
		return code
	}
	if h.format.rejects || !bytes.Equal(head, h.format.sig) {
		return hresult.S_FALSE
	}
	var files, size uint64 = uint64(len(h.format.entries)), 0
	if code := openCallback.SetTotal(&files, &size); code != hresult.S_OK {
		return code
	}
	if h.format.headerPassword != "" {
		pw, err := h.password(unsafe.Pointer(openCallback))
		if err != nil {
			return err
		}
		if pw != h.format.headerPassword {
			return hresult.S_FALSE
		}
	}
	if len(h.format.volumes) > 0 {
		if err := h.openVolumes(unsafe.Pointer(openCallback)); err != nil {
			return err
		}
	}
	if p, err := ffi7z.QueryInterface(unsafe.Pointer(openCallback), idl.IArchiveOpenSetSubArchiveName); err == nil {
		name, _ := propvar.EncodeWide("inner.tar\x00")
		(*ffi7z.IArchiveOpenSetSubArchiveName)(p).SetSubArchiveName((*propvar.WChar)(unsafe.Pointer(&name[0])))
		ffi7z.Release(p)
	}
	h.opened = true
	return nil
}

func (h *fakeHandler) openVolumes(cb unsafe.Pointer) error {
	p, err := ffi7z.QueryInterface(cb, idl.IArchiveOpenVolumeCallback)
	if err != nil {
		return err
	}
	defer ffi7z.Release(p)
	vol := (*ffi7z.IArchiveOpenVolumeCallback)(p)

	var v propvar.PropVariant
	if code := vol.GetProperty(uint32(PropName), &v); code != hresult.S_OK {
		return code
	}
	first, _ := v.AsString()
	v.Clear(h.native.alloc)
	h.volumeNames = append(h.volumeNames, first)
	h.volumeData = make(map[string][]byte)

	for _, name := range h.format.volumes {
		wide, _ := propvar.EncodeWide(name + "\x00")
		var in *ffi7z.IInStream
		code := vol.GetStream((*propvar.WChar)(unsafe.Pointer(&wide[0])), &in)
		if code == hresult.S_FALSE {
			continue
		}
		if code != hresult.S_OK {
			return code
		}
		data, code := readAll(in, 64)
		if code != hresult.S_OK {
			return code
		}
		in.Release()
		h.volumeData[name] = data
		if code := vol.GetProperty(uint32(PropName), &v); code != hresult.S_OK {
			return code
		}
		current, _ := v.AsString()
		v.Clear(h.native.alloc)
		h.volumeNames = append(h.volumeNames, current)
	}
	return nil
}

func (h *fakeHandler) Close() error {
	h.closeCalls++
	h.opened = false
	return nil
}

func (h *fakeHandler) GetNumberOfItems(numItems *uint32) error {
	*numItems = uint32(len(h.format.entries))
	return nil
}

func (h *fakeHandler) GetProperty(index uint32, propId uint32, value *propvar.PropVariant) error {
	if int(index) >= len(h.format.entries) {
		return hresult.E_INVALIDARG
	}
	h.propReads++
	e := h.format.entries[index]
	alloc := h.native.alloc
	switch PropID(propId) {
	case PropPath:
		return value.SetString(alloc, e.path)
	case PropIsDir:
		value.SetBool(alloc, e.dir)
	case PropSize:
		if e.sizeAsI64 {
			value.SetInt64(alloc, int64(len(e.data)))
		} else {
			value.SetUint64(alloc, uint64(len(e.data)))
		}
	case PropPackSize:
		value.SetUint64(alloc, uint64(len(e.data))/2)
	case PropCRC:
		if !e.dir && !e.noCRC {
			value.SetUint32(alloc, crc32.ChecksumIEEE(e.data))
		}
	case PropEncrypted:
		value.SetBool(alloc, e.password != "")
	case PropMTime:
		if !e.mtime.IsZero() {
			value.SetFileTime(alloc, e.mtime)
		}
	}
	return nil
}

func (h *fakeHandler) Extract(indices *uint32, numItems uint32, testMode int32, extractCallback *ffi7z.IArchiveExtractCallback) error {
	var list []uint32
	if numItems == allItems {
		for i := range h.format.entries {
			list = append(list, uint32(i))
		}
	} else if numItems > 0 {
		list = append(list, unsafe.Slice(indices, numItems)...)
	}
	if h.format.reverse {
		for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
			list[i], list[j] = list[j], list[i]
		}
	}

	var total uint64
	for _, i := range list {
		total += uint64(len(h.format.entries[i].data))
	}
	if code := extractCallback.SetTotal(total); code != hresult.S_OK {
		return code
	}

	mode := int32(AskExtract)
	if testMode != 0 {
		mode = int32(AskTest)
	}
	var held []*ffi7z.ISequentialOutStream
	defer func() {
		for _, s := range held {
			s.Release()
		}
	}()

	var completed uint64
	for _, i := range list {
		e := h.format.entries[i]
		var out *ffi7z.ISequentialOutStream
		if code := extractCallback.GetStream(i, &out, mode); code != hresult.S_OK {
			return code
		}
		if code := extractCallback.PrepareOperation(mode); code != hresult.S_OK {
			return code
		}

		result := ResultOK
		if e.password != "" {
			pw, err := h.password(unsafe.Pointer(extractCallback))
			if err != nil {
				if out != nil {
					out.Release()
				}
				return err
			}
			if pw != e.password {
				result = ResultWrongPassword
			}
		}
		if e.corrupt {
			result = ResultCRCError
		}

		if out != nil && result == ResultOK && len(e.data) > 0 {
			// Write in two chunks to exercise partial writes.
			half := len(e.data) / 2
			for _, chunk := range [][]byte{e.data[:half], e.data[half:]} {
				if len(chunk) == 0 {
					continue
				}
				var written uint32
				if code := out.Write(unsafe.Pointer(&chunk[0]), uint32(len(chunk)), &written); code != hresult.S_OK {
					out.Release()
					return code
				}
			}
		}
		if out != nil {
			if h.format.holdStreams {
				held = append(held, out)
			} else {
				out.Release()
			}
		}
		if code := extractCallback.SetOperationResult(int32(result)); code != hresult.S_OK {
			return code
		}
		completed += uint64(len(e.data))
		if code := extractCallback.SetCompleted(&completed); code != hresult.S_OK {
			return code
		}
	}
	return nil
}

func (h *fakeHandler) GetArchiveProperty(propId uint32, value *propvar.PropVariant) error {
	switch PropID(propId) {
	case PropPhySize:
		var n uint64
		for _, e := range h.format.entries {
			n += uint64(len(e.data))
		}
		value.SetUint64(h.native.alloc, n)
	case PropMethod:
		return value.SetString(h.native.alloc, "Fake")
	}
	return nil
}

var fakeItemProps = []PropertyInfo{
	{Name: "Path", ID: PropPath, Type: propvar.VT_BSTR},
	{ID: PropIsDir, Type: propvar.VT_BOOL},
	{ID: PropSize, Type: propvar.VT_UI8},
}

var fakeArchiveProps = []PropertyInfo{
	{ID: PropPhySize, Type: propvar.VT_UI8},
}

func (h *fakeHandler) GetNumberOfProperties(numProps *uint32) error {
	*numProps = uint32(len(fakeItemProps))
	return nil
}

func (h *fakeHandler) propertyInfo(list []PropertyInfo, index uint32, name **propvar.WChar, propId *uint32, varType *uint16) error {
	if int(index) >= len(list) {
		return hresult.E_INVALIDARG
	}
	p := list[index]
	*name = nil
	if p.Name != "" {
		wide, _ := propvar.EncodeWide(p.Name)
		*name = h.native.alloc.AllocBSTR(wide)
	}
	*propId = uint32(p.ID)
	*varType = uint16(p.Type)
	return nil
}

func (h *fakeHandler) GetPropertyInfo(index uint32, name **propvar.WChar, propId *uint32, varType *uint16) error {
	return h.propertyInfo(fakeItemProps, index, name, propId, varType)
}

func (h *fakeHandler) GetNumberOfArchiveProperties(numProps *uint32) error {
	*numProps = uint32(len(fakeArchiveProps))
	return nil
}

func (h *fakeHandler) GetArchivePropertyInfo(index uint32, name **propvar.WChar, propId *uint32, varType *uint16) error {
	return h.propertyInfo(fakeArchiveProps, index, name, propId, varType)
}

func (h *fakeHandler) SetCompressCodecsInfo(compressCodecsInfo *ffi7z.ICompressCodecsInfo) error {
	if code := compressCodecsInfo.GetNumMethods(&h.codecMethods); code != hresult.S_OK {
		return code
	}
	iid := ffi7z.GUIDFromUUID(idl.IUnknown.ID)
	var coder unsafe.Pointer
	if code := compressCodecsInfo.CreateDecoder(0, &iid, &coder); code != hresult.S_OK {
		return code
	}
	h.codecObject = coder
	return nil
}

// countingFs tracks how many files are open at once.
type countingFs struct {
	afero.Fs
	mu      sync.Mutex
	open    int
	maxOpen int
	created int
}

type countingFile struct {
	afero.File
	fs     *countingFs
	closed bool
}

func (c *countingFs) Create(name string) (afero.File, error) {
	f, err := c.Fs.Create(name)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.open++
	c.created++
	c.maxOpen = max(c.maxOpen, c.open)
	c.mu.Unlock()
	return &countingFile{File: f, fs: c}, nil
}

func (f *countingFile) Close() error {
	if f.closed {
		return errors.New("double close")
	}
	f.closed = true
	f.fs.mu.Lock()
	f.fs.open--
	f.fs.mu.Unlock()
	return f.File.Close()
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, os.ErrPermission
}
