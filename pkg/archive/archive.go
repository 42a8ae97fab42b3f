// Package archive opens and extracts archives through the 7-Zip plugin
// library. The native handler does the decoding; this package supplies the
// streams and callbacks it asks for and turns its results into Go values and
// errors.
//
// An Archive is not safe for concurrent use. Callbacks run on the goroutine
// that issued the native call.
package archive

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"

	"lib7zip/pkg/ffi7z"
	"lib7zip/pkg/hresult"
	"lib7zip/pkg/idl"
	"lib7zip/pkg/logger"
	"lib7zip/pkg/propvar"
)

// DefaultCacheSize is the number of item properties kept per archive.
const DefaultCacheSize = 4096

// allItems asks the handler for every item.
const allItems = 0xFFFFFFFF

type state int

const (
	stateUnopened state = iota
	stateProbing
	stateOpened
	stateClosed
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateUnopened:
		return "unopened"
	case stateProbing:
		return "probing"
	case stateOpened:
		return "opened"
	case stateClosed:
		return "closed"
	case stateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// OpenOptions tune how an archive is opened.
type OpenOptions struct {
	// Name is matched against format extensions. OpenFile fills it in.
	Name string
	// Format skips probing and opens with the named format only.
	Format   string
	Password string
	// ShareCodecs hands the library's codec list to handlers that accept it.
	ShareCodecs bool
	// CacheSize bounds the item property cache. Zero means DefaultCacheSize.
	CacheSize int
	// Fs serves OpenFile and the sibling volumes of multi-volume sets.
	// Defaults to the OS filesystem.
	Fs afero.Fs
}

// ExtractOptions tune an extraction.
type ExtractOptions struct {
	// Password overrides the one given at open time.
	Password string
	// Fs receives directory extractions. Defaults to the OS filesystem.
	Fs afero.Fs
	// StripComponents drops that many leading path elements of every item.
	StripComponents int
	// Progress receives byte counts as the handler reports them.
	Progress func(completed, total uint64)
}

// PropertyInfo describes a property a handler can report.
type PropertyInfo struct {
	Name string
	ID   PropID
	Type propvar.VarType
}

type propKey struct {
	index int
	id    PropID
}

// Archive is an opened archive.
type Archive struct {
	reg      *Registry
	alloc    propvar.Allocator
	format   Format
	name     string
	password string
	state    state

	handle  *ffi7z.IInArchive
	stream  *ffi7z.Unknown
	openCB  *openCallback
	openUnk *ffi7z.Unknown
	codecs  *ffi7z.Unknown
	closer  io.Closer

	numItems      int
	counted       bool
	items         map[int]*Item
	pathIndex     map[string]int
	props         *lru.Cache[propKey, any]
	itemSchema    []PropertyInfo
	archiveSchema []PropertyInfo
}

// Open tries r against the candidate formats and returns the archive opened
// by the first handler that accepts it. r must stay usable until the archive
// is closed.
func (r *Registry) Open(rs io.ReadSeeker, opts OpenOptions) (*Archive, error) {
	return r.open(rs, opts, nil, "")
}

// OpenFile opens the archive at path. Sibling volumes are looked up next to
// it.
func (r *Registry) OpenFile(path string, opts OpenOptions) (*Archive, error) {
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	if opts.Name == "" {
		opts.Name = path
	}
	a, err := r.open(f, opts, fsys, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	a.closer = f
	return a, nil
}

func (r *Registry) candidates(rs io.ReadSeeker, opts OpenOptions) ([]Format, error) {
	if opts.Format != "" {
		f, err := r.Format(opts.Format)
		if err != nil {
			return nil, err
		}
		return []Format{f}, nil
	}
	n, err := r.MaxSignatureSize()
	if err != nil {
		return nil, err
	}
	head := make([]byte, n)
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	k, err := io.ReadFull(rs, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read signature: %w", err)
	}
	return r.Candidates(opts.Name, head[:k])
}

func (r *Registry) open(rs io.ReadSeeker, opts OpenOptions, fsys afero.Fs, path string) (*Archive, error) {
	candidates, err := r.candidates(rs, opts)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFormat, opts.Name)
	}

	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	props, err := lru.New[propKey, any](size)
	if err != nil {
		return nil, err
	}

	alloc := r.native.Allocator()
	a := &Archive{
		reg:      r,
		alloc:    alloc,
		name:     filepath.Base(opts.Name),
		password: opts.Password,
		state:    stateProbing,
		stream:   newInStream(rs),
		items:    make(map[int]*Item),
		props:    props,
	}
	a.openCB, a.openUnk = newOpenCallback(alloc, opts.Password, fsys, path)
	if opts.ShareCodecs {
		a.codecs = newCodecsInfo(r)
	}

	var errs []error
	for _, f := range candidates {
		logger.Debug("Trying format", "name", opts.Name, "format", f.Name)
		handle, err := a.tryOpen(rs, f)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
			continue
		}
		a.handle = handle
		a.format = f
		a.state = stateOpened
		logger.Debug("Opened archive", "name", opts.Name, "format", f.Name)
		return a, nil
	}

	a.state = stateFailed
	a.openCB.close()
	if a.openCB.passwordAsked && opts.Password == "" {
		return nil, ErrPasswordRequired
	}
	return nil, fmt.Errorf("%w: %s: %w", ErrNoFormat, opts.Name, errors.Join(errs...))
}

// tryOpen hands the stream to one handler. A handler that rejects it is
// released before returning.
func (a *Archive) tryOpen(rs io.ReadSeeker, f Format) (*ffi7z.IInArchive, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	obj, err := a.reg.native.CreateObject(f.ClassID, idl.IInArchive.ID)
	if err != nil {
		return nil, err
	}
	if a.codecs != nil {
		if err := shareCodecs(obj, a.codecs); err != nil {
			logger.Warn("Failed to share codecs", "format", f.Name, "err", err)
		}
	}
	handle := (*ffi7z.IInArchive)(obj)
	stream := (*ffi7z.IInStream)(a.stream.Handle(idl.IInStream))
	callback := (*ffi7z.IArchiveOpenCallback)(a.openUnk.Handle(idl.IArchiveOpenCallback))
	code := handle.Open(stream, nil, callback)
	if code != hresult.S_OK {
		handle.Release()
		if code == hresult.S_FALSE {
			return nil, errors.New("not an archive of this format")
		}
		return nil, hresult.Check("Open", code)
	}
	return handle, nil
}

func (a *Archive) check() error {
	if a.state != stateOpened {
		return ErrClosed
	}
	return nil
}

// Format returns the format that opened the archive.
func (a *Archive) Format() Format {
	return a.format
}

// Name returns the base name the archive was opened under.
func (a *Archive) Name() string {
	return a.name
}

// SubArchiveName is the name the handler reported for a nested archive, if
// any.
func (a *Archive) SubArchiveName() string {
	return a.openCB.subArchiveName
}

// Len returns the number of items.
func (a *Archive) Len() (int, error) {
	if err := a.check(); err != nil {
		return 0, err
	}
	if !a.counted {
		var n uint32
		if err := hresult.Check("GetNumberOfItems", a.handle.GetNumberOfItems(&n)); err != nil {
			return 0, err
		}
		a.numItems = int(n)
		a.counted = true
	}
	return a.numItems, nil
}

// Item returns the item at index.
func (a *Archive) Item(index int) (*Item, error) {
	n, err := a.Len()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= n {
		return nil, fmt.Errorf("%w: index %d of %d", ErrItemNotFound, index, n)
	}
	if it, ok := a.items[index]; ok {
		return it, nil
	}
	it := &Item{archive: a, index: index}
	a.items[index] = it
	return it, nil
}

// Items returns every item in index order.
func (a *Archive) Items() ([]*Item, error) {
	n, err := a.Len()
	if err != nil {
		return nil, err
	}
	out := make([]*Item, 0, n)
	for i := 0; i < n; i++ {
		it, err := a.Item(i)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

// ItemByPath finds an item by its path inside the archive. The first lookup
// reads every path; later lookups use the resulting map.
func (a *Archive) ItemByPath(path string) (*Item, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if a.pathIndex == nil {
		items, err := a.Items()
		if err != nil {
			return nil, err
		}
		index := make(map[string]int, len(items))
		for _, it := range items {
			p, err := it.Path()
			if err != nil {
				return nil, err
			}
			if _, dup := index[p]; !dup {
				index[p] = it.index
			}
		}
		a.pathIndex = index
	}
	i, ok := a.pathIndex[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, path)
	}
	return a.Item(i)
}

func (a *Archive) readItemProp(index, propID uint32, v *propvar.PropVariant) error {
	return hresult.Check("GetProperty", a.handle.GetProperty(index, propID, v))
}

func (a *Archive) readArchiveProp(_, propID uint32, v *propvar.PropVariant) error {
	return hresult.Check("GetArchiveProperty", a.handle.GetArchiveProperty(propID, v))
}

// itemProperty reads a decoded item property through the cache.
func (a *Archive) itemProperty(index int, id PropID) (any, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	key := propKey{index: index, id: id}
	if v, ok := a.props.Get(key); ok {
		return v, nil
	}
	v, err := readProp(a.alloc, a.readItemProp, uint32(index), uint32(id), (*propvar.PropVariant).Value)
	if err != nil {
		return nil, fmt.Errorf("item %d property %s: %w", index, id, err)
	}
	a.props.Add(key, v)
	return v, nil
}

// PropertyByID reads an archive-level property. Absent properties read as
// nil.
func (a *Archive) PropertyByID(id PropID) (any, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	v, err := readProp(a.alloc, a.readArchiveProp, 0, uint32(id), (*propvar.PropVariant).Value)
	if err != nil {
		return nil, fmt.Errorf("archive property %s: %w", id, err)
	}
	return v, nil
}

// Property reads an archive-level property by name, e.g. "phy_size".
func (a *Archive) Property(name string) (any, error) {
	id, ok := PropIDByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	return a.PropertyByID(id)
}

type infoFuncs struct {
	count func(*uint32) hresult.Code
	info  func(uint32, **propvar.WChar, *uint32, *uint16) hresult.Code
}

func (a *Archive) schema(op string, fn infoFuncs) ([]PropertyInfo, error) {
	var n uint32
	if err := hresult.Check(op, fn.count(&n)); err != nil {
		return nil, err
	}
	out := make([]PropertyInfo, 0, n)
	for i := uint32(0); i < n; i++ {
		var name *propvar.WChar
		var id uint32
		var vt uint16
		if err := hresult.Check(op, fn.info(i, &name, &id, &vt)); err != nil {
			return nil, err
		}
		info := PropertyInfo{ID: PropID(id), Type: propvar.VarType(vt)}
		if name != nil {
			s, err := propvar.BSTRString(name)
			a.alloc.FreeBSTR(name)
			if err != nil {
				return nil, err
			}
			info.Name = s
		}
		if info.Name == "" {
			info.Name = info.ID.String()
		}
		out = append(out, info)
	}
	return out, nil
}

// PropertyInfo lists the item properties the handler reports.
func (a *Archive) PropertyInfo() ([]PropertyInfo, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if a.itemSchema == nil {
		s, err := a.schema("GetPropertyInfo", infoFuncs{a.handle.GetNumberOfProperties, a.handle.GetPropertyInfo})
		if err != nil {
			return nil, err
		}
		a.itemSchema = s
	}
	return a.itemSchema, nil
}

// ArchivePropertyInfo lists the archive-level properties the handler
// reports.
func (a *Archive) ArchivePropertyInfo() ([]PropertyInfo, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if a.archiveSchema == nil {
		s, err := a.schema("GetArchivePropertyInfo", infoFuncs{a.handle.GetNumberOfArchiveProperties, a.handle.GetArchivePropertyInfo})
		if err != nil {
			return nil, err
		}
		a.archiveSchema = s
	}
	return a.archiveSchema, nil
}

// defaultItemName names items stored without a path, as single-stream
// formats do, after the archive itself.
func (a *Archive) defaultItemName(index int) string {
	base := strings.TrimSuffix(a.name, filepath.Ext(a.name))
	if base == "" || base == "." {
		base = "item"
	}
	if n, _ := a.Len(); n > 1 {
		return fmt.Sprintf("%s.%d", base, index)
	}
	return base
}

func (a *Archive) indices(items []int) ([]uint32, error) {
	n, err := a.Len()
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(items))
	for i, idx := range items {
		if idx < 0 || idx >= n || (i > 0 && idx <= items[i-1]) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidIndices, items)
		}
		out[i] = uint32(idx)
	}
	return out, nil
}

// extract runs one native Extract call. A nil items slice means every item.
func (a *Archive) extract(items []int, s sink, test bool, opts ExtractOptions) error {
	if err := a.check(); err != nil {
		return err
	}
	var (
		ptr       *uint32
		num       uint32 = allItems
		requested int
	)
	if items == nil {
		n, err := a.Len()
		if err != nil {
			return err
		}
		requested = n
	} else {
		idx, err := a.indices(items)
		if err != nil {
			return err
		}
		if len(idx) == 0 {
			return nil
		}
		ptr, num, requested = &idx[0], uint32(len(idx)), len(idx)
	}

	var testMode int32
	if test {
		testMode = 1
	}
	cb, unk := newExtractCallback(a, s, opts)
	code := a.handle.Extract(ptr, num, testMode, (*ffi7z.IArchiveExtractCallback)(unk.Handle(idl.IArchiveExtractCallback)))
	err := cb.result(code, requested)
	runtime.KeepAlive(unk)
	runtime.KeepAlive(cb.streams)
	return err
}

func (a *Archive) dirSink(dir string, opts ExtractOptions) *dirSink {
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &dirSink{archive: a, fs: fsys, dir: dir, stripComponents: opts.StripComponents}
}

// Extract writes every item below dir.
func (a *Archive) Extract(dir string, opts ExtractOptions) error {
	return a.extract(nil, a.dirSink(dir, opts), false, opts)
}

// ExtractItems writes the items at indices below dir. indices must be
// strictly ascending; nil means every item.
func (a *Archive) ExtractItems(indices []int, dir string, opts ExtractOptions) error {
	return a.extract(indices, a.dirSink(dir, opts), false, opts)
}

// ExtractItem writes the content of it to w.
func (a *Archive) ExtractItem(it *Item, w io.Writer, opts ExtractOptions) error {
	if err := a.owns(it); err != nil {
		return err
	}
	return a.extract([]int{it.index}, &writerSink{w: w, index: it.index}, false, opts)
}

// Test decodes every item without writing anything.
func (a *Archive) Test(opts ExtractOptions) error {
	return a.extract(nil, &writerSink{index: -1}, true, opts)
}

func (a *Archive) owns(it *Item) error {
	if it == nil || it.archive != a {
		return ErrForeignItem
	}
	return a.check()
}

// Close releases the native handler and any files opened for the archive.
// Closing twice is a no-op.
func (a *Archive) Close() error {
	if a.state == stateClosed {
		return nil
	}
	prev := a.state
	a.state = stateClosed

	var errs []error
	if prev == stateOpened && a.handle != nil {
		errs = append(errs, hresult.Check("Close", a.handle.Close()))
		a.handle.Release()
	}
	a.handle = nil
	errs = append(errs, a.openCB.close())
	if a.closer != nil {
		errs = append(errs, a.closer.Close())
	}
	a.props.Purge()
	a.items = nil
	a.pathIndex = nil

	runtime.KeepAlive(a.stream)
	runtime.KeepAlive(a.openUnk)
	runtime.KeepAlive(a.codecs)
	a.stream, a.openUnk, a.codecs = nil, nil, nil
	logger.Debug("Closed archive", "name", a.name, "format", a.format.Name)
	return errors.Join(errs...)
}
