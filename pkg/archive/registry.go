package archive

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/google/uuid"

	"lib7zip/pkg/hresult"
	"lib7zip/pkg/logger"
	"lib7zip/pkg/propvar"
)

// Native is the part of the plugin library the archive layer needs.
// *ffi7z.Library implements it.
type Native interface {
	NumFormats() (uint32, error)
	FormatProperty(index, propID uint32, v *propvar.PropVariant) error
	NumMethods() (uint32, error)
	MethodProperty(index, propID uint32, v *propvar.PropVariant) error
	CreateObject(clsid, iid uuid.UUID) (unsafe.Pointer, error)
	Allocator() propvar.Allocator
}

// Format describes one archive format handler.
type Format struct {
	Index           int
	Name            string
	ClassID         uuid.UUID
	Extensions      []string
	AddExtensions   []string
	Signatures      [][]byte
	SignatureOffset uint32
	Flags           FormatFlag
	Update          bool
}

// MatchesName reports whether name ends in one of the format's extensions.
func (f *Format) MatchesName(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	for _, e := range f.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// MatchesSignature reports whether head carries one of the format's
// signatures at the signature offset. Formats without signatures, and
// formats that locate their headers from the end of the input, always match.
func (f *Format) MatchesSignature(head []byte) bool {
	if len(f.Signatures) == 0 || f.Flags.Has(FlagBackwardOpen) {
		return true
	}
	off := int(f.SignatureOffset)
	for _, sig := range f.Signatures {
		if off+len(sig) <= len(head) && bytes.Equal(head[off:off+len(sig)], sig) {
			return true
		}
	}
	return false
}

// Method describes one codec of the library.
type Method struct {
	Index             int
	ID                uint64
	Name              string
	Description       string
	Decoder           uuid.UUID
	Encoder           uuid.UUID
	DecoderIsAssigned bool
	EncoderIsAssigned bool
}

// Registry is the read-only view of the library's formats and codecs. It
// queries the library once, on first use.
type Registry struct {
	native Native

	once    sync.Once
	formats []Format
	methods []Method
	err     error
}

// NewRegistry wraps native. Nothing is queried until the first lookup.
func NewRegistry(native Native) *Registry {
	return &Registry{native: native}
}

// Native returns the library the registry reads from.
func (r *Registry) Native() Native {
	return r.native
}

func (r *Registry) load() error {
	r.once.Do(func() {
		r.formats, r.err = loadFormats(r.native)
		if r.err != nil {
			return
		}
		r.methods, r.err = loadMethods(r.native)
		if r.err == nil {
			logger.Debug("Loaded 7-Zip registry", "formats", len(r.formats), "methods", len(r.methods))
		}
	})
	return r.err
}

// Formats returns every format in library order.
func (r *Registry) Formats() ([]Format, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return r.formats, nil
}

// Methods returns every codec in library order.
func (r *Registry) Methods() ([]Method, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return r.methods, nil
}

// Format looks up a format by name, ignoring case.
func (r *Registry) Format(name string) (Format, error) {
	if err := r.load(); err != nil {
		return Format{}, err
	}
	for _, f := range r.formats {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// Method returns the codec at index.
func (r *Registry) Method(index int) (Method, error) {
	if err := r.load(); err != nil {
		return Method{}, err
	}
	if index < 0 || index >= len(r.methods) {
		return Method{}, fmt.Errorf("method %d: %w", index, hresult.E_INVALIDARG)
	}
	return r.methods[index], nil
}

// MaxSignatureSize is the number of leading bytes needed to check every
// signature.
func (r *Registry) MaxSignatureSize() (int, error) {
	if err := r.load(); err != nil {
		return 0, err
	}
	n := 0
	for _, f := range r.formats {
		for _, sig := range f.Signatures {
			n = max(n, int(f.SignatureOffset)+len(sig))
		}
	}
	return n, nil
}

// Candidates returns the formats worth trying for an input, in library order.
// A non-empty name restricts the list to formats claiming its extension; the
// head of the input then rules out formats whose signature is absent.
func (r *Registry) Candidates(name string, head []byte) ([]Format, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	var out []Format
	for _, f := range r.formats {
		if name != "" && !f.MatchesName(name) {
			continue
		}
		if !f.MatchesSignature(head) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

type propReader func(index, propID uint32, v *propvar.PropVariant) error

// readProp reads one property into a variant from alloc, decodes it and
// frees the variant with its payload. Empty values leave the result at its
// zero value. Decoders copy, so nothing refers to the variant afterwards.
func readProp[T any](alloc propvar.Allocator, read propReader, index, propID uint32, decode func(*propvar.PropVariant) (T, error)) (T, error) {
	var zero T
	v := alloc.NewVariant()
	if v == nil {
		return zero, fmt.Errorf("property %d: %w", propID, hresult.E_OUTOFMEMORY)
	}
	defer alloc.FreeVariant(v)

	if err := read(index, propID, v); err != nil {
		return zero, err
	}
	if v.IsEmpty() {
		return zero, nil
	}
	return decode(v)
}

func splitList(s string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	return strings.Fields(s), nil
}

func loadFormats(native Native) ([]Format, error) {
	n, err := native.NumFormats()
	if err != nil {
		return nil, err
	}
	alloc := native.Allocator()
	read := native.FormatProperty
	formats := make([]Format, 0, n)
	for i := uint32(0); i < n; i++ {
		f := Format{Index: int(i)}
		var errs []error
		var err error

		f.Name, err = readProp(alloc, read, i, uint32(FormatName), (*propvar.PropVariant).AsString)
		errs = append(errs, err)
		f.ClassID, err = readProp(alloc, read, i, uint32(FormatClassID), (*propvar.PropVariant).AsUUID)
		errs = append(errs, err)
		f.Extensions, err = splitList(readProp(alloc, read, i, uint32(FormatExtension), (*propvar.PropVariant).AsString))
		errs = append(errs, err)
		f.AddExtensions, err = splitList(readProp(alloc, read, i, uint32(FormatAddExtension), (*propvar.PropVariant).AsString))
		errs = append(errs, err)
		f.Update, err = readProp(alloc, read, i, uint32(FormatUpdate), (*propvar.PropVariant).AsBool)
		errs = append(errs, err)

		flags, err := readProp(alloc, read, i, uint32(FormatFlags), (*propvar.PropVariant).AsUint)
		errs = append(errs, err)
		f.Flags = FormatFlag(flags)

		offset, err := readProp(alloc, read, i, uint32(FormatSignatureOffset), (*propvar.PropVariant).AsUint)
		errs = append(errs, err)
		f.SignatureOffset = uint32(offset)

		if f.Flags.Has(FlagMultiSignature) {
			f.Signatures, err = readProp(alloc, read, i, uint32(FormatMultiSignature), (*propvar.PropVariant).AsBlobArray)
			errs = append(errs, err)
		} else {
			sig, err := readProp(alloc, read, i, uint32(FormatSignature), (*propvar.PropVariant).AsBytes)
			errs = append(errs, err)
			if len(sig) > 0 {
				f.Signatures = [][]byte{sig}
			}
		}

		if err := errors.Join(errs...); err != nil {
			return nil, fmt.Errorf("format %d: %w", i, err)
		}
		formats = append(formats, f)
	}
	return formats, nil
}

func loadMethods(native Native) ([]Method, error) {
	n, err := native.NumMethods()
	if code, ok := hresult.FromError(err); ok && code == hresult.E_NOTIMPL {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	alloc := native.Allocator()
	read := native.MethodProperty
	methods := make([]Method, 0, n)
	for i := uint32(0); i < n; i++ {
		m := Method{Index: int(i)}
		var errs []error
		var err error

		m.ID, err = readProp(alloc, read, i, uint32(MethodID), (*propvar.PropVariant).AsUint)
		errs = append(errs, err)
		m.Name, err = readProp(alloc, read, i, uint32(MethodName), (*propvar.PropVariant).AsString)
		errs = append(errs, err)
		m.Description, err = readProp(alloc, read, i, uint32(MethodDescription), (*propvar.PropVariant).AsString)
		errs = append(errs, err)
		m.Decoder, err = readProp(alloc, read, i, uint32(MethodDecoder), (*propvar.PropVariant).AsUUID)
		errs = append(errs, err)
		m.Encoder, err = readProp(alloc, read, i, uint32(MethodEncoder), (*propvar.PropVariant).AsUUID)
		errs = append(errs, err)

		// Older libraries omit the assignment flags; the class ID alone then
		// decides.
		m.DecoderIsAssigned, err = readProp(alloc, read, i, uint32(MethodDecoderIsAssigned), (*propvar.PropVariant).AsBool)
		errs = append(errs, err)
		m.EncoderIsAssigned, err = readProp(alloc, read, i, uint32(MethodEncoderIsAssigned), (*propvar.PropVariant).AsBool)
		errs = append(errs, err)
		m.DecoderIsAssigned = m.DecoderIsAssigned || m.Decoder != uuid.Nil
		m.EncoderIsAssigned = m.EncoderIsAssigned || m.Encoder != uuid.Nil

		if err := errors.Join(errs...); err != nil {
			return nil, fmt.Errorf("method %d: %w", i, err)
		}
		methods = append(methods, m)
	}
	return methods, nil
}
