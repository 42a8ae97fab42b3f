package archive

import (
	"unsafe"

	"github.com/google/uuid"

	"lib7zip/pkg/ffi7z"
	"lib7zip/pkg/hresult"
	"lib7zip/pkg/idl"
	"lib7zip/pkg/propvar"
)

// codecsInfo lends the library's codec list to a handler that asks for it
// through ISetCompressCodecsInfo.
type codecsInfo struct {
	reg *Registry
}

func newCodecsInfo(reg *Registry) *ffi7z.Unknown {
	return ffi7z.NewUnknown(&codecsInfo{reg: reg}, idl.ICompressCodecsInfo)
}

func (c *codecsInfo) GetNumMethods(numMethods *uint32) error {
	if numMethods == nil {
		return hresult.E_POINTER
	}
	methods, err := c.reg.Methods()
	if err != nil {
		return err
	}
	*numMethods = uint32(len(methods))
	return nil
}

func (c *codecsInfo) GetProperty(index uint32, propId uint32, value *propvar.PropVariant) error {
	if value == nil {
		return hresult.E_POINTER
	}
	return c.reg.native.MethodProperty(index, propId, value)
}

func (c *codecsInfo) create(index uint32, iid *ffi7z.GUID, coder *unsafe.Pointer, pick func(Method) (uuid.UUID, bool)) error {
	if coder == nil || iid == nil {
		return hresult.E_POINTER
	}
	*coder = nil
	m, err := c.reg.Method(int(index))
	if err != nil {
		return err
	}
	clsid, ok := pick(m)
	if !ok {
		return nil
	}
	obj, err := c.reg.native.CreateObject(clsid, iid.UUID())
	if err != nil {
		return err
	}
	*coder = obj
	return nil
}

func (c *codecsInfo) CreateDecoder(index uint32, iid *ffi7z.GUID, coder *unsafe.Pointer) error {
	return c.create(index, iid, coder, func(m Method) (uuid.UUID, bool) {
		return m.Decoder, m.DecoderIsAssigned && m.Decoder != uuid.Nil
	})
}

func (c *codecsInfo) CreateEncoder(index uint32, iid *ffi7z.GUID, coder *unsafe.Pointer) error {
	return c.create(index, iid, coder, func(m Method) (uuid.UUID, bool) {
		return m.Encoder, m.EncoderIsAssigned && m.Encoder != uuid.Nil
	})
}

// shareCodecs hands codecs to obj if it accepts them. Handlers that do not
// are left alone.
func shareCodecs(obj unsafe.Pointer, codecs *ffi7z.Unknown) error {
	p, err := ffi7z.QueryInterface(obj, idl.ISetCompressCodecsInfo)
	if err != nil {
		return nil
	}
	defer ffi7z.Release(p)
	info := (*ffi7z.ICompressCodecsInfo)(codecs.Handle(idl.ICompressCodecsInfo))
	return hresult.Check("SetCompressCodecsInfo", (*ffi7z.ISetCompressCodecsInfo)(p).SetCompressCodecsInfo(info))
}
