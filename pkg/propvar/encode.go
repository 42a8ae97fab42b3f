package propvar

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/google/uuid"
)

// Allocator owns variant and BSTR memory. Values handed to native code must
// come from the native allocator; the heap allocator serves values that never
// cross the boundary.
type Allocator interface {
	NewVariant() *PropVariant
	FreeVariant(v *PropVariant)
	AllocBSTR(data []byte) *WChar
	FreeBSTR(p *WChar)
}

// Clear releases an owned payload and resets the tag to VT_EMPTY.
func (v *PropVariant) Clear(alloc Allocator) {
	if v.vt == VT_BSTR {
		if p := v.bstr(); p != nil {
			alloc.FreeBSTR(p)
		}
	}
	*v = PropVariant{}
}

func (v *PropVariant) setScalar(alloc Allocator, vt VarType, store func(p unsafe.Pointer)) {
	v.Clear(alloc)
	v.vt = vt
	store(v.payload())
}

func (v *PropVariant) SetInt8(alloc Allocator, x int8) {
	v.setScalar(alloc, VT_I1, func(p unsafe.Pointer) { *(*int8)(p) = x })
}

func (v *PropVariant) SetInt16(alloc Allocator, x int16) {
	v.setScalar(alloc, VT_I2, func(p unsafe.Pointer) { *(*int16)(p) = x })
}

func (v *PropVariant) SetInt32(alloc Allocator, x int32) {
	v.setScalar(alloc, VT_I4, func(p unsafe.Pointer) { *(*int32)(p) = x })
}

func (v *PropVariant) SetInt64(alloc Allocator, x int64) {
	v.setScalar(alloc, VT_I8, func(p unsafe.Pointer) { *(*int64)(p) = x })
}

func (v *PropVariant) SetUint8(alloc Allocator, x uint8) {
	v.setScalar(alloc, VT_UI1, func(p unsafe.Pointer) { *(*uint8)(p) = x })
}

func (v *PropVariant) SetUint16(alloc Allocator, x uint16) {
	v.setScalar(alloc, VT_UI2, func(p unsafe.Pointer) { *(*uint16)(p) = x })
}

func (v *PropVariant) SetUint32(alloc Allocator, x uint32) {
	v.setScalar(alloc, VT_UI4, func(p unsafe.Pointer) { *(*uint32)(p) = x })
}

func (v *PropVariant) SetUint64(alloc Allocator, x uint64) {
	v.setScalar(alloc, VT_UI8, func(p unsafe.Pointer) { *(*uint64)(p) = x })
}

// SetBool stores VARIANT_TRUE (-1) or VARIANT_FALSE (0).
func (v *PropVariant) SetBool(alloc Allocator, x bool) {
	var b int16
	if x {
		b = -1
	}
	v.setScalar(alloc, VT_BOOL, func(p unsafe.Pointer) { *(*int16)(p) = b })
}

func (v *PropVariant) SetFloat32(alloc Allocator, x float32) {
	v.setScalar(alloc, VT_R4, func(p unsafe.Pointer) { *(*float32)(p) = x })
}

func (v *PropVariant) SetFloat64(alloc Allocator, x float64) {
	v.setScalar(alloc, VT_R8, func(p unsafe.Pointer) { *(*float64)(p) = x })
}

// SetFileTime stores t as 100ns ticks since 1601-01-01 UTC.
func (v *PropVariant) SetFileTime(alloc Allocator, t time.Time) {
	ticks := uint64(t.Unix()*1e7 + int64(t.Nanosecond())/100 + fileTimeEpoch)
	v.setScalar(alloc, VT_FILETIME, func(p unsafe.Pointer) { *(*uint64)(p) = ticks })
}

// SetDate stores t as an OLE automation date.
func (v *PropVariant) SetDate(alloc Allocator, t time.Time) {
	days := float64(t.Sub(oleEpoch)) / float64(24*time.Hour)
	v.setScalar(alloc, VT_DATE, func(p unsafe.Pointer) { *(*float64)(p) = days })
}

// SetBytes stores a raw VT_BSTR payload.
func (v *PropVariant) SetBytes(alloc Allocator, data []byte) error {
	v.Clear(alloc)
	p := alloc.AllocBSTR(data)
	if p == nil {
		return ErrAlloc
	}
	v.vt = VT_BSTR
	*(**WChar)(v.payload()) = p
	return nil
}

// SetString stores s as a wide VT_BSTR.
func (v *PropVariant) SetString(alloc Allocator, s string) error {
	wide, err := EncodeWide(s)
	if err != nil {
		return err
	}
	return v.SetBytes(alloc, wide)
}

// SetBlobArray packs items as length-prefixed blobs followed by a zero
// length byte. Each item must hold between 1 and 255 bytes.
func (v *PropVariant) SetBlobArray(alloc Allocator, items [][]byte) error {
	var raw []byte
	for i, item := range items {
		if len(item) == 0 || len(item) > 255 {
			return fmt.Errorf("propvar: blob %d has unsupported length %d", i, len(item))
		}
		raw = append(raw, byte(len(item)))
		raw = append(raw, item...)
	}
	raw = append(raw, 0)
	return v.SetBytes(alloc, raw)
}

// SetUUID stores u as a 16 byte GUID blob.
func (v *PropVariant) SetUUID(alloc Allocator, u uuid.UUID) error {
	return v.SetBytes(alloc, GUIDBytes(u))
}
