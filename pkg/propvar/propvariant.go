// Package propvar reads and writes PROPVARIANT values, the tagged union the
// 7-Zip plugin uses for every piece of metadata. Values written by the
// plugin own their string payloads and must be released through the
// Allocator that matches the native one.
package propvar

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
	"unsafe"

	"github.com/google/uuid"
)

// PropVariant mirrors the native PROPVARIANT layout: a two byte tag, six
// reserved bytes and a sixteen byte, eight byte aligned union.
type PropVariant struct {
	vt       VarType
	reserved [3]uint16
	val      [2]uint64
}

// Type returns the tag.
func (v *PropVariant) Type() VarType {
	return v.vt
}

// IsEmpty reports VT_EMPTY or VT_NULL.
func (v *PropVariant) IsEmpty() bool {
	return v.vt == VT_EMPTY || v.vt == VT_NULL
}

func (v *PropVariant) payload() unsafe.Pointer {
	return unsafe.Pointer(&v.val[0])
}

func (v *PropVariant) bstr() *WChar {
	return *(**WChar)(v.payload())
}

// BSTR returns the string payload pointer of a VT_BSTR value.
func (v *PropVariant) BSTR() (*WChar, error) {
	if v.vt != VT_BSTR {
		return nil, &DecodeError{Tag: v.vt, Want: "BSTR"}
	}
	return v.bstr(), nil
}

// AsInt reads any integer tag as int64.
func (v *PropVariant) AsInt() (int64, error) {
	p := v.payload()
	switch v.vt {
	case VT_I1:
		return int64(*(*int8)(p)), nil
	case VT_I2:
		return int64(*(*int16)(p)), nil
	case VT_I4, VT_INT:
		return int64(*(*int32)(p)), nil
	case VT_I8:
		return *(*int64)(p), nil
	case VT_UI1, VT_UI2, VT_UI4, VT_UINT:
		u, _ := v.AsUint()
		return int64(u), nil
	case VT_UI8:
		u := *(*uint64)(p)
		if u > math.MaxInt64 {
			return 0, &DecodeError{Tag: v.vt, Want: "int64"}
		}
		return int64(u), nil
	}
	return 0, &DecodeError{Tag: v.vt, Want: "int64"}
}

// AsUint reads any integer tag as uint64. Negative signed values fail.
func (v *PropVariant) AsUint() (uint64, error) {
	p := v.payload()
	switch v.vt {
	case VT_UI1:
		return uint64(*(*uint8)(p)), nil
	case VT_UI2:
		return uint64(*(*uint16)(p)), nil
	case VT_UI4, VT_UINT:
		return uint64(*(*uint32)(p)), nil
	case VT_UI8:
		return *(*uint64)(p), nil
	}
	if v.vt.signed() {
		i, _ := v.AsInt()
		if i < 0 {
			return 0, &DecodeError{Tag: v.vt, Want: "uint64"}
		}
		return uint64(i), nil
	}
	return 0, &DecodeError{Tag: v.vt, Want: "uint64"}
}

// AsBool reads a VT_BOOL value.
func (v *PropVariant) AsBool() (bool, error) {
	if v.vt != VT_BOOL {
		return false, &DecodeError{Tag: v.vt, Want: "bool"}
	}
	return *(*int16)(v.payload()) != 0, nil
}

// AsFloat reads VT_R4 or VT_R8.
func (v *PropVariant) AsFloat() (float64, error) {
	switch v.vt {
	case VT_R4:
		return float64(*(*float32)(v.payload())), nil
	case VT_R8:
		return *(*float64)(v.payload()), nil
	}
	return 0, &DecodeError{Tag: v.vt, Want: "float64"}
}

// AsError reads the status code of a VT_ERROR value.
func (v *PropVariant) AsError() (int32, error) {
	if v.vt != VT_ERROR {
		return 0, &DecodeError{Tag: v.vt, Want: "scode"}
	}
	return *(*int32)(v.payload()), nil
}

// AsString reads a VT_BSTR value as text.
func (v *PropVariant) AsString() (string, error) {
	p, err := v.BSTR()
	if err != nil {
		return "", &DecodeError{Tag: v.vt, Want: "string"}
	}
	return BSTRString(p)
}

// AsBytes reads the raw payload of a VT_BSTR value.
func (v *PropVariant) AsBytes() ([]byte, error) {
	p, err := v.BSTR()
	if err != nil {
		return nil, &DecodeError{Tag: v.vt, Want: "bytes"}
	}
	return BSTRBytes(p), nil
}

// AsBlobArray reads a packed run of length-prefixed blobs. The run ends at a
// zero length byte or at the end of the payload.
func (v *PropVariant) AsBlobArray() ([][]byte, error) {
	raw, err := v.AsBytes()
	if err != nil {
		return nil, &DecodeError{Tag: v.vt, Want: "blob array"}
	}
	var out [][]byte
	for i := 0; i < len(raw); {
		n := int(raw[i])
		if n == 0 {
			break
		}
		i++
		if i+n > len(raw) {
			return nil, fmt.Errorf("blob %d: %w", len(out), ErrTruncated)
		}
		out = append(out, raw[i:i+n:i+n])
		i += n
	}
	return out, nil
}

// AsUUID reads a 16 byte GUID blob stored in Windows byte order.
func (v *PropVariant) AsUUID() (uuid.UUID, error) {
	raw, err := v.AsBytes()
	if err != nil || len(raw) != 16 {
		return uuid.Nil, &DecodeError{Tag: v.vt, Want: "uuid"}
	}
	return UUIDFromGUIDBytes(raw), nil
}

// UUIDFromGUIDBytes converts the little-endian GUID layout into an RFC 4122
// UUID.
func UUIDFromGUIDBytes(raw []byte) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], binary.LittleEndian.Uint32(raw[0:4]))
	binary.BigEndian.PutUint16(u[4:6], binary.LittleEndian.Uint16(raw[4:6]))
	binary.BigEndian.PutUint16(u[6:8], binary.LittleEndian.Uint16(raw[6:8]))
	copy(u[8:], raw[8:16])
	return u
}

// GUIDBytes converts a UUID into the little-endian GUID layout.
func GUIDBytes(u uuid.UUID) []byte {
	raw := make([]byte, 16)
	binary.LittleEndian.PutUint32(raw[0:4], binary.BigEndian.Uint32(u[0:4]))
	binary.LittleEndian.PutUint16(raw[4:6], binary.BigEndian.Uint16(u[4:6]))
	binary.LittleEndian.PutUint16(raw[6:8], binary.BigEndian.Uint16(u[6:8]))
	copy(raw[8:], u[8:])
	return raw
}

// fileTimeEpoch is 1601-01-01 in 100ns ticks before the Unix epoch.
const fileTimeEpoch = 116444736000000000

// oleEpoch is day zero of an OLE automation date.
var oleEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// AsTime reads VT_FILETIME or VT_DATE in UTC.
func (v *PropVariant) AsTime() (time.Time, error) {
	switch v.vt {
	case VT_FILETIME:
		ticks := int64(*(*uint64)(v.payload())) - fileTimeEpoch
		return time.Unix(ticks/1e7, (ticks%1e7)*100).UTC(), nil
	case VT_DATE:
		days := *(*float64)(v.payload())
		return oleEpoch.Add(time.Duration(math.Round(days * float64(24*time.Hour)))), nil
	}
	return time.Time{}, &DecodeError{Tag: v.vt, Want: "time"}
}

// FileTime returns the raw tick count of a VT_FILETIME value.
func (v *PropVariant) FileTime() (uint64, error) {
	if v.vt != VT_FILETIME {
		return 0, &DecodeError{Tag: v.vt, Want: "filetime"}
	}
	return *(*uint64)(v.payload()), nil
}

// Value decodes any known tag into its natural Go type: nil, int64, uint64,
// bool, float64, int32 for VT_ERROR, string or time.Time.
func (v *PropVariant) Value() (any, error) {
	switch {
	case v.IsEmpty():
		return nil, nil
	case v.vt.signed():
		return v.AsInt()
	case v.vt.unsigned():
		return v.AsUint()
	}
	switch v.vt {
	case VT_BOOL:
		return v.AsBool()
	case VT_R4, VT_R8:
		return v.AsFloat()
	case VT_ERROR:
		return v.AsError()
	case VT_BSTR:
		return v.AsString()
	case VT_FILETIME, VT_DATE:
		return v.AsTime()
	}
	return nil, &DecodeError{Tag: v.vt, Want: "value"}
}

func (v *PropVariant) String() string {
	val, err := v.Value()
	if err != nil {
		return v.vt.String()
	}
	return fmt.Sprintf("%s(%v)", v.vt, val)
}
