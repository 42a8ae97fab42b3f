package propvar

import (
	"fmt"
	"unsafe"
)

// WCharSize is the size of WChar in bytes.
const WCharSize = int(unsafe.Sizeof(WChar(0)))

// EncodeWide converts s to wide characters without a terminator.
func EncodeWide(s string) ([]byte, error) {
	out, err := wideEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode wide string: %w", err)
	}
	return out, nil
}

// DecodeWide converts wide characters to a Go string.
func DecodeWide(b []byte) (string, error) {
	out, err := wideEncoding.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode wide string: %w", err)
	}
	return string(out), nil
}

// WString reads a NUL-terminated wide string. A nil pointer reads as "".
func WString(p *WChar) (string, error) {
	if p == nil {
		return "", nil
	}
	n := 0
	for *(*WChar)(unsafe.Add(unsafe.Pointer(p), n*WCharSize)) != 0 {
		n++
	}
	return DecodeWide(unsafe.Slice((*byte)(unsafe.Pointer(p)), n*WCharSize))
}

// BSTRLen returns the byte length stored in front of a BSTR.
func BSTRLen(p *WChar) int {
	if p == nil {
		return 0
	}
	return int(*(*uint32)(unsafe.Add(unsafe.Pointer(p), -4)))
}

// BSTRBytes returns a copy of the raw payload of a BSTR.
func BSTRBytes(p *WChar) []byte {
	n := BSTRLen(p)
	if n == 0 {
		return []byte{}
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
	return out
}

// BSTRString decodes a BSTR using its stored length, so embedded NULs are
// kept.
func BSTRString(p *WChar) (string, error) {
	return DecodeWide(BSTRBytes(p))
}
