//go:build !windows

package propvar

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode/utf32"
)

// WChar is the platform wchar_t: four bytes of UTF-32 outside Windows.
type WChar int32

var wideEncoding encoding.Encoding = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
