//go:build windows

package propvar

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// WChar is the platform wchar_t: two bytes of UTF-16 on Windows.
type WChar uint16

var wideEncoding encoding.Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
