package propvar

import "fmt"

// VarType is the tag of a PropVariant.
type VarType uint16

const (
	VT_EMPTY    VarType = 0
	VT_NULL     VarType = 1
	VT_I2       VarType = 2
	VT_I4       VarType = 3
	VT_R4       VarType = 4
	VT_R8       VarType = 5
	VT_DATE     VarType = 7
	VT_BSTR     VarType = 8
	VT_ERROR    VarType = 10
	VT_BOOL     VarType = 11
	VT_I1       VarType = 16
	VT_UI1      VarType = 17
	VT_UI2      VarType = 18
	VT_UI4      VarType = 19
	VT_I8       VarType = 20
	VT_UI8      VarType = 21
	VT_INT      VarType = 22
	VT_UINT     VarType = 23
	VT_FILETIME VarType = 64
)

var varTypeNames = map[VarType]string{
	VT_EMPTY:    "VT_EMPTY",
	VT_NULL:     "VT_NULL",
	VT_I2:       "VT_I2",
	VT_I4:       "VT_I4",
	VT_R4:       "VT_R4",
	VT_R8:       "VT_R8",
	VT_DATE:     "VT_DATE",
	VT_BSTR:     "VT_BSTR",
	VT_ERROR:    "VT_ERROR",
	VT_BOOL:     "VT_BOOL",
	VT_I1:       "VT_I1",
	VT_UI1:      "VT_UI1",
	VT_UI2:      "VT_UI2",
	VT_UI4:      "VT_UI4",
	VT_I8:       "VT_I8",
	VT_UI8:      "VT_UI8",
	VT_INT:      "VT_INT",
	VT_UINT:     "VT_UINT",
	VT_FILETIME: "VT_FILETIME",
}

func (t VarType) String() string {
	if name, ok := varTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("VT(%d)", uint16(t))
}

// Known reports whether the codec understands the tag.
func (t VarType) Known() bool {
	_, ok := varTypeNames[t]
	return ok
}

func (t VarType) signed() bool {
	switch t {
	case VT_I1, VT_I2, VT_I4, VT_I8, VT_INT:
		return true
	}
	return false
}

func (t VarType) unsigned() bool {
	switch t {
	case VT_UI1, VT_UI2, VT_UI4, VT_UI8, VT_UINT:
		return true
	}
	return false
}
