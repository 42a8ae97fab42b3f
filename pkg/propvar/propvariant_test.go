package propvar

import (
	"errors"
	"math"
	"testing"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	var v PropVariant
	assert.Equal(t, uintptr(24), unsafe.Sizeof(v))
	assert.Equal(t, uintptr(8), unsafe.Alignof(v))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(v.val))
}

func TestIntegerRoundTrip(t *testing.T) {
	alloc := NewHeapAllocator()
	tests := []struct {
		name string
		set  func(v *PropVariant)
		tag  VarType
		want any
	}{
		{"int8", func(v *PropVariant) { v.SetInt8(alloc, -5) }, VT_I1, int64(-5)},
		{"int16", func(v *PropVariant) { v.SetInt16(alloc, math.MinInt16) }, VT_I2, int64(math.MinInt16)},
		{"int32", func(v *PropVariant) { v.SetInt32(alloc, -70000) }, VT_I4, int64(-70000)},
		{"int64", func(v *PropVariant) { v.SetInt64(alloc, math.MaxInt64) }, VT_I8, int64(math.MaxInt64)},
		{"uint8", func(v *PropVariant) { v.SetUint8(alloc, 200) }, VT_UI1, uint64(200)},
		{"uint16", func(v *PropVariant) { v.SetUint16(alloc, 65000) }, VT_UI2, uint64(65000)},
		{"uint32", func(v *PropVariant) { v.SetUint32(alloc, math.MaxUint32) }, VT_UI4, uint64(math.MaxUint32)},
		{"uint64", func(v *PropVariant) { v.SetUint64(alloc, math.MaxUint64) }, VT_UI8, uint64(math.MaxUint64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := alloc.NewVariant()
			defer alloc.FreeVariant(v)
			tt.set(v)
			assert.Equal(t, tt.tag, v.Type())
			got, err := v.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntegerConversions(t *testing.T) {
	alloc := NewHeapAllocator()
	var v PropVariant

	v.SetUint32(alloc, 42)
	i, err := v.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)

	v.SetInt16(alloc, -1)
	_, err = v.AsUint()
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, VT_I2, derr.Tag)

	v.SetUint64(alloc, math.MaxUint64)
	_, err = v.AsInt()
	assert.ErrorAs(t, err, &derr)

	v.SetInt64(alloc, 7)
	u, err := v.AsUint()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), u)
}

func TestBoolAndFloat(t *testing.T) {
	alloc := NewHeapAllocator()
	var v PropVariant

	v.SetBool(alloc, true)
	assert.Equal(t, int16(-1), *(*int16)(v.payload()))
	b, err := v.AsBool()
	require.NoError(t, err)
	assert.True(t, b)

	v.SetBool(alloc, false)
	b, err = v.AsBool()
	require.NoError(t, err)
	assert.False(t, b)

	v.SetFloat32(alloc, 1.5)
	f, err := v.AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	v.SetFloat64(alloc, math.Pi)
	f, err = v.AsFloat()
	require.NoError(t, err)
	assert.Equal(t, math.Pi, f)
}

func TestStringRoundTrip(t *testing.T) {
	alloc := NewHeapAllocator()
	for _, s := range []string{"", "a.txt", "dir/ünïcødé/файл.bin", "emoji 📦"} {
		v := alloc.NewVariant()
		require.NoError(t, v.SetString(alloc, s))
		assert.Equal(t, VT_BSTR, v.Type())
		got, err := v.AsString()
		require.NoError(t, err)
		assert.Equal(t, s, got)

		p, err := v.BSTR()
		require.NoError(t, err)
		assert.Equal(t, len([]rune(s))*WCharSize, BSTRLen(p))
		w, err := WString(p)
		require.NoError(t, err)
		assert.Equal(t, s, w)

		alloc.FreeVariant(v)
	}
	assert.Zero(t, alloc.Live())
}

func TestBytesRoundTrip(t *testing.T) {
	alloc := NewHeapAllocator()
	var v PropVariant
	data := []byte{0, 1, 2, 0xff, 0, 7}
	require.NoError(t, v.SetBytes(alloc, data))
	got, err := v.AsBytes()
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, 1, alloc.Live())

	v.SetUint8(alloc, 1)
	assert.Zero(t, alloc.Live(), "replacing a BSTR frees it")
}

func TestBlobArrayRoundTrip(t *testing.T) {
	alloc := NewHeapAllocator()
	var v PropVariant
	items := [][]byte{
		[]byte("PK\x03\x04"),
		{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c},
		{0},
		make([]byte, 255),
	}
	require.NoError(t, v.SetBlobArray(alloc, items))
	got, err := v.AsBlobArray()
	require.NoError(t, err)
	assert.Equal(t, items, got)

	assert.Error(t, v.SetBlobArray(alloc, [][]byte{{}}))
	assert.Error(t, v.SetBlobArray(alloc, [][]byte{make([]byte, 256)}))
}

func TestBlobArrayEdges(t *testing.T) {
	alloc := NewHeapAllocator()
	var v PropVariant

	require.NoError(t, v.SetBytes(alloc, []byte{2, 'a', 'b', 1, 'c'}))
	got, err := v.AsBlobArray()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("ab"), []byte("c")}, got)

	require.NoError(t, v.SetBytes(alloc, []byte{1, 'a', 0, 3, 'x'}))
	got, err = v.AsBlobArray()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a")}, got)

	require.NoError(t, v.SetBytes(alloc, []byte{4, 'a'}))
	_, err = v.AsBlobArray()
	assert.True(t, errors.Is(err, ErrTruncated))
}

func TestUUIDRoundTrip(t *testing.T) {
	alloc := NewHeapAllocator()
	var v PropVariant
	u := uuid.MustParse("23170f69-40c1-278a-1000-000110010000")
	require.NoError(t, v.SetUUID(alloc, u))

	raw, err := v.AsBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x69, 0x0f, 0x17, 0x23, 0xc1, 0x40, 0x8a, 0x27}, raw[:8])

	got, err := v.AsUUID()
	require.NoError(t, err)
	assert.Equal(t, u, got)

	require.NoError(t, v.SetBytes(alloc, []byte{1, 2, 3}))
	_, err = v.AsUUID()
	assert.Error(t, err)
}

func TestTimes(t *testing.T) {
	alloc := NewHeapAllocator()
	var v PropVariant
	when := time.Date(2023, time.March, 14, 15, 9, 26, 535897900, time.UTC)

	v.SetFileTime(alloc, when)
	got, err := v.AsTime()
	require.NoError(t, err)
	assert.True(t, when.Equal(got), "%v != %v", when, got)

	v.SetFileTime(alloc, time.Unix(0, 0))
	ticks, err := v.FileTime()
	require.NoError(t, err)
	assert.Equal(t, uint64(fileTimeEpoch), ticks)

	v.SetDate(alloc, time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, 36526.5, *(*float64)(v.payload()))
	got, err = v.AsTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC), got)
}

func TestDecodeErrors(t *testing.T) {
	alloc := NewHeapAllocator()
	var v PropVariant
	v.SetUint32(alloc, 1)

	_, err := v.AsString()
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, VT_UI4, derr.Tag)
	assert.Equal(t, "string", derr.Want)
	assert.Contains(t, err.Error(), "VT_UI4")

	_, err = v.AsBool()
	assert.ErrorAs(t, err, &derr)
	_, err = v.AsTime()
	assert.ErrorAs(t, err, &derr)
	_, err = v.AsFloat()
	assert.ErrorAs(t, err, &derr)

	v.vt = VarType(0x1234)
	_, err = v.Value()
	assert.ErrorAs(t, err, &derr)
	assert.Equal(t, "VT(4660)", v.Type().String())
	assert.False(t, v.Type().Known())
}

func TestEmptyValue(t *testing.T) {
	var v PropVariant
	assert.True(t, v.IsEmpty())
	got, err := v.Value()
	require.NoError(t, err)
	assert.Nil(t, got)
}
