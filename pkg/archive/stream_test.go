package archive

import (
	"bytes"
	"io"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lib7zip/pkg/ffi7z"
	"lib7zip/pkg/hresult"
	"lib7zip/pkg/idl"
)

// stallingReader answers (0, nil) for the first stalls reads.
type stallingReader struct {
	*bytes.Reader
	stalls int
	calls  int
}

func (r *stallingReader) Read(p []byte) (int, error) {
	r.calls++
	if r.stalls < 0 || r.calls <= r.stalls {
		return 0, nil
	}
	return r.Reader.Read(p)
}

func TestInStreamRetriesEmptyReads(t *testing.T) {
	r := &stallingReader{Reader: bytes.NewReader([]byte("data")), stalls: 3}
	s := &inStream{r: r}

	buf := make([]byte, 8)
	var n uint32
	require.NoError(t, s.Read(unsafe.Pointer(&buf[0]), uint32(len(buf)), &n))
	assert.Equal(t, "data", string(buf[:n]))
	assert.Equal(t, 4, r.calls)
}

func TestInStreamStopsWithoutProgress(t *testing.T) {
	r := &stallingReader{Reader: bytes.NewReader([]byte("data")), stalls: -1}
	s := &inStream{r: r}

	buf := make([]byte, 8)
	var n uint32
	err := s.Read(unsafe.Pointer(&buf[0]), uint32(len(buf)), &n)
	assert.ErrorIs(t, err, io.ErrNoProgress)
	assert.Zero(t, n)
	assert.Equal(t, maxEmptyReads, r.calls)

	// Through the vtable the error has no status of its own.
	unk := newInStream(&stallingReader{Reader: bytes.NewReader(nil), stalls: -1})
	defer runtime.KeepAlive(unk)
	h := (*ffi7z.IInStream)(unk.Handle(idl.IInStream))
	assert.Equal(t, hresult.E_UNEXPECTED, h.Read(unsafe.Pointer(&buf[0]), uint32(len(buf)), &n))
}

func TestInStreamEOF(t *testing.T) {
	s := &inStream{r: bytes.NewReader(nil)}
	buf := make([]byte, 4)
	n := uint32(9)
	require.NoError(t, s.Read(unsafe.Pointer(&buf[0]), uint32(len(buf)), &n))
	assert.Zero(t, n)
}
