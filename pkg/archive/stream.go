package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unsafe"

	"lib7zip/pkg/ffi7z"
	"lib7zip/pkg/hresult"
	"lib7zip/pkg/idl"
	"lib7zip/pkg/logger"
)

// maxEmptyReads bounds the (0, nil) reads tolerated before a read fails with
// io.ErrNoProgress, as bufio does.
const maxEmptyReads = 100

// inStream serves IInStream from an io.ReadSeeker.
type inStream struct {
	r io.ReadSeeker
}

func newInStream(r io.ReadSeeker) *ffi7z.Unknown {
	return ffi7z.NewUnknown(&inStream{r: r}, idl.IInStream)
}

// Read fills at most size bytes. Zero bytes with a nil error mean end of
// stream.
func (s *inStream) Read(data unsafe.Pointer, size uint32, processedSize *uint32) error {
	if processedSize != nil {
		*processedSize = 0
	}
	if size == 0 {
		return nil
	}
	buf := unsafe.Slice((*byte)(data), size)
	for i := 0; i < maxEmptyReads; i++ {
		n, err := s.r.Read(buf)
		if processedSize != nil {
			*processedSize = uint32(n)
		}
		if n > 0 || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
	}
	return fmt.Errorf("read: %w", io.ErrNoProgress)
}

func (s *inStream) Seek(offset int64, seekOrigin uint32, newPosition *uint64) error {
	if seekOrigin > io.SeekEnd {
		return hresult.E_INVALIDARG
	}
	pos, err := s.r.Seek(offset, int(seekOrigin))
	if err != nil {
		logger.Debug("Seek failed", "offset", offset, "origin", seekOrigin, "err", err)
		return hresult.E_INVALIDARG
	}
	if newPosition != nil {
		*newPosition = uint64(pos)
	}
	return nil
}

// outStream serves ISequentialOutStream from an io.Writer. After release the
// writer is dropped and further writes fail.
type outStream struct {
	w       io.Writer
	written int64
}

func newOutStream(w io.Writer) (*outStream, *ffi7z.Unknown) {
	s := &outStream{w: w}
	return s, ffi7z.NewUnknown(s, idl.ISequentialOutStream)
}

func (s *outStream) Write(data unsafe.Pointer, size uint32, processedSize *uint32) error {
	if processedSize != nil {
		*processedSize = 0
	}
	if s.w == nil {
		return fmt.Errorf("write after release: %w", os.ErrClosed)
	}
	if size == 0 {
		return nil
	}
	n, err := s.w.Write(unsafe.Slice((*byte)(data), size))
	s.written += int64(n)
	if processedSize != nil {
		*processedSize = uint32(n)
	}
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// release closes the writer if it is a Closer and detaches it.
func (s *outStream) release() error {
	w := s.w
	s.w = nil
	if c, ok := w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
