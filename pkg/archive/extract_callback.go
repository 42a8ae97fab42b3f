package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"lib7zip/pkg/ffi7z"
	"lib7zip/pkg/hresult"
	"lib7zip/pkg/idl"
	"lib7zip/pkg/logger"
	"lib7zip/pkg/propvar"
)

// sink decides where the bytes of an item go. A nil writer skips the item.
// discard drops what open produced for a failed item; finish runs once after
// the last item.
type sink interface {
	open(index int) (io.Writer, error)
	discard(index int) error
	finish() error
}

// dirSink recreates items below dir.
type dirSink struct {
	archive         *Archive
	fs              afero.Fs
	dir             string
	stripComponents int

	files map[int]string
	dirs  []dirTime
}

type dirTime struct {
	path  string
	mtime time.Time
}

// target maps an item path below the sink directory. ok is false for items
// swallowed entirely by stripComponents.
func (s *dirSink) target(itemPath string) (path string, ok bool, err error) {
	parts := strings.FieldsFunc(filepath.ToSlash(itemPath), func(r rune) bool { return r == '/' || r == '\\' })
	if len(parts) <= s.stripComponents {
		return "", false, nil
	}
	parts = parts[s.stripComponents:]

	root := filepath.Clean(s.dir)
	path = filepath.Join(append([]string{root}, parts...)...)
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false, fmt.Errorf("%w: %s", ErrPathEscape, itemPath)
	}
	return path, true, nil
}

func (s *dirSink) open(index int) (io.Writer, error) {
	item, err := s.archive.Item(index)
	if err != nil {
		return nil, err
	}
	itemPath, err := item.Path()
	if err != nil {
		return nil, err
	}
	if itemPath == "" {
		itemPath = s.archive.defaultItemName(index)
	}
	isDir, err := item.IsDir()
	if err != nil {
		return nil, err
	}
	path, ok, err := s.target(itemPath)
	if err != nil || !ok {
		return nil, err
	}
	mtime, _ := item.ModTime()
	if isDir {
		if err := s.fs.MkdirAll(path, 0755); err != nil {
			return nil, err
		}
		if !mtime.IsZero() {
			s.dirs = append(s.dirs, dirTime{path: path, mtime: mtime})
		}
		return nil, nil
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return nil, err
	}
	if s.files == nil {
		s.files = make(map[int]string)
	}
	s.files[index] = path
	return &itemFile{File: f, fs: s.fs, mtime: mtime}, nil
}

// discard removes the partial file of a failed item.
func (s *dirSink) discard(index int) error {
	path, ok := s.files[index]
	if !ok {
		return nil
	}
	delete(s.files, index)
	if err := s.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// finish stamps directory times. Creating entries inside a directory moves
// its mtime, so this waits until every item is written.
func (s *dirSink) finish() error {
	var errs []error
	for i := len(s.dirs) - 1; i >= 0; i-- {
		d := s.dirs[i]
		if err := s.fs.Chtimes(d.path, d.mtime, d.mtime); err != nil {
			errs = append(errs, err)
		}
	}
	s.dirs = nil
	return errors.Join(errs...)
}

// itemFile stamps the item's modification time once it is closed.
type itemFile struct {
	afero.File
	fs    afero.Fs
	mtime time.Time
}

func (f *itemFile) Close() error {
	if err := f.File.Close(); err != nil {
		return err
	}
	if f.mtime.IsZero() {
		return nil
	}
	return f.fs.Chtimes(f.Name(), f.mtime, f.mtime)
}

// writerSink sends a single item to w.
type writerSink struct {
	w     io.Writer
	index int
}

func (s *writerSink) open(index int) (io.Writer, error) {
	if index != s.index {
		return nil, nil
	}
	// Hide any Close method; the caller owns w.
	return struct{ io.Writer }{s.w}, nil
}

func (s *writerSink) discard(int) error { return nil }

func (s *writerSink) finish() error { return nil }

// extractCallback drives one Extract call. Each item's writer is released
// when its result arrives and again, defensively, before the next item is
// requested, so at most one file is open at a time.
type extractCallback struct {
	archive  *Archive
	sink     sink
	alloc    propvar.Allocator
	password string
	progress func(completed, total uint64)

	total   uint64
	mode    AskMode
	index   int
	current *outStream

	// Handed-out streams stay reachable until Extract returns; the handler
	// may release them late.
	streams []*ffi7z.Unknown

	results int
	failed  *ExtractError
	err     error
}

func newExtractCallback(a *Archive, s sink, opts ExtractOptions) (*extractCallback, *ffi7z.Unknown) {
	cb := &extractCallback{
		archive:  a,
		sink:     s,
		alloc:    a.alloc,
		password: opts.Password,
		progress: opts.Progress,
		index:    -1,
	}
	if cb.password == "" {
		cb.password = a.password
	}
	return cb, ffi7z.NewUnknown(cb,
		idl.IArchiveExtractCallback,
		idl.ICryptoGetTextPassword,
		idl.ICryptoGetTextPassword2,
		idl.ICompressProgressInfo,
	)
}

func (cb *extractCallback) SetTotal(total uint64) error {
	cb.total = total
	if cb.progress != nil {
		cb.progress(0, total)
	}
	return nil
}

func (cb *extractCallback) SetCompleted(completeValue *uint64) error {
	if cb.progress != nil && completeValue != nil {
		cb.progress(*completeValue, cb.total)
	}
	return nil
}

func (cb *extractCallback) SetRatioInfo(inSize *uint64, outSize *uint64) error {
	return nil
}

func (cb *extractCallback) fail(err error) {
	if cb.err == nil {
		cb.err = err
	}
}

// releaseCurrent closes the writer of the item in flight, if any.
func (cb *extractCallback) releaseCurrent() {
	if cb.current == nil {
		return
	}
	if err := cb.current.release(); err != nil {
		cb.fail(fmt.Errorf("close item %d: %w", cb.index, err))
	}
	cb.current = nil
}

func (cb *extractCallback) GetStream(index uint32, outStream **ffi7z.ISequentialOutStream, askExtractMode int32) error {
	if outStream == nil {
		return hresult.E_POINTER
	}
	*outStream = nil
	cb.releaseCurrent()
	cb.index = int(index)

	if AskMode(askExtractMode) != AskExtract {
		return nil
	}
	w, err := cb.sink.open(int(index))
	if err != nil {
		cb.fail(err)
		if errors.Is(err, ErrPathEscape) {
			logger.Warn("Refusing item outside target directory", "index", index, "err", err)
			return hresult.E_ACCESSDENIED
		}
		return hresult.E_FAIL
	}
	if w == nil {
		return nil
	}
	s, unk := newOutStream(w)
	cb.current = s
	cb.streams = append(cb.streams, unk)
	*outStream = (*ffi7z.ISequentialOutStream)(unk.Handle(idl.ISequentialOutStream))
	return nil
}

func (cb *extractCallback) PrepareOperation(askExtractMode int32) error {
	cb.mode = AskMode(askExtractMode)
	return nil
}

func (cb *extractCallback) SetOperationResult(opResult int32) error {
	result := OperationResult(opResult)
	cb.releaseCurrent()
	cb.results++
	if result == ResultOK {
		return nil
	}
	if err := cb.sink.discard(cb.index); err != nil {
		cb.fail(fmt.Errorf("remove item %d: %w", cb.index, err))
	}
	if cb.failed == nil {
		cb.failed = &ExtractError{Index: cb.index, Result: result}
		if item, err := cb.archive.Item(cb.index); err == nil {
			cb.failed.Path, _ = item.Path()
		}
		logger.Debug("Item failed", "index", cb.index, "mode", cb.mode.String(), "result", result.String())
	}
	return nil
}

func (cb *extractCallback) CryptoGetTextPassword(password **propvar.WChar) error {
	if password == nil {
		return hresult.E_POINTER
	}
	*password = nil
	if cb.password == "" {
		cb.fail(ErrPasswordRequired)
		return hresult.E_ABORT
	}
	p, err := allocString(cb.alloc, cb.password)
	if err != nil {
		return err
	}
	*password = p
	return nil
}

func (cb *extractCallback) CryptoGetTextPassword2(passwordIsDefined *int32, password **propvar.WChar) error {
	if passwordIsDefined != nil {
		*passwordIsDefined = 0
		if cb.password != "" {
			*passwordIsDefined = 1
		}
	}
	if password == nil {
		return nil
	}
	p, err := allocString(cb.alloc, cb.password)
	if err != nil {
		return err
	}
	*password = p
	return nil
}

// result folds the native status and the recorded item results into the
// outcome of the Extract call. Both must be clean.
func (cb *extractCallback) result(code hresult.Code, requested int) error {
	cb.releaseCurrent()
	if err := cb.sink.finish(); err != nil {
		cb.fail(fmt.Errorf("set directory times: %w", err))
	}
	nativeErr := hresult.Check("Extract", code)
	switch {
	case cb.err != nil && nativeErr != nil:
		return fmt.Errorf("%w (%v)", cb.err, nativeErr)
	case cb.err != nil:
		return cb.err
	case nativeErr != nil:
		return nativeErr
	case cb.failed != nil:
		return cb.failed
	case cb.results == 0 && requested > 0:
		return fmt.Errorf("archive: extract reported no results: %w", hresult.E_FAIL)
	}
	return nil
}
