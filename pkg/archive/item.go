package archive

import (
	"bytes"
	"fmt"
	"io"
	"time"
)

// Item is one entry of an open archive. Its properties are read on demand
// and cached by the archive.
type Item struct {
	archive *Archive
	index   int
}

// Index returns the handler's index of the item.
func (it *Item) Index() int {
	return it.index
}

// Archive returns the archive the item belongs to.
func (it *Item) Archive() *Archive {
	return it.archive
}

// PropertyByID reads a decoded property. Absent properties read as nil.
func (it *Item) PropertyByID(id PropID) (any, error) {
	return it.archive.itemProperty(it.index, id)
}

// Property reads a property by name, e.g. "path", "is_dir" or "crc".
func (it *Item) Property(name string) (any, error) {
	id, ok := PropIDByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	return it.PropertyByID(id)
}

func (it *Item) stringProp(id PropID) (string, error) {
	v, err := it.PropertyByID(id)
	if err != nil {
		return "", err
	}
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	}
	return "", fmt.Errorf("item %d property %s: unexpected %T", it.index, id, v)
}

func (it *Item) boolProp(id PropID) (bool, error) {
	v, err := it.PropertyByID(id)
	if err != nil {
		return false, err
	}
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	}
	return false, fmt.Errorf("item %d property %s: unexpected %T", it.index, id, v)
}

func (it *Item) uintProp(id PropID) (uint64, bool, error) {
	v, err := it.PropertyByID(id)
	if err != nil {
		return 0, false, err
	}
	switch x := v.(type) {
	case nil:
		return 0, false, nil
	case uint64:
		return x, true, nil
	case int64:
		if x >= 0 {
			return uint64(x), true, nil
		}
	}
	return 0, false, fmt.Errorf("item %d property %s: unexpected %v", it.index, id, v)
}

// Path returns the item's path inside the archive with the handler's
// separators.
func (it *Item) Path() (string, error) {
	return it.stringProp(PropPath)
}

// IsDir reports whether the item is a directory.
func (it *Item) IsDir() (bool, error) {
	return it.boolProp(PropIsDir)
}

// Encrypted reports whether the item needs a password.
func (it *Item) Encrypted() (bool, error) {
	return it.boolProp(PropEncrypted)
}

// CRC returns the stored CRC32. ok is false when the handler has none.
func (it *Item) CRC() (crc uint32, ok bool, err error) {
	v, ok, err := it.uintProp(PropCRC)
	return uint32(v), ok, err
}

// Size returns the unpacked size.
func (it *Item) Size() (uint64, error) {
	v, _, err := it.uintProp(PropSize)
	return v, err
}

// PackSize returns the packed size.
func (it *Item) PackSize() (uint64, error) {
	v, _, err := it.uintProp(PropPackSize)
	return v, err
}

// ModTime returns the modification time, or the zero time when unknown.
func (it *Item) ModTime() (time.Time, error) {
	v, err := it.PropertyByID(PropMTime)
	if err != nil {
		return time.Time{}, err
	}
	switch x := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return x, nil
	}
	return time.Time{}, fmt.Errorf("item %d property %s: unexpected %T", it.index, PropMTime, v)
}

// ExtractTo writes the item's content to w. An empty password falls back to
// the one given at open time.
func (it *Item) ExtractTo(w io.Writer, password string) error {
	return it.archive.ExtractItem(it, w, ExtractOptions{Password: password})
}

// Bytes extracts the item into memory.
func (it *Item) Bytes(password string) ([]byte, error) {
	var buf bytes.Buffer
	if err := it.ExtractTo(&buf, password); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (it *Item) String() string {
	p, err := it.Path()
	if err != nil || p == "" {
		return fmt.Sprintf("#%d", it.index)
	}
	return p
}
