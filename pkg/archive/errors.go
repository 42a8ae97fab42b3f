package archive

import (
	"errors"
	"fmt"
)

var (
	ErrClosed           = errors.New("archive: closed")
	ErrNoFormat         = errors.New("archive: no format could open the input")
	ErrUnknownFormat    = errors.New("archive: unknown format")
	ErrInvalidIndices   = errors.New("archive: indices must be strictly ascending and in range")
	ErrForeignItem      = errors.New("archive: item belongs to another archive")
	ErrItemNotFound     = errors.New("archive: no such item")
	ErrPathEscape       = errors.New("archive: item path escapes the target directory")
	ErrPasswordRequired = errors.New("archive: password required")
	ErrUnknownProperty  = errors.New("archive: unknown property")
)

// ExtractError reports an item the handler could not extract cleanly.
type ExtractError struct {
	Index  int
	Path   string
	Result OperationResult
}

func (e *ExtractError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("archive: extract item %d (%s): %s", e.Index, e.Path, e.Result)
	}
	return fmt.Sprintf("archive: extract item %d: %s", e.Index, e.Result)
}
