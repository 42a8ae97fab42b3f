package propvar

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated means a packed payload ended inside an element.
	ErrTruncated = errors.New("propvar: truncated payload")
	// ErrNilVariant is returned for operations on a nil variant.
	ErrNilVariant = errors.New("propvar: nil variant")
	// ErrAlloc means the allocator could not provide a payload buffer.
	ErrAlloc = errors.New("propvar: payload allocation failed")
)

// DecodeError reports a tag that cannot be read as the requested Go type.
type DecodeError struct {
	Tag  VarType
	Want string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("propvar: cannot decode %s as %s", e.Tag, e.Want)
}
