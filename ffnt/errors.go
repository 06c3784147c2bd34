package ffnt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors returned by Parse and Load.
var (
	// ErrBadMagic is returned when the blob does not start with "fFNT".
	ErrBadMagic = errors.New("ffnt: bad magic")

	// ErrVersion is returned for any version other than 1.
	ErrVersion = errors.New("ffnt: unsupported version")

	// ErrTruncated is returned when the header or page table runs past the
	// end of the blob.
	ErrTruncated = errors.New("ffnt: truncated font data")
)

// PageError reports a page whose table entry or contents are inconsistent
// with the blob.
type PageError struct {
	Page   int
	Reason string
}

func (e *PageError) Error() string {
	return fmt.Sprintf("ffnt: page %d: %s", e.Page, e.Reason)
}
