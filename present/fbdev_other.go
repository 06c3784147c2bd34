//go:build !linux

package present

import "github.com/ffnt/fbtext"

// FBDev is unavailable on this platform.
type FBDev struct{}

var _ fbtext.Presenter = (*FBDev)(nil)

// OpenFBDev always returns ErrUnsupported.
func OpenFBDev(FBDevOptions) (*FBDev, error) {
	return nil, ErrUnsupported
}

// Buffer returns nil.
func (*FBDev) Buffer() []byte { return nil }

// Present returns ErrUnsupported.
func (*FBDev) Present() error { return ErrUnsupported }

// Close does nothing.
func (*FBDev) Close() error { return nil }
