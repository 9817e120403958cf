package source

import "errors"

// ErrUnsupportedFormat is returned by Open when the file extension does not
// name a known roster format.
var ErrUnsupportedFormat = errors.New("unsupported roster format")
