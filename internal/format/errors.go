package format

import "errors"

// ErrTruncated indicates the buffer lacked the bytes required for a header.
var ErrTruncated = errors.New("format: truncated buffer")
