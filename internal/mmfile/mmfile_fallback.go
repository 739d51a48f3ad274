//go:build !unix

package mmfile

import "fmt"

// MapAnon falls back to a Go-allocated slice when mmap is not available.
func MapAnon(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmfile: invalid mapping size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
