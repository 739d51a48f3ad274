//go:build unix

package mmfile

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// MapAnon maps size bytes of private anonymous memory. The returned cleanup
// unmaps it and is safe to call more than once.
func MapAnon(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmfile: invalid mapping size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: mmap %d bytes: %w", size, err)
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		data = nil
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
