// SPDX-License-Identifier: EPL-2.0

//go:build unix

package audio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapFile maps the whole file at path read-only and returns the view of
// length bytes starting at offset.
func MapFile(path string, offset int64, length int, shared bool) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	// The mapping outlives the descriptor.
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	size := st.Size()
	if offset+int64(length) > size {
		return nil, fmt.Errorf("%w: %s has %d bytes, samples end at %d",
			ErrShortRead, path, size, offset+int64(length))
	}

	flags := unix.MAP_PRIVATE
	if shared {
		flags = unix.MAP_SHARED
	}

	region, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, flags|populateFlag)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	m, err := NewMapping(region, int(offset), length)
	if err != nil {
		_ = unix.Munmap(region)
		return nil, err
	}

	return m, nil
}

func munmap(region []byte) error {
	if err := unix.Munmap(region); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}
