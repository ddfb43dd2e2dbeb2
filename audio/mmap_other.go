// SPDX-License-Identifier: EPL-2.0

//go:build !unix

package audio

// MapFile is unavailable without mmap support.
func MapFile(path string, offset int64, length int, shared bool) (*Mapping, error) {
	return nil, ErrPlatformUnsupported
}

func munmap(region []byte) error {
	return ErrPlatformUnsupported
}
