// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrFileOpen            = errors.New("cannot open file")
	ErrShortRead           = errors.New("short read")
	ErrPlatformUnsupported = errors.New("memory mapping is not supported on this platform")
	ErrInvalidNumThreads   = errors.New("num_threads must be more than 0")
	ErrInvalidCacheSize    = errors.New("cache_size must be more than 0")
	ErrInvalidMapping      = errors.New("view is outside of the mapped region")
	ErrUnknownReadMode     = errors.New("unknown read mode")
	ErrInvalidChannels     = errors.New("channel count must be more than 0")
)
