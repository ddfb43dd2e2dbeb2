// SPDX-License-Identifier: EPL-2.0

package fastwave

import (
	"errors"

	"github.com/ik5/fastwave/audio"
	"github.com/ik5/fastwave/formats/wav"
)

var (
	ErrInvalidChannelCount = errors.New("invalid number of channels")
	ErrViewUnsupported     = errors.New("typed view not supported for this layout")
)

// Errors of the underlying packages, for callers that only import fastwave.
var (
	ErrInvalidSignature    = wav.ErrInvalidSignature
	ErrNotWaveFile         = wav.ErrNotWaveFile
	ErrUnsupportedFormat   = wav.ErrUnsupportedFormat
	ErrInvalidFmtChunkSize = wav.ErrInvalidFmtChunkSize
	ErrMissingDataMarker   = wav.ErrMissingDataMarker
	ErrMissingFmtChunk     = wav.ErrMissingFmtChunk
	ErrTruncatedHeader     = wav.ErrTruncatedHeader
	ErrInvalidFmtFields    = wav.ErrInvalidFmtFields

	ErrUnknownReadMode     = audio.ErrUnknownReadMode
	ErrPlatformUnsupported = audio.ErrPlatformUnsupported
	ErrFileOpen            = audio.ErrFileOpen
	ErrShortRead           = audio.ErrShortRead
	ErrInvalidNumThreads   = audio.ErrInvalidNumThreads
	ErrInvalidCacheSize    = audio.ErrInvalidCacheSize
)
