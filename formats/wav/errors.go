// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSignature    = errors.New("invalid RIFF signature")
	ErrNotWaveFile         = errors.New("not a WAVE file")
	ErrUnsupportedFormat   = errors.New("unsupported audio format")
	ErrInvalidFmtChunkSize = errors.New("invalid fmt chunk size")
	ErrMissingDataMarker   = errors.New("missing data marker")
	ErrMissingFmtChunk     = errors.New("missing fmt chunk")
	ErrTruncatedHeader     = errors.New("truncated header")
	ErrInvalidFmtFields    = errors.New("invalid fmt chunk fields")
)

// HeaderError reports which header validation failed, with the value the
// parser expected and the value it found at Offset.
type HeaderError struct {
	Field    string
	Offset   int64
	Expected string
	Found    string
	Err      error
}

func (e *HeaderError) Error() string {
	if e.Expected == "" && e.Found == "" {
		return fmt.Sprintf("wav: %s at offset %d: %v", e.Field, e.Offset, e.Err)
	}
	return fmt.Sprintf("wav: %s at offset %d: expected %s, found %s: %v",
		e.Field, e.Offset, e.Expected, e.Found, e.Err)
}

func (e *HeaderError) Unwrap() error { return e.Err }
