// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Sequential reads the samples from Request.Stream into heap memory.
type Sequential struct{}

func (Sequential) Load(req Request) (*Buffer, error) {
	if req.Stream == nil {
		return nil, fmt.Errorf("%w: no stream for %s", ErrFileOpen, req.Path)
	}

	want := req.Header.BufferLen()
	buf := Allocate(want)

	n, err := io.ReadFull(req.Stream, buf.Bytes())
	if err != nil {
		_ = buf.Release()
		return nil, fmt.Errorf("%w: got %d of %d bytes at offset %d: %w",
			ErrShortRead, n, want, req.Header.DataOffset, err)
	}

	return buf, nil
}
