// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// chunkScale turns the cache size into the I/O granularity of a worker.
const chunkScale = 128

// Range is the byte range [Start, End) of the destination buffer one worker
// fills.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

// Partition splits length bytes into numThreads ranges made of whole chunks
// of cacheSize*128 bytes. Every worker gets the same number of chunks and the
// last one also takes the remainder. The ranges are disjoint, ordered and
// cover [0, length); some may be empty.
func Partition(length, cacheSize, numThreads int) ([]Range, error) {
	if numThreads < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNumThreads, numThreads)
	}
	if cacheSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCacheSize, cacheSize)
	}

	chunkSize := cacheSize * chunkScale
	numChunks := (length + chunkSize - 1) / chunkSize

	perThread := numChunks / numThreads
	remaining := numChunks % numThreads

	ranges := make([]Range, numThreads)
	for i := range numThreads {
		startChunk := i * perThread
		endChunk := startChunk + perThread
		if i == numThreads-1 {
			endChunk += remaining
		}

		ranges[i] = Range{
			Start: min(startChunk*chunkSize, length),
			End:   min(endChunk*chunkSize, length),
		}
	}

	return ranges, nil
}

// Threaded reads the samples with Request.NumThreads goroutines. Each one
// opens the file on its own and reads its range straight into the shared
// buffer; ranges never overlap so no locking is involved.
type Threaded struct{}

func (Threaded) Load(req Request) (*Buffer, error) {
	ranges, err := Partition(req.Header.BufferLen(), req.CacheSize, req.NumThreads)
	if err != nil {
		return nil, err
	}

	buf := Allocate(req.Header.BufferLen())
	dst := buf.Bytes()

	var g errgroup.Group
	for _, rg := range ranges {
		if rg.Len() == 0 {
			continue
		}

		g.Go(func() error {
			return readRange(req.Path, req.Header.DataOffset+int64(rg.Start), req.CacheSize, dst[rg.Start:rg.End])
		})
	}

	if err := g.Wait(); err != nil {
		_ = buf.Release()
		return nil, err
	}

	return buf, nil
}

// readRange fills dst from path starting at offset. cacheSize bytes of
// bufio staging belong to this call only.
func readRange(path string, offset int64, cacheSize int, dst []byte) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seeking %s to %d: %w", path, offset, err)
	}

	r := bufio.NewReaderSize(f, cacheSize)

	n, err := io.ReadFull(r, dst)
	if err != nil {
		return fmt.Errorf("%w: got %d of %d bytes at offset %d: %w",
			ErrShortRead, n, len(dst), offset, err)
	}

	return nil
}
