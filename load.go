// SPDX-License-Identifier: EPL-2.0

package fastwave

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ik5/fastwave/audio"
	"github.com/ik5/fastwave/formats/wav"
)

type ReadMode = audio.ReadMode

const (
	ModeDefault     = audio.ModeDefault
	ModeThreads     = audio.ModeThreads
	ModeMmapPrivate = audio.ModeMmapPrivate
	ModeMmapShared  = audio.ModeMmapShared
	ModeInfoOnly    = audio.ModeInfoOnly
)

// ParseReadMode converts a mode name such as "threads" or "mmap-shared".
func ParseReadMode(s string) (ReadMode, error) {
	return audio.ParseReadMode(s)
}

const (
	// DefaultCacheSize is the stream buffer size in bytes. In ModeThreads a
	// worker reads chunks of 128 times this size.
	DefaultCacheSize = 131072
	// DefaultNumThreads is the number of workers in ModeThreads.
	DefaultNumThreads = 8
)

// Options configure Read. NumThreads is only used by ModeThreads, but both
// CacheSize and NumThreads must be at least 1 in every mode, including
// ModeInfoOnly; Read fails with ErrInvalidCacheSize or ErrInvalidNumThreads
// otherwise.
type Options struct {
	Mode       ReadMode
	CacheSize  int
	NumThreads int
}

func DefaultOptions() Options {
	return Options{
		Mode:       ModeDefault,
		CacheSize:  DefaultCacheSize,
		NumThreads: DefaultNumThreads,
	}
}

func (o Options) validate() error {
	if o.CacheSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheSize, o.CacheSize)
	}
	if o.NumThreads < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidNumThreads, o.NumThreads)
	}
	return nil
}

var defaultRegistry = audio.DefaultRegistry()

// Read parses the header of the WAVE file at path and loads its samples with
// the strategy selected by opts.Mode.
//
// Either a complete Audio or an error is returned, never both. The caller
// owns the result and must Close it when the samples are no longer used;
// for mapped modes this unmaps the file.
//
// Example:
//
//	a, err := fastwave.Read("speech.wav", fastwave.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	samples, err := a.Int16s()
func Read(path string, opts Options) (*Audio, error) {
	return ReadWith(defaultRegistry, path, opts)
}

// ReadWith is Read with the loaders of reg.
func ReadWith(reg *audio.Registry, path string, opts Options) (*Audio, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer file.Close()

	stream := bufio.NewReaderSize(file, opts.CacheSize)

	header, err := wav.Parse(stream)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	buf := &audio.Buffer{}

	if opts.Mode != ModeInfoOnly {
		loader, ok := reg.Get(opts.Mode)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownReadMode, opts.Mode)
		}

		// The declared data size is untrusted; refuse it before any loader
		// allocates or maps that much.
		if err := checkLength(file, header); err != nil {
			return nil, fmt.Errorf("loading %s (%s): %w", path, opts.Mode, err)
		}

		buf, err = loader.Load(audio.Request{
			Path:       path,
			Header:     header,
			Stream:     stream,
			CacheSize:  opts.CacheSize,
			NumThreads: opts.NumThreads,
		})
		if err != nil {
			return nil, fmt.Errorf("loading %s (%s): %w", path, opts.Mode, err)
		}
	}

	if header.NumChannels == 0 || header.NumChannels > 2 {
		_ = buf.Release()
		return nil, fmt.Errorf("%w: %s has %d, only mono and stereo are supported",
			ErrInvalidChannelCount, path, header.NumChannels)
	}

	return &Audio{
		Header: header,
		Buffer: buf,
	}, nil
}

func checkLength(file *os.File, header wav.Header) error {
	st, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	end := header.DataOffset + int64(header.BufferLen())
	if end > st.Size() {
		return fmt.Errorf("%w: file has %d bytes, samples end at %d",
			ErrShortRead, st.Size(), end)
	}

	return nil
}

// Info parses only the header of the WAVE file at path.
func Info(path string) (wav.Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return wav.Header{}, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer file.Close()

	header, err := wav.Parse(bufio.NewReader(file))
	if err != nil {
		return wav.Header{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return header, nil
}
