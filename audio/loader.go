// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ik5/fastwave/formats/wav"
)

// ReadMode selects how sample bytes are obtained.
type ReadMode int

const (
	// ModeDefault reads the samples sequentially from the stream that parsed
	// the header.
	ModeDefault ReadMode = iota
	// ModeThreads reads disjoint ranges of the file in parallel.
	ModeThreads
	// ModeMmapPrivate maps the file copy-on-write.
	ModeMmapPrivate
	// ModeMmapShared maps the file shared.
	ModeMmapShared
	// ModeInfoOnly parses the header and loads nothing.
	ModeInfoOnly
)

func (m ReadMode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeThreads:
		return "threads"
	case ModeMmapPrivate:
		return "mmap-private"
	case ModeMmapShared:
		return "mmap-shared"
	case ModeInfoOnly:
		return "info"
	default:
		return fmt.Sprintf("ReadMode(%d)", int(m))
	}
}

// ParseReadMode accepts the names printed by ReadMode.String and a few
// aliases.
func ParseReadMode(s string) (ReadMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "sequential", "":
		return ModeDefault, nil
	case "threads", "threaded":
		return ModeThreads, nil
	case "mmap-private", "mmap_private", "private":
		return ModeMmapPrivate, nil
	case "mmap-shared", "mmap_shared", "shared":
		return ModeMmapShared, nil
	case "info", "info-only", "info_only":
		return ModeInfoOnly, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReadMode, s)
}

// Request carries everything a Loader may need. Loaders use the fields that
// apply to them.
type Request struct {
	Path   string
	Header wav.Header
	// Stream is positioned at Header.DataOffset.
	Stream     io.Reader
	CacheSize  int
	NumThreads int
}

// Loader produces the sample buffer described by a request. On error no
// buffer is returned and nothing stays allocated or mapped.
type Loader interface {
	Load(req Request) (*Buffer, error)
}

// Registry of loaders by read mode.
type Registry struct {
	loaders map[ReadMode]Loader

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[ReadMode]Loader),
		mtx:     &sync.Mutex{},
	}
}

// DefaultRegistry has a loader for every mode except ModeInfoOnly.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ModeDefault, Sequential{})
	r.Register(ModeThreads, Threaded{})
	r.Register(ModeMmapPrivate, Mapped{Shared: false})
	r.Register(ModeMmapShared, Mapped{Shared: true})
	return r
}

func (r *Registry) Register(mode ReadMode, l Loader) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.loaders[mode] = l
}

func (r *Registry) Get(mode ReadMode) (Loader, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	l, ok := r.loaders[mode]
	return l, ok
}
