// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Backing tells which strategy produced the bytes of a Buffer and therefore
// how Release gives them back.
type Backing int

const (
	// BackingNone is an empty buffer; releasing it does nothing.
	BackingNone Backing = iota
	// HeapOwned memory belongs to the buffer alone.
	HeapOwned
	// MappedPrivate is a copy-on-write, process local file mapping.
	MappedPrivate
	// MappedShared is a shared file mapping. Changes made to the file by
	// other processes may become visible through it.
	MappedShared
)

func (b Backing) String() string {
	switch b {
	case BackingNone:
		return "none"
	case HeapOwned:
		return "heap"
	case MappedPrivate:
		return "mmap-private"
	case MappedShared:
		return "mmap-shared"
	default:
		return fmt.Sprintf("Backing(%d)", int(b))
	}
}

// Buffer is a contiguous region of sample bytes with exactly one backing.
// The zero value is an empty buffer.
//
// A Buffer is not safe for concurrent Release/Replace; reading Bytes from
// several goroutines is fine.
type Buffer struct {
	data    []byte
	backing Backing
	mapping *Mapping
}

// Allocate returns a HeapOwned buffer of n bytes. n == 0 is valid.
func Allocate(n int) *Buffer {
	return &Buffer{
		data:    make([]byte, n),
		backing: HeapOwned,
	}
}

// AdoptMapping wraps the view of m. The buffer becomes responsible for
// unmapping m's whole region.
func AdoptMapping(m *Mapping, shared bool) *Buffer {
	backing := MappedPrivate
	if shared {
		backing = MappedShared
	}

	return &Buffer{
		data:    m.Bytes(),
		backing: backing,
		mapping: m,
	}
}

// Bytes returns the sample bytes. The slice is only valid until Release.
// Mapped buffers are read-only: writing to them faults.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

func (b *Buffer) Backing() Backing {
	if b == nil {
		return BackingNone
	}
	return b.backing
}

func (b *Buffer) IsMapped() bool {
	return b.Backing() == MappedPrivate || b.Backing() == MappedShared
}

// Release gives the backing back: heap memory is dropped, mappings are
// unmapped. It may be called any number of times, also on a nil or zero
// Buffer.
func (b *Buffer) Release() error {
	if b == nil {
		return nil
	}

	backing := b.backing

	var err error
	if b.mapping != nil {
		err = b.mapping.unmap()
	}

	b.data = nil
	b.mapping = nil
	b.backing = BackingNone

	if err != nil {
		return fmt.Errorf("releasing %s buffer: %w", backing, err)
	}
	return nil
}

// Replace releases the current backing and then takes over src. src is left
// empty. If releasing fails, src keeps its backing.
func (b *Buffer) Replace(src *Buffer) error {
	if b == src {
		return nil
	}

	if err := b.Release(); err != nil {
		return err
	}

	if src == nil {
		return nil
	}

	*b = *src
	*src = Buffer{}

	return nil
}

// Clone copies the bytes into a new HeapOwned buffer.
func (b *Buffer) Clone() *Buffer {
	out := Allocate(b.Len())
	copy(out.data, b.Bytes())
	return out
}
