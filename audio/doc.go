// SPDX-License-Identifier: EPL-2.0

// Package audio owns the sample buffer and the strategies that fill it.
//
// A Buffer is backed by heap memory (HeapOwned) or by a read-only file
// mapping (MappedPrivate, MappedShared). Release frees or unmaps according to
// the backing and is safe to call repeatedly. Replace releases the old
// backing before taking over a new one.
//
// # Loaders
//
// Each Loader produces a Buffer from a Request:
//
//	Sequential{}          // io.ReadFull from the already open stream
//	Threaded{}            // parallel range reads, one file handle per worker
//	Mapped{Shared: false} // mmap, MAP_PRIVATE
//	Mapped{Shared: true}  // mmap, MAP_SHARED
//
// Loaders are looked up by ReadMode in a Registry:
//
//	reg := audio.DefaultRegistry()
//	loader, ok := reg.Get(audio.ModeThreads)
//
// # Threaded reads
//
// Partition splits the buffer into whole chunks of CacheSize*128 bytes, the
// same number per worker with the remainder going to the last one. Workers
// write to disjoint ranges of a single buffer so nothing is locked; the call
// returns after every worker finished.
//
// # Memory mapping
//
// Mapped buffers are views into a mapping of the whole file, offset to the
// first sample byte. They are read-only. A shared mapping may show changes
// made to the file by other processes while it is alive. On platforms
// without mmap the Mapped loader fails with ErrPlatformUnsupported.
package audio
