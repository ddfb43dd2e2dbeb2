// SPDX-License-Identifier: EPL-2.0

package wavtest

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteFile stores data under t.TempDir and returns its path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// Encode writes interleaved PCM samples with the go-audio/wav encoder, which
// produces the canonical 44 byte header.
func Encode(t testing.TB, name string, sampleRate, channels, bitDepth int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing encoder for %s: %v", path, err)
	}

	return path
}

// Decode reads every sample of path with the go-audio/wav decoder.
func Decode(t testing.TB, path string) *goaudio.IntBuffer {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatalf("%s is not a valid WAV file", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return buf
}

// Ints widens int16 samples for go-audio buffers.
func Ints(samples []int16) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = int(s)
	}
	return out
}
