// SPDX-License-Identifier: EPL-2.0

// Package wav parses the header of RIFF/WAVE files.
//
// Both byte orders are supported: "RIFF" files are little-endian and "RIFX"
// files big-endian. Every multi-byte field is decoded with Unpack2 or
// Unpack4 using the order selected by the signature.
//
// # Supported Layout
//
// Currently supported:
//   - PCM format tag (1) only
//   - The canonical 16 byte fmt chunk
//   - A data chunk directly after fmt
//   - Any chunks before fmt (LIST, JUNK, ...) are skipped by their size
//
// # Parsing
//
//	f, _ := os.Open("audio.wav")
//	h, err := wav.Parse(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(h.NumChannels, h.SampleRate, h.NumSamples, h.Duration)
//
// After Parse the reader is positioned at the first sample byte, which is
// also recorded in Header.DataOffset.
//
// # Error Handling
//
// Parse returns a *HeaderError naming the failed field with the expected and
// found values. It wraps one of:
//   - ErrInvalidSignature: neither "RIFF" nor "RIFX"
//   - ErrNotWaveFile: no "WAVE" form type
//   - ErrInvalidFmtChunkSize: fmt chunk is not 16 bytes
//   - ErrUnsupportedFormat: format tag is not PCM
//   - ErrMissingDataMarker: "data" does not follow fmt
//   - ErrMissingFmtChunk: input ended before a fmt chunk
//   - ErrTruncatedHeader: input ended inside the header
//   - ErrInvalidFmtFields: zero frame size or sample rate
//
// Example:
//
//	if errors.Is(err, wav.ErrUnsupportedFormat) {
//	    fmt.Println("not PCM")
//	}
//
// # File Format
//
// A canonical file consists of:
//   - RIFF header (12 bytes): signature, size, "WAVE"
//   - fmt chunk (24 bytes): format, channels, sample rate, byte rate,
//     block align, bit depth
//   - data chunk header (8 bytes), then the samples
package wav
