// SPDX-License-Identifier: EPL-2.0

// Package fastwave loads PCM WAVE files into a flat sample buffer.
//
// The header is parsed once and the samples are then obtained with one of
// several strategies, selected by ReadMode:
//   - ModeDefault reads the samples sequentially into heap memory
//   - ModeThreads splits the samples into ranges read in parallel, each by
//     its own goroutine with its own file handle
//   - ModeMmapPrivate and ModeMmapShared map the file and expose the samples
//     without copying
//   - ModeInfoOnly only parses the header
//
// # Quick Start
//
//	a, err := fastwave.Read("speech.wav", fastwave.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	fmt.Println(a.Header.NumSamples, a.Header.Duration, a.Shape())
//
// For large files on fast storage ModeThreads with a few workers, or one of
// the mapped modes, is usually faster than the default:
//
//	opts := fastwave.DefaultOptions()
//	opts.Mode = fastwave.ModeThreads
//	opts.NumThreads = 4
//	a, err := fastwave.Read("long.wav", opts)
//
// # Samples
//
// Audio.Data returns the raw interleaved bytes. Audio.Int16s gives a zero
// copy []int16 view of 16-bit data and Audio.IntBuffer converts to a go-audio
// IntBuffer for use with the rest of the go-audio ecosystem.
//
// Only mono and stereo files can be loaded. Info reads just the header and
// accepts any channel count.
//
// # Subpackages
//
//   - formats/wav parses RIFF and RIFX headers
//   - audio holds the sample buffer, its backings and the loaders
//   - utils decodes native width PCM samples
package fastwave
