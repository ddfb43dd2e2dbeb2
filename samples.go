// SPDX-License-Identifier: EPL-2.0

package fastwave

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/fastwave/audio"
	"github.com/ik5/fastwave/formats/wav"
	"github.com/ik5/fastwave/utils"
)

// Audio is a parsed header together with the loaded sample bytes.
type Audio struct {
	Header wav.Header
	Buffer *audio.Buffer
}

// Close releases the sample buffer. Calling it more than once is fine.
func (a *Audio) Close() error {
	if a == nil {
		return nil
	}
	return a.Buffer.Release()
}

// Data returns the raw interleaved sample bytes, valid until Close.
func (a *Audio) Data() []byte {
	return a.Buffer.Bytes()
}

// Shape is (samples) for mono and (samples, channels) for stereo.
func (a *Audio) Shape() []int {
	return a.Header.Shape()
}

// Clone copies the samples into heap memory owned by the new Audio, so it
// stays usable after a is closed.
func (a *Audio) Clone() *Audio {
	return &Audio{
		Header: a.Header,
		Buffer: a.Buffer.Clone(),
	}
}

// Int16s returns the samples as int16 values without copying. It needs
// 16-bit samples stored in the host byte order. The slice aliases the buffer
// and is only valid until Close; for mapped modes it is read-only.
func (a *Audio) Int16s() ([]int16, error) {
	if a.Header.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %d-bit samples", ErrViewUnsupported, a.Header.BitDepth)
	}
	if a.Header.Endianness != hostEndianness() {
		return nil, fmt.Errorf("%w: %s samples on a %s host",
			ErrViewUnsupported, a.Header.Endianness, hostEndianness())
	}

	data := a.Data()
	if len(data) < 2 {
		return nil, nil
	}

	return unsafe.Slice((*int16)(unsafe.Pointer(&data[0])), len(data)/2), nil
}

// IntBuffer copies the samples into a go-audio IntBuffer, decoding them with
// the byte order of the file.
func (a *Audio) IntBuffer() (*goaudio.IntBuffer, error) {
	width := a.Header.SampleWidth()
	// NumSamples counts whole bytes per sample, so 12-bit data has no
	// consistent int layout.
	if width == 0 || a.Header.BitDepth%8 != 0 {
		return nil, fmt.Errorf("%w: %d-bit samples", ErrViewUnsupported, a.Header.BitDepth)
	}

	data := make([]int, a.Buffer.Len()/width)
	if _, err := utils.DecodePCM(data, a.Data(), width, a.Header.Endianness); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrViewUnsupported, err)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(a.Header.NumChannels),
			SampleRate:  int(a.Header.SampleRate),
		},
		Data:           data,
		SourceBitDepth: int(a.Header.BitDepth),
	}, nil
}

// Mono returns the samples downmixed to one channel, each value the average
// of its frame. Mono audio is returned unchanged. The result keeps the
// native sample width.
func (a *Audio) Mono() (*goaudio.IntBuffer, error) {
	ib, err := a.IntBuffer()
	if err != nil {
		return nil, err
	}
	if ib.Format.NumChannels == 1 {
		return ib, nil
	}

	n, err := audio.MixMono(ib.Data, ib.Data, ib.Format.NumChannels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	ib.Data = ib.Data[:n]
	ib.Format.NumChannels = 1

	return ib, nil
}

func hostEndianness() wav.Endianness {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	if b[0] == 1 {
		return wav.LittleEndian
	}
	return wav.BigEndian
}
