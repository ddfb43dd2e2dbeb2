// SPDX-License-Identifier: EPL-2.0

// Package wavtest builds WAVE files for tests, including malformed ones.
package wavtest

import (
	"bytes"
	"encoding/binary"
)

// Chunk is an extra chunk written before "fmt ".
type Chunk struct {
	ID   string
	Body []byte
}

// File describes the bytes Build writes. Zero values select the canonical
// layout: "RIFF", "WAVE", 16 byte PCM fmt chunk, "data".
type File struct {
	Signature  string // "RIFF" (default) or "RIFX" or anything else
	Wave       string
	FmtSize    uint32
	Format     uint16
	Channels   uint16
	SampleRate uint32
	BitDepth   uint16
	BlockAlign uint16 // derived from Channels and BitDepth when zero
	DataMarker string
	// DataSize overrides the declared data chunk length when non-zero.
	DataSize uint32
	Before   []Chunk
	Data     []byte
}

func (f File) order() binary.ByteOrder {
	if f.Signature == "RIFX" {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Build serializes f. All header fields use the byte order implied by the
// signature; Data is written as is.
func Build(f File) []byte {
	if f.Signature == "" {
		f.Signature = "RIFF"
	}
	if f.Wave == "" {
		f.Wave = "WAVE"
	}
	if f.FmtSize == 0 {
		f.FmtSize = 16
	}
	if f.Format == 0 {
		f.Format = 1
	}
	if f.DataMarker == "" {
		f.DataMarker = "data"
	}
	if f.BlockAlign == 0 {
		f.BlockAlign = f.Channels * f.BitDepth / 8
	}

	order := f.order()
	byteRate := f.SampleRate * uint32(f.BlockAlign)
	dataSize := uint32(len(f.Data))
	if f.DataSize != 0 {
		dataSize = f.DataSize
	}

	extra := 0
	for _, c := range f.Before {
		extra += 8 + len(c.Body) + len(c.Body)%2
	}

	buf := new(bytes.Buffer)

	// RIFF header
	buf.WriteString(f.Signature)
	binary.Write(buf, order, uint32(36+extra+len(f.Data)))
	buf.WriteString(f.Wave)

	for _, c := range f.Before {
		buf.WriteString(c.ID)
		binary.Write(buf, order, uint32(len(c.Body)))
		buf.Write(c.Body)
		if len(c.Body)%2 == 1 {
			buf.WriteByte(0)
		}
	}

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, order, f.FmtSize)
	binary.Write(buf, order, f.Format)
	binary.Write(buf, order, f.Channels)
	binary.Write(buf, order, f.SampleRate)
	binary.Write(buf, order, byteRate)
	binary.Write(buf, order, f.BlockAlign)
	binary.Write(buf, order, f.BitDepth)

	// data chunk
	buf.WriteString(f.DataMarker)
	binary.Write(buf, order, dataSize)
	buf.Write(f.Data)

	return buf.Bytes()
}

// PCM16 returns frames*channels interleaved samples of a deterministic
// pattern that differs per channel.
func PCM16(channels, frames int) []int16 {
	out := make([]int16, channels*frames)
	for i := range frames {
		for ch := range channels {
			out[i*channels+ch] = int16((i*7919 + ch*104729) % 65536)
		}
	}
	return out
}

// Bytes16 serializes samples with the given byte order.
func Bytes16(samples []int16, order binary.ByteOrder) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		order.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// Mono16 is a canonical little-endian 16-bit mono file.
func Mono16(sampleRate int, samples []int16) []byte {
	return Build(File{
		Channels:   1,
		SampleRate: uint32(sampleRate),
		BitDepth:   16,
		Data:       Bytes16(samples, binary.LittleEndian),
	})
}

// Stereo16 is a canonical little-endian 16-bit stereo file; samples are
// interleaved.
func Stereo16(sampleRate int, samples []int16) []byte {
	return Build(File{
		Channels:   2,
		SampleRate: uint32(sampleRate),
		BitDepth:   16,
		Data:       Bytes16(samples, binary.LittleEndian),
	})
}
