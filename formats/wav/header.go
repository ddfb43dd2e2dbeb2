// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-audio/riff"
)

// Format is the format tag of the fmt chunk.
type Format uint16

const (
	FormatUnknown    Format = 0x0000
	FormatPCM        Format = 0x0001
	FormatIEEEFloat  Format = 0x0003
	FormatALaw       Format = 0x0006
	FormatMULaw      Format = 0x0007
	FormatExtensible Format = 0xFFFE
)

func (f Format) String() string {
	switch f {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	case FormatALaw:
		return "A-law"
	case FormatMULaw:
		return "mu-law"
	case FormatExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("unknown(0x%04X)", uint16(f))
	}
}

// rifxID is the big-endian counterpart of riff.RiffID.
var rifxID = [4]byte{'R', 'I', 'F', 'X'}

const (
	// pcmFmtChunkSize is the size of the canonical PCM fmt chunk body.
	pcmFmtChunkSize = 16
	// fmtAndDataHeaderSize covers the fmt size field, the fmt body and the
	// data chunk id and size that follow it.
	fmtAndDataHeaderSize = 4 + pcmFmtChunkSize + 4 + 4
)

// Header describes a parsed RIFF/RIFX WAVE file. It is built once by Parse
// and never modified afterwards.
type Header struct {
	Endianness     Endianness
	Format         Format
	NumChannels    uint16
	SampleRate     uint32
	ByteRate       uint32
	BytesPerSample uint16 // block alignment, as declared by the fmt chunk
	BitDepth       uint16

	// FileSize is the declared RIFF size plus the 8 bytes of the RIFF header.
	// It is informational and is not checked against the real file length.
	FileSize uint64
	// DataSize is the declared length of the data chunk in bytes.
	DataSize uint32

	NumSamples uint32
	Duration   float64 // seconds

	// DataOffset is the position of the first sample byte from the file start.
	DataOffset int64
}

// FrameSize is the number of bytes one sample of every channel occupies.
func (h Header) FrameSize() int {
	return int(h.NumChannels) * int(h.BitDepth) / 8
}

// SampleWidth is the size in bytes of a single channel sample.
func (h Header) SampleWidth() int {
	return (int(h.BitDepth) + 7) / 8
}

// BufferLen is the number of sample bytes a loader materializes.
func (h Header) BufferLen() int {
	return int(h.NumSamples) * h.FrameSize()
}

// Shape is (samples) for mono audio and (samples, channels) otherwise.
func (h Header) Shape() []int {
	if h.NumChannels == 1 {
		return []int{int(h.NumSamples)}
	}
	return []int{int(h.NumSamples), int(h.NumChannels)}
}

// DurationTime returns Duration as a time.Duration.
func (h Header) DurationTime() time.Duration {
	return time.Duration(h.Duration * float64(time.Second))
}

func (h Header) String() string {
	return fmt.Sprintf("%s %s, %d ch, %d Hz, %d-bit, %d samples (%.3fs), data at %d",
		h.Format, h.Endianness, h.NumChannels, h.SampleRate, h.BitDepth,
		h.NumSamples, h.Duration, h.DataOffset)
}

// Parse reads a WAVE header from r and leaves r positioned at the first
// sample byte. Chunks that appear before "fmt " are skipped by their declared
// size. The "data" chunk must directly follow the canonical 16 byte PCM fmt
// chunk.
//
// On failure no header is returned; the error is a *HeaderError wrapping one
// of the package sentinels.
func Parse(r io.Reader) (Header, error) {
	p := parser{r: r}

	h, err := p.parse()
	if err != nil {
		return Header{}, err
	}

	return h, nil
}

type parser struct {
	r      io.Reader
	e      Endianness
	offset int64
}

func (p *parser) parse() (Header, error) {
	var h Header

	signature, err := p.read4("signature")
	if err != nil {
		return h, err
	}

	switch signature {
	case riff.RiffID:
		p.e = LittleEndian
	case rifxID:
		p.e = BigEndian
	default:
		return h, p.fail("signature", 0, `"RIFF" or "RIFX"`, quote(signature), ErrInvalidSignature)
	}
	h.Endianness = p.e

	riffSize, err := p.uint32("riff size")
	if err != nil {
		return h, err
	}
	h.FileSize = uint64(riffSize) + 8

	wave, err := p.read4("wave marker")
	if err != nil {
		return h, err
	}
	if wave != riff.WavFormatID {
		return h, p.fail("wave marker", 8, quote(riff.WavFormatID), quote(wave), ErrNotWaveFile)
	}

	h.DataOffset = 12

	for {
		chunkAt := p.offset
		id, err := p.read4("chunk id")
		if err != nil {
			if err == io.EOF {
				return h, p.fail("chunk id", chunkAt, quote(riff.FmtID), "end of input", ErrMissingFmtChunk)
			}
			return h, err
		}
		h.DataOffset += 4

		if id != riff.FmtID {
			skipped, err := p.skipChunk(id)
			if err != nil {
				return h, err
			}
			h.DataOffset += skipped
			continue
		}

		if err := p.readFmt(&h); err != nil {
			return h, err
		}
		h.DataOffset += fmtAndDataHeaderSize

		return h, nil
	}
}

func (p *parser) readFmt(h *Header) error {
	sizeAt := p.offset
	size, err := p.uint32("fmt chunk size")
	if err != nil {
		return err
	}
	if size != pcmFmtChunkSize {
		return p.fail("fmt chunk size", sizeAt, strconv.Itoa(pcmFmtChunkSize),
			strconv.FormatUint(uint64(size), 10), ErrInvalidFmtChunkSize)
	}

	formatAt := p.offset
	tag, err := p.uint16("format tag")
	if err != nil {
		return err
	}
	h.Format = Format(tag)
	if h.Format != FormatPCM {
		return p.fail("format tag", formatAt, FormatPCM.String(), h.Format.String(), ErrUnsupportedFormat)
	}

	if h.NumChannels, err = p.uint16("channel count"); err != nil {
		return err
	}
	if h.SampleRate, err = p.uint32("sample rate"); err != nil {
		return err
	}
	if h.ByteRate, err = p.uint32("byte rate"); err != nil {
		return err
	}
	if h.BytesPerSample, err = p.uint16("block align"); err != nil {
		return err
	}
	if h.BitDepth, err = p.uint16("bit depth"); err != nil {
		return err
	}

	markerAt := p.offset
	marker, err := p.read4("data marker")
	if err != nil {
		return err
	}
	if marker != riff.DataFormatID {
		return p.fail("data marker", markerAt, quote(riff.DataFormatID), quote(marker), ErrMissingDataMarker)
	}

	if h.DataSize, err = p.uint32("data size"); err != nil {
		return err
	}

	frame := h.FrameSize()
	if frame == 0 {
		return p.fail("frame size", formatAt, "at least 1 byte",
			fmt.Sprintf("%d ch x %d bit", h.NumChannels, h.BitDepth), ErrInvalidFmtFields)
	}
	if h.SampleRate == 0 {
		return p.fail("sample rate", formatAt, "non-zero", "0", ErrInvalidFmtFields)
	}

	h.NumSamples = h.DataSize / uint32(frame)
	h.Duration = float64(h.NumSamples) / float64(h.SampleRate)

	return nil
}

// skipChunk discards the body of a chunk the parser does not interpret,
// including the pad byte that follows an odd sized body, and reports how many
// bytes it consumed after the id.
func (p *parser) skipChunk(id [4]byte) (int64, error) {
	field := "size of chunk " + quote(id)
	size, err := p.uint32(field)
	if err != nil {
		return 0, err
	}

	body := int64(size)
	if body%2 == 1 {
		body++
	}

	n, err := io.CopyN(io.Discard, p.r, body)
	p.offset += n
	if err != nil {
		return 0, p.truncated("body of chunk "+quote(id), err)
	}

	return 4 + body, nil
}

func (p *parser) read4(field string) ([4]byte, error) {
	var b [4]byte
	n, err := io.ReadFull(p.r, b[:])
	p.offset += int64(n)
	if err != nil {
		// A clean EOF before an id is reported by the caller.
		if err == io.EOF && field == "chunk id" {
			return b, err
		}
		return b, p.truncated(field, err)
	}
	return b, nil
}

func (p *parser) read2(field string) ([2]byte, error) {
	var b [2]byte
	n, err := io.ReadFull(p.r, b[:])
	p.offset += int64(n)
	if err != nil {
		return b, p.truncated(field, err)
	}
	return b, nil
}

func (p *parser) uint32(field string) (uint32, error) {
	b, err := p.read4(field)
	if err != nil {
		return 0, err
	}
	return uint32(Unpack4(b, p.e)), nil
}

func (p *parser) uint16(field string) (uint16, error) {
	b, err := p.read2(field)
	if err != nil {
		return 0, err
	}
	return uint16(Unpack2(b, p.e)), nil
}

func (p *parser) truncated(field string, err error) error {
	return &HeaderError{
		Field:  field,
		Offset: p.offset,
		Err:    fmt.Errorf("%w: %w", ErrTruncatedHeader, err),
	}
}

func (p *parser) fail(field string, at int64, expected, found string, sentinel error) error {
	return &HeaderError{
		Field:    field,
		Offset:   at,
		Expected: expected,
		Found:    found,
		Err:      sentinel,
	}
}

func quote(id [4]byte) string {
	return strconv.Quote(string(id[:]))
}
