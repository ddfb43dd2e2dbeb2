// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/fastwave/internal/wavtest"
)

// countingReader records how many bytes were taken from r.
type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

func TestParse_Mono8kTwoSeconds(t *testing.T) {
	t.Parallel()

	data := wavtest.Mono16(8000, make([]int16, 16000))

	h, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, LittleEndian, h.Endianness)
	assert.Equal(t, FormatPCM, h.Format)
	assert.Equal(t, uint16(1), h.NumChannels)
	assert.Equal(t, uint16(16), h.BitDepth)
	assert.Equal(t, uint32(8000), h.SampleRate)
	assert.Equal(t, uint32(16000), h.ByteRate)
	assert.Equal(t, uint16(2), h.BytesPerSample)
	assert.Equal(t, uint32(32000), h.DataSize)
	assert.Equal(t, uint32(16000), h.NumSamples)
	assert.InDelta(t, 2.0, h.Duration, 1e-12)
	assert.Equal(t, 2*time.Second, h.DurationTime())
	assert.Equal(t, int64(44), h.DataOffset)
	assert.Equal(t, uint64(len(data)), h.FileSize)
	assert.Equal(t, 32000, h.BufferLen())
	assert.Equal(t, []int{16000}, h.Shape())
}

func TestParse_Stereo44kOneSecond(t *testing.T) {
	t.Parallel()

	data := wavtest.Stereo16(44100, make([]int16, 44100*2))

	h, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, uint16(2), h.NumChannels)
	assert.Equal(t, uint32(44100), h.NumSamples)
	assert.InDelta(t, 1.0, h.Duration, 1e-12)
	assert.Equal(t, 4, h.FrameSize())
	assert.Equal(t, 2, h.SampleWidth())
	assert.Equal(t, 176400, h.BufferLen())
	assert.Equal(t, []int{44100, 2}, h.Shape())
}

func TestParse_NumSamplesAndDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		channels, bitDepth uint16
		rate               uint32
		dataLen            int
		wantSamples        uint32
	}{
		{1, 16, 8000, 2, 1},
		{1, 16, 16000, 32000, 16000},
		{2, 16, 22050, 400, 100},
		{2, 24, 48000, 600, 100},
		{1, 8, 11025, 11025, 11025},
		{2, 32, 96000, 8000, 1000},
		{1, 16, 8000, 0, 0},
		// trailing partial frame is not a sample
		{2, 16, 8000, 10, 2},
	}

	for _, tt := range tests {
		data := wavtest.Build(wavtest.File{
			Channels:   tt.channels,
			SampleRate: tt.rate,
			BitDepth:   tt.bitDepth,
			Data:       make([]byte, tt.dataLen),
		})

		h, err := Parse(bytes.NewReader(data))
		require.NoError(t, err)

		want := uint32(tt.dataLen) / (uint32(tt.channels) * uint32(tt.bitDepth) / 8)
		assert.Equal(t, tt.wantSamples, want)
		assert.Equal(t, want, h.NumSamples)
		assert.InDelta(t, float64(want)/float64(tt.rate), h.Duration, 1e-12)
	}
}

func TestParse_BigEndian(t *testing.T) {
	t.Parallel()

	data := wavtest.Build(wavtest.File{
		Signature:  "RIFX",
		Channels:   2,
		SampleRate: 44100,
		BitDepth:   16,
		Data:       make([]byte, 400),
	})

	h, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, BigEndian, h.Endianness)
	assert.Equal(t, uint16(2), h.NumChannels)
	assert.Equal(t, uint32(44100), h.SampleRate)
	assert.Equal(t, uint16(16), h.BitDepth)
	assert.Equal(t, uint32(400), h.DataSize)
	assert.Equal(t, uint32(100), h.NumSamples)
	assert.Equal(t, int64(44), h.DataOffset)

	// The same bytes read as little-endian would give a different rate.
	rate := [4]byte(data[24:28])
	assert.NotEqual(t, Unpack4(rate, LittleEndian), Unpack4(rate, BigEndian))
	assert.Equal(t, int32(44100), Unpack4(rate, BigEndian))
}

func TestParse_LeavesReaderAtSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{1, -2, 3, -4}
	r := bytes.NewReader(wavtest.Mono16(8000, samples))

	_, err := Parse(r)
	require.NoError(t, err)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, wavtest.Bytes16(samples, binary.LittleEndian), rest)
}

func TestParse_InvalidSignature(t *testing.T) {
	t.Parallel()

	data := wavtest.Build(wavtest.File{Signature: "RIFx", Channels: 1, SampleRate: 8000, BitDepth: 16})
	cr := &countingReader{r: bytes.NewReader(data)}

	h, err := Parse(cr)
	require.ErrorIs(t, err, ErrInvalidSignature)
	assert.Equal(t, Header{}, h)
	assert.Equal(t, 4, cr.n, "nothing after the signature may be consumed")

	var herr *HeaderError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "signature", herr.Field)
	assert.Equal(t, int64(0), herr.Offset)
	assert.Equal(t, `"RIFx"`, herr.Found)
	assert.Contains(t, err.Error(), `expected "RIFF" or "RIFX"`)
}

func TestParse_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		file  wavtest.File
		want  error
		field string
	}{
		{
			name:  "not wave",
			file:  wavtest.File{Wave: "AVI ", Channels: 1, SampleRate: 8000, BitDepth: 16},
			want:  ErrNotWaveFile,
			field: "wave marker",
		},
		{
			name:  "fmt size 18",
			file:  wavtest.File{FmtSize: 18, Channels: 1, SampleRate: 8000, BitDepth: 16},
			want:  ErrInvalidFmtChunkSize,
			field: "fmt chunk size",
		},
		{
			name:  "fmt size 40 big-endian",
			file:  wavtest.File{Signature: "RIFX", FmtSize: 40, Channels: 1, SampleRate: 8000, BitDepth: 16},
			want:  ErrInvalidFmtChunkSize,
			field: "fmt chunk size",
		},
		{
			name:  "IEEE float",
			file:  wavtest.File{Format: 3, Channels: 1, SampleRate: 8000, BitDepth: 32},
			want:  ErrUnsupportedFormat,
			field: "format tag",
		},
		{
			name:  "extensible",
			file:  wavtest.File{Format: 0xFFFE, Channels: 2, SampleRate: 8000, BitDepth: 16},
			want:  ErrUnsupportedFormat,
			field: "format tag",
		},
		{
			name:  "fact after fmt",
			file:  wavtest.File{DataMarker: "fact", Channels: 1, SampleRate: 8000, BitDepth: 16},
			want:  ErrMissingDataMarker,
			field: "data marker",
		},
		{
			name:  "zero channels",
			file:  wavtest.File{Channels: 0, SampleRate: 8000, BitDepth: 16},
			want:  ErrInvalidFmtFields,
			field: "frame size",
		},
		{
			name:  "zero sample rate",
			file:  wavtest.File{Channels: 1, SampleRate: 0, BitDepth: 16},
			want:  ErrInvalidFmtFields,
			field: "sample rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := Parse(bytes.NewReader(wavtest.Build(tt.file)))
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, Header{}, h)

			var herr *HeaderError
			require.ErrorAs(t, err, &herr)
			assert.Equal(t, tt.field, herr.Field)
		})
	}
}

func TestParse_FormatErrorNamesFormat(t *testing.T) {
	t.Parallel()

	data := wavtest.Build(wavtest.File{Format: 6, Channels: 1, SampleRate: 8000, BitDepth: 8})

	_, err := Parse(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "expected PCM, found A-law")
	assert.Contains(t, err.Error(), "offset 20")
}

func TestParse_ThreeChannelsStillParse(t *testing.T) {
	t.Parallel()

	data := wavtest.Build(wavtest.File{Channels: 3, SampleRate: 48000, BitDepth: 16, Data: make([]byte, 60)})

	h, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint16(3), h.NumChannels)
	assert.Equal(t, uint32(10), h.NumSamples)
	assert.Equal(t, []int{10, 3}, h.Shape())
}

func TestParse_SkipsChunksBeforeFmt(t *testing.T) {
	t.Parallel()

	samples := []int16{10, 20, 30}
	data := wavtest.Build(wavtest.File{
		Channels:   1,
		SampleRate: 8000,
		BitDepth:   16,
		Before: []wavtest.Chunk{
			{ID: "JUNK", Body: make([]byte, 28)},
			{ID: "LIST", Body: []byte("INFOISFT\x05\x00\x00\x00Lavf\x00")}, // odd sized, padded
		},
		Data: wavtest.Bytes16(samples, binary.LittleEndian),
	})

	r := bytes.NewReader(data)
	h, err := Parse(r)
	require.NoError(t, err)

	// 44 + JUNK (8+28) + LIST (8+17+1)
	assert.Equal(t, int64(44+36+26), h.DataOffset)
	assert.Equal(t, uint32(3), h.NumSamples)
	assert.Equal(t, wavtest.Bytes16(samples, binary.LittleEndian), data[h.DataOffset:])

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data[h.DataOffset:], rest)
}

func TestParse_SkipsChunksBigEndian(t *testing.T) {
	t.Parallel()

	data := wavtest.Build(wavtest.File{
		Signature:  "RIFX",
		Channels:   1,
		SampleRate: 8000,
		BitDepth:   16,
		Before:     []wavtest.Chunk{{ID: "bext", Body: make([]byte, 256)}},
		Data:       make([]byte, 8),
	})

	h, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(44+8+256), h.DataOffset)
	assert.Equal(t, uint32(4), h.NumSamples)
}

func TestParse_NoFmtChunk(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	buf.WriteString("WAVE")
	buf.WriteString("JUNK")
	binary.Write(buf, binary.LittleEndian, uint32(4))
	buf.Write([]byte{0, 0, 0, 0})

	_, err := Parse(buf)
	require.ErrorIs(t, err, ErrMissingFmtChunk)
}

func TestParse_Truncated(t *testing.T) {
	t.Parallel()

	full := wavtest.Mono16(8000, []int16{1, 2})

	// every cut inside the 44 byte header, except the clean cut right
	// after "WAVE" which is a missing fmt chunk
	for cut := 0; cut < 44; cut++ {
		_, err := Parse(bytes.NewReader(full[:cut]))
		require.Error(t, err, "cut at %d", cut)

		if cut == 12 {
			assert.ErrorIs(t, err, ErrMissingFmtChunk, "cut at %d", cut)
			continue
		}
		assert.ErrorIs(t, err, ErrTruncatedHeader, "cut at %d", cut)
		assert.True(t,
			errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF),
			"cut at %d: %v", cut, err)
	}
}

func TestParse_TruncatedSkippedChunk(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(100))
	buf.WriteString("WAVE")
	buf.WriteString("LIST")
	binary.Write(buf, binary.LittleEndian, uint32(64))
	buf.Write(make([]byte, 10))

	_, err := Parse(buf)
	require.ErrorIs(t, err, ErrTruncatedHeader)

	var herr *HeaderError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, `body of chunk "LIST"`, herr.Field)
}

func TestHeader_String(t *testing.T) {
	t.Parallel()

	h, err := Parse(bytes.NewReader(wavtest.Stereo16(44100, make([]int16, 882))))
	require.NoError(t, err)

	assert.Equal(t, "PCM little-endian, 2 ch, 44100 Hz, 16-bit, 441 samples (0.010s), data at 44", h.String())
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PCM", FormatPCM.String())
	assert.Equal(t, "IEEE float", FormatIEEEFloat.String())
	assert.Equal(t, "mu-law", FormatMULaw.String())
	assert.Equal(t, "extensible", FormatExtensible.String())
	assert.Equal(t, "unknown(0x0055)", Format(0x55).String())
}
