// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/fastwave/formats/wav"
	"github.com/ik5/fastwave/internal/wavtest"
)

// fixture writes data to a temp file and returns its path and header.
func fixture(t *testing.T, data []byte) (string, wav.Header) {
	t.Helper()

	h, err := wav.Parse(bytes.NewReader(data))
	require.NoError(t, err)

	return wavtest.WriteFile(t, "fixture.wav", data), h
}

// stereoFixture is a stereo 16-bit file with frames frames of a known
// pattern, and its sample bytes.
func stereoFixture(t *testing.T, frames int) (string, wav.Header, []byte) {
	t.Helper()

	samples := wavtest.Bytes16(wavtest.PCM16(2, frames), binary.LittleEndian)
	path, h := fixture(t, wavtest.Stereo16(44100, wavtest.PCM16(2, frames)))

	return path, h, samples
}
