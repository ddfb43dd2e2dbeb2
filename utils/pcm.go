// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"fmt"

	"github.com/ik5/fastwave/formats/wav"
)

// DecodePCM widens interleaved PCM samples of width bytes from src into dst
// using byte order e, and returns the number of samples written.
// 8-bit samples stay unsigned as stored in WAVE files; wider ones are signed.
// A trailing partial sample in src is ignored.
func DecodePCM(dst []int, src []byte, width int, e wav.Endianness) (int, error) {
	if width < 1 || width > 4 {
		return 0, fmt.Errorf("%w: %d bytes", ErrUnsupportedWidth, width)
	}

	n := len(src) / width
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrShortDst, n, len(dst))
	}

	switch width {
	case 1:
		for i := range n {
			dst[i] = int(src[i])
		}
	case 2:
		for i := range n {
			dst[i] = int(wav.Unpack2([2]byte(src[2*i:2*i+2]), e))
		}
	case 3:
		for i := range n {
			dst[i] = int24(src[3*i:3*i+3], e)
		}
	case 4:
		for i := range n {
			dst[i] = int(wav.Unpack4([4]byte(src[4*i:4*i+4]), e))
		}
	}

	return n, nil
}

// int24 sign-extends a packed 24-bit sample.
func int24(b []byte, e wav.Endianness) int {
	var v int32
	if e == wav.BigEndian {
		v = int32(b[0])<<16 | int32(b[1])<<8 | int32(b[2])
	} else {
		v = int32(b[2])<<16 | int32(b[1])<<8 | int32(b[0])
	}
	if v&0x800000 != 0 {
		v -= 1 << 24
	}
	return int(v)
}
