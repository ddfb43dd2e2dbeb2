// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MixMono averages every frame of the interleaved samples in src into one
// value of dst and returns the number of frames written. Averages are
// truncated toward zero. With one channel src is copied as is. dst may
// share its backing array with src.
func MixMono(dst, src []int, channels int) (int, error) {
	if channels < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}
	if channels == 1 {
		return copy(dst, src), nil
	}

	frames := min(len(src)/channels, len(dst))

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (src[idx] + src[idx+1]) / 2
		}
	default:
		for f := range frames {
			sum := 0
			base := f * channels
			for c := range channels {
				sum += src[base+c]
			}
			dst[f] = sum / channels
		}
	}

	return frames, nil
}
