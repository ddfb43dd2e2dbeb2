// SPDX-License-Identifier: EPL-2.0

package utils

import "errors"

var (
	ErrUnsupportedWidth = errors.New("unsupported sample width")
	ErrShortDst         = errors.New("dst too small")
)
