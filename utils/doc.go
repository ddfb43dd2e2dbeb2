// SPDX-License-Identifier: EPL-2.0

// Package utils decodes PCM samples stored at their native width.
package utils
