// SPDX-License-Identifier: EPL-2.0

//go:build unix && !linux

package audio

const populateFlag = 0
