// SPDX-License-Identifier: EPL-2.0

package audio

import "golang.org/x/sys/unix"

// populateFlag pre-faults the mapped pages.
const populateFlag = unix.MAP_POPULATE
