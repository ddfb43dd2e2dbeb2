// SPDX-License-Identifier: EPL-2.0

package wav

// Endianness is the byte order of every multi-byte field in the container,
// selected by the RIFF ("RIFF") or RIFX ("RIFX") signature.
type Endianness int

const (
	EndianUnknown Endianness = iota
	LittleEndian
	BigEndian
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return "unknown"
	}
}

// Unpack2 composes a signed 16-bit value from b using byte order e.
// Anything other than BigEndian is decoded as little-endian.
func Unpack2(b [2]byte, e Endianness) int16 {
	if e == BigEndian {
		return int16(uint16(b[0])<<8 | uint16(b[1]))
	}
	return int16(uint16(b[1])<<8 | uint16(b[0]))
}

// Unpack4 composes a signed 32-bit value from b using byte order e.
// Anything other than BigEndian is decoded as little-endian.
func Unpack4(b [4]byte, e Endianness) int32 {
	if e == BigEndian {
		return int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
	}
	return int32(uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0]))
}
