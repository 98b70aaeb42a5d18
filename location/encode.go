package location

import (
	"encoding/binary"
	"fmt"
)

// Flag bit assignments in the stored flags byte. The order matches the
// storage layout used by existing mission records and must not change.
const (
	flagRelativeAlt  = 1 << 0
	flagLoiterCCW    = 1 << 1
	flagTerrainAlt   = 1 << 2
	flagOriginAlt    = 1 << 3
	flagLoiterXtrack = 1 << 4
)

// EncodedSize is the length in bytes of an encoded Location record:
// longitude, latitude and altitude as little-endian int32, then the flags
// byte.
const EncodedSize = 13

// PackFlags returns the flags packed into the storage bit layout.
func (l *Location) PackFlags() uint8 {
	var b uint8
	if l.RelativeAlt {
		b |= flagRelativeAlt
	}
	if l.LoiterCCW {
		b |= flagLoiterCCW
	}
	if l.TerrainAlt {
		b |= flagTerrainAlt
	}
	if l.OriginAlt {
		b |= flagOriginAlt
	}
	if l.LoiterXtrack {
		b |= flagLoiterXtrack
	}
	return b
}

// UnpackFlags sets the flags from the storage bit layout, verbatim. No
// invariant repair is applied.
func (l *Location) UnpackFlags(b uint8) {
	l.RelativeAlt = b&flagRelativeAlt != 0
	l.LoiterCCW = b&flagLoiterCCW != 0
	l.TerrainAlt = b&flagTerrainAlt != 0
	l.OriginAlt = b&flagOriginAlt != 0
	l.LoiterXtrack = b&flagLoiterXtrack != 0
}

// MarshalBinary encodes the location into the fixed 13-byte storage record.
func (l Location) MarshalBinary() ([]byte, error) {
	buf := make([]byte, EncodedSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(l.Lng))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(l.Lat))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(l.Alt))
	buf[12] = l.PackFlags()
	return buf, nil
}

// UnmarshalBinary decodes a fixed 13-byte storage record.
func (l *Location) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedSize {
		return fmt.Errorf("location record must be %d bytes, got %d", EncodedSize, len(data))
	}
	l.Lng = int32(binary.LittleEndian.Uint32(data[0:4]))
	l.Lat = int32(binary.LittleEndian.Uint32(data[4:8]))
	l.Alt = int32(binary.LittleEndian.Uint32(data[8:12]))
	l.UnpackFlags(data[12])
	return nil
}
