package location

import (
	"bytes"
	"testing"
)

func TestPackFlags(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		expected byte
	}{
		{"none", Location{}, 0},
		{"relative_alt", Location{RelativeAlt: true}, 0x01},
		{"loiter_ccw", Location{LoiterCCW: true}, 0x02},
		{"terrain_alt", Location{TerrainAlt: true}, 0x04},
		{"origin_alt", Location{OriginAlt: true}, 0x08},
		{"loiter_xtrack", Location{LoiterXtrack: true}, 0x10},
		{"all", Location{RelativeAlt: true, LoiterCCW: true, TerrainAlt: true, OriginAlt: true, LoiterXtrack: true}, 0x1f},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.PackFlags(); got != tt.expected {
				t.Errorf("PackFlags() = %#02x, expected %#02x", got, tt.expected)
			}
			var l Location
			l.UnpackFlags(tt.expected)
			if l.PackFlags() != tt.expected {
				t.Errorf("UnpackFlags(%#02x) did not round trip", tt.expected)
			}
		})
	}
}

func TestUnpackFlagsVerbatim(t *testing.T) {
	// A wire value with both terrain and origin bits set is preserved
	// as-is; no repair is applied on decode.
	var l Location
	l.UnpackFlags(0x04 | 0x08)
	if !l.TerrainAlt || !l.OriginAlt {
		t.Errorf("flags = %+v, expected both terrain and origin set", l)
	}
	if l.RelativeAlt {
		t.Error("RelativeAlt should stay clear when bit 0 is clear")
	}
}

func TestMarshalBinaryLayout(t *testing.T) {
	l := Location{
		Lat:         0x04030201,
		Lng:         0x08070605,
		Alt:         0x0c0b0a09,
		RelativeAlt: true,
		TerrainAlt:  true,
	}

	data, err := l.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	expected := []byte{
		0x05, 0x06, 0x07, 0x08, // lng, little endian
		0x01, 0x02, 0x03, 0x04, // lat
		0x09, 0x0a, 0x0b, 0x0c, // alt
		0x05, // flags
	}
	if !bytes.Equal(data, expected) {
		t.Errorf("MarshalBinary() = % x, expected % x", data, expected)
	}
	if len(data) != EncodedSize {
		t.Errorf("len = %d, expected %d", len(data), EncodedSize)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	original := New(-353632620, 1491652370, -1234, FrameAboveTerrain)
	original.LoiterCCW = true
	original.LoiterXtrack = true

	data, err := original.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	var decoded Location
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip mismatch: %+v != %+v", decoded, original)
	}
}

func TestUnmarshalBinaryShort(t *testing.T) {
	var l Location
	if err := l.UnmarshalBinary(make([]byte, EncodedSize-1)); err == nil {
		t.Error("UnmarshalBinary should reject short input")
	}
	if err := l.UnmarshalBinary(nil); err == nil {
		t.Error("UnmarshalBinary should reject nil input")
	}
}
