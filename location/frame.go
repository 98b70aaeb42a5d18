package location

import (
	"fmt"
	"math"
	"strings"
)

// Frame identifies the reference an altitude value is measured against.
type Frame uint8

const (
	FrameAbsolute     Frame = 0 // above mean sea level
	FrameAboveHome    Frame = 1 // above the registered home point
	FrameAboveOrigin  Frame = 2 // above the registered origin point
	FrameAboveTerrain Frame = 3 // above terrain (via the terrain provider)
)

// String returns the canonical lower-case name of the frame.
func (f Frame) String() string {
	switch f {
	case FrameAbsolute:
		return "absolute"
	case FrameAboveHome:
		return "above-home"
	case FrameAboveOrigin:
		return "above-origin"
	case FrameAboveTerrain:
		return "above-terrain"
	}
	return fmt.Sprintf("frame(%d)", uint8(f))
}

// ParseFrame returns the Frame named by s (case-insensitive, as produced by
// Frame.String).
func ParseFrame(s string) (Frame, error) {
	switch strings.ToLower(s) {
	case "absolute":
		return FrameAbsolute, nil
	case "above-home":
		return FrameAboveHome, nil
	case "above-origin":
		return FrameAboveOrigin, nil
	case "above-terrain":
		return FrameAboveTerrain, nil
	}
	return FrameAbsolute, fmt.Errorf("%w: %q", ErrInvalidFrame, s)
}

// SetAltCm stores altCm as the raw altitude and sets the frame flags for
// frame. Terrain altitudes are stored as a relative-altitude variant, so
// FrameAboveTerrain sets both RelativeAlt and TerrainAlt.
func (l *Location) SetAltCm(altCm int32, frame Frame) {
	l.Alt = altCm
	l.RelativeAlt = false
	l.TerrainAlt = false
	l.OriginAlt = false
	switch frame {
	case FrameAbsolute:
	case FrameAboveHome:
		l.RelativeAlt = true
	case FrameAboveOrigin:
		l.OriginAlt = true
	case FrameAboveTerrain:
		l.RelativeAlt = true
		l.TerrainAlt = true
	}
}

// SetAltM is SetAltCm with the altitude given in meters.
func (l *Location) SetAltM(altM float64, frame Frame) {
	l.SetAltCm(int32(altM*100), frame)
}

// AltFrame derives the current altitude frame from the flags. Priority is
// terrain over origin over home over absolute.
func (l *Location) AltFrame() Frame {
	switch {
	case l.TerrainAlt:
		return FrameAboveTerrain
	case l.OriginAlt:
		return FrameAboveOrigin
	case l.RelativeAlt:
		return FrameAboveHome
	}
	return FrameAbsolute
}

// AltCm returns the altitude in centimeters expressed in the desired frame,
// converting through the absolute frame when the frames differ. Conversions
// involving home, origin or terrain fail when the corresponding reference in
// r is missing or the terrain provider reports an error.
func (l *Location) AltCm(desired Frame, r *Refs) (int32, error) {
	frame := l.AltFrame()
	if desired == frame {
		return l.Alt, nil
	}

	// Terrain height above MSL at this point, needed when either side of
	// the conversion is terrain-referenced.
	var terrainCm int32
	if frame == FrameAboveTerrain || desired == FrameAboveTerrain {
		provider := r.terrainProvider()
		if provider == nil {
			return 0, ErrNoTerrainProvider
		}
		terrainM, err := provider(*l)
		if err != nil {
			return 0, fmt.Errorf("terrain provider: %w", err)
		}
		terrainCm = int32(math.Round(terrainM * 100))
	}

	var altAbsCm int32
	switch frame {
	case FrameAbsolute:
		altAbsCm = l.Alt
	case FrameAboveHome:
		if !r.HomeIsSet() {
			return 0, ErrNoHome
		}
		altAbsCm = l.Alt + r.Home().Alt
	case FrameAboveOrigin:
		if !r.OriginIsSet() {
			return 0, ErrNoOrigin
		}
		altAbsCm = l.Alt + r.Origin().Alt
	case FrameAboveTerrain:
		altAbsCm = l.Alt + terrainCm
	}

	switch desired {
	case FrameAbsolute:
		return altAbsCm, nil
	case FrameAboveHome:
		if !r.HomeIsSet() {
			return 0, ErrNoHome
		}
		return altAbsCm - r.Home().Alt, nil
	case FrameAboveOrigin:
		if !r.OriginIsSet() {
			return 0, ErrNoOrigin
		}
		return altAbsCm - r.Origin().Alt, nil
	case FrameAboveTerrain:
		return altAbsCm - terrainCm, nil
	}
	return 0, ErrInvalidFrame
}

// AltM is AltCm with the result in meters.
func (l *Location) AltM(desired Frame, r *Refs) (float64, error) {
	altCm, err := l.AltCm(desired, r)
	if err != nil {
		return 0, err
	}
	return float64(altCm) * 0.01, nil
}

// ChangeAltFrame converts the stored altitude to the desired frame. On
// failure the location is left completely unchanged.
func (l *Location) ChangeAltFrame(desired Frame, r *Refs) error {
	altCm, err := l.AltCm(desired, r)
	if err != nil {
		return err
	}
	l.SetAltCm(altCm, desired)
	return nil
}

// CopyAltFrom copies the altitude value and frame flags verbatim from other.
// This is a flag copy, not a frame conversion.
func (l *Location) CopyAltFrom(other Location) {
	l.Alt = other.Alt
	l.RelativeAlt = other.RelativeAlt
	l.TerrainAlt = other.TerrainAlt
	l.OriginAlt = other.OriginAlt
}
