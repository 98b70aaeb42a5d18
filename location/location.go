// Package location implements a compact geodetic position type for vehicle
// control: latitude/longitude in 1e-7 degree integer units, altitude in
// centimeters tagged with a reference frame, and flat-Earth tangent-plane
// geometry (distance, bearing, offset, interpolation) between positions.
//
// Altitude frames other than absolute are resolved through an explicitly
// injected Refs value; conversions fail with a sentinel error when the needed
// reference is missing, and never modify the receiver on failure.
package location

import (
	"math"

	"github.com/GitMasterNikanjam/go-location/vector"
)

// Location is a geodetic position with frame-tagged altitude. It is a plain
// value type: freely copyable, comparable, zero value meaning "unset".
type Location struct {
	Lat int32 // latitude in 1e-7 degrees
	Lng int32 // longitude in 1e-7 degrees
	Alt int32 // altitude in centimeters; reference depends on the frame flags

	RelativeAlt  bool // altitude is relative to home
	LoiterCCW    bool // loiter counter-clockwise; carried but not interpreted here
	TerrainAlt   bool // altitude is above terrain; implies RelativeAlt
	OriginAlt    bool // altitude is above the origin
	LoiterXtrack bool // loiter crosstrack mode; carried but not interpreted here
}

// New returns a Location at the given latitude/longitude (1e-7 degrees) with
// the altitude (cm) tagged with frame.
func New(latE7, lngE7, altCm int32, frame Frame) Location {
	l := Location{Lat: latE7, Lng: lngE7}
	l.SetAltCm(altCm, frame)
	return l
}

// FromDegrees returns a Location from decimal degrees and altitude in meters.
func FromDegrees(latDeg, lngDeg, altM float64, frame Frame) Location {
	return New(
		int32(math.Round(latDeg*1e7)),
		int32(math.Round(lngDeg*1e7)),
		int32(math.Round(altM*100)),
		frame,
	)
}

// FromOriginNEU returns a Location displaced from the registered origin by a
// north/east/up offset in centimeters, with the altitude tagged with frame.
// If no origin is set the latitude and longitude are left at zero.
func FromOriginNEU[T vector.Float](r *Refs, offsetNEUCm vector.Vec3[T], frame Frame) Location {
	var l Location
	l.SetAltCm(int32(offsetNEUCm.Z), frame)
	if r.OriginIsSet() {
		origin := r.Origin()
		l.Lat = origin.Lat
		l.Lng = origin.Lng
		l.Offset(float64(offsetNEUCm.X)*0.01, float64(offsetNEUCm.Y)*0.01)
	}
	return l
}

// IsZero reports whether every field, including the flags, is zero. This is a
// fast "never touched" check, not a statement about validity: the point at
// 0N 0E with absolute altitude 0 is also zero.
func (l *Location) IsZero() bool {
	return *l == Location{}
}

// Zero resets every field to zero.
func (l *Location) Zero() {
	*l = Location{}
}

// Initialized reports whether any of latitude, longitude or altitude is
// nonzero. A heuristic "has this been set" check, not strict validity.
func (l *Location) Initialized() bool {
	return l.Lat != 0 || l.Lng != 0 || l.Alt != 0
}

// AltIsZero reports whether the raw altitude value is zero.
func (l *Location) AltIsZero() bool {
	return l.Alt == 0
}

// LatDegrees returns the latitude in decimal degrees.
func (l *Location) LatDegrees() float64 {
	return float64(l.Lat) * 1e-7
}

// LngDegrees returns the longitude in decimal degrees.
func (l *Location) LngDegrees() float64 {
	return float64(l.Lng) * 1e-7
}

// CheckLat reports whether a latitude in 1e-7 degrees is within +/-90 degrees.
func CheckLat(latE7 int32) bool {
	return latE7 >= -900000000 && latE7 <= 900000000
}

// CheckLng reports whether a longitude in 1e-7 degrees is within +/-180 degrees.
func CheckLng(lngE7 int32) bool {
	return lngE7 >= -1800000000 && lngE7 <= 1800000000
}

// CheckLatLng reports whether both coordinates are within numeric range.
func (l *Location) CheckLatLng() bool {
	return CheckLat(l.Lat) && CheckLng(l.Lng)
}

// SameLatLonAs reports whether both points have identical coordinates.
func (l *Location) SameLatLonAs(other Location) bool {
	return l.Lat == other.Lat && l.Lng == other.Lng
}

// SameAltAs reports whether both points have the same altitude. Altitudes in
// the same frame are compared exactly; otherwise both are converted to the
// absolute frame and compared with a small tolerance, returning false if
// either conversion fails.
func (l *Location) SameAltAs(other Location, r *Refs) bool {
	if l.AltFrame() == other.AltFrame() {
		return l.Alt == other.Alt
	}
	alt1, err1 := l.AltCm(FrameAbsolute, r)
	alt2, err2 := other.AltCm(FrameAbsolute, r)
	if err1 != nil || err2 != nil {
		return false
	}
	const epsilon = 1.1920929e-7
	return math.Abs(float64(alt1-alt2)*0.01) < epsilon
}

// SameLocAs reports whether both points have the same coordinates and the
// same altitude (see SameAltAs).
func (l *Location) SameLocAs(other Location, r *Refs) bool {
	return l.SameLatLonAs(other) && l.SameAltAs(other, r)
}

// Sanitize repairs obviously-unset or out-of-range fields from defaultLoc and
// reports whether anything changed. Three independent repairs, in order:
// zero lat/lng are replaced with the default's; a zero relative altitude is
// replaced with the default's altitude converted into this point's frame
// (skipped if that conversion fails); out-of-range coordinates are replaced
// with the default's.
func (l *Location) Sanitize(defaultLoc Location, r *Refs) bool {
	changed := false

	if l.Lat == 0 && l.Lng == 0 {
		l.Lat = defaultLoc.Lat
		l.Lng = defaultLoc.Lng
		changed = true
	}

	if l.Alt == 0 && l.RelativeAlt {
		if altCm, err := defaultLoc.AltCm(l.AltFrame(), r); err == nil {
			l.Alt = altCm
			changed = true
		}
	}

	if !l.CheckLatLng() {
		l.Lat = defaultLoc.Lat
		l.Lng = defaultLoc.Lng
		changed = true
	}

	return changed
}
