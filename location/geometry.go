package location

import (
	"math"

	"github.com/GitMasterNikanjam/go-location/vector"
)

// distanceNE is the single flat-Earth formula behind every distance variant:
// latitude delta in 1e-7 degrees times the scaling constant gives north
// meters, longitude delta (antimeridian-corrected) scaled by the cosine of
// the mean latitude gives east meters.
func distanceNE(from, to Location) (north, east float64) {
	north = float64(to.Lat-from.Lat) * LatLonToMeters
	east = float64(DiffLongitude(to.Lng, from.Lng)) * LatLonToMeters *
		LongitudeScale((from.Lat+to.Lat)/2)
	return north, east
}

// DistanceNE returns the north/east vector in meters from one location to
// another, instantiated at the requested float width.
func DistanceNE[T vector.Float](from, to Location) vector.Vec2[T] {
	north, east := distanceNE(from, to)
	return vector.Vec2[T]{X: T(north), Y: T(east)}
}

// DistanceNED returns the north/east/down vector in meters from one location
// to another. The vertical component is the raw altitude difference; frames
// are not harmonized (see Location.DistanceNEDAltFrame).
func DistanceNED[T vector.Float](from, to Location) vector.Vec3[T] {
	north, east := distanceNE(from, to)
	return vector.Vec3[T]{X: T(north), Y: T(east), Z: T(float64(from.Alt-to.Alt) * 0.01)}
}

// Distance returns the horizontal distance in meters to other.
func (l *Location) Distance(other Location) float64 {
	north, east := distanceNE(*l, other)
	return math.Hypot(north, east)
}

// DistanceNE returns the north/east vector in meters to other.
func (l *Location) DistanceNE(other Location) vector.Vec2[float64] {
	return DistanceNE[float64](*l, other)
}

// DistanceNED returns the north/east/down vector in meters to other, using
// the raw altitude values.
func (l *Location) DistanceNED(other Location) vector.Vec3[float64] {
	return DistanceNED[float64](*l, other)
}

// DistanceNEDAltFrame returns the north/east/down vector in meters to other,
// harmonizing the vertical component by converting both altitudes to the
// absolute frame. If either conversion fails the vertical delta degrades
// silently to zero.
func (l *Location) DistanceNEDAltFrame(other Location, r *Refs) vector.Vec3[float64] {
	alt1, err1 := l.AltCm(FrameAbsolute, r)
	alt2, err2 := other.AltCm(FrameAbsolute, r)
	if err1 != nil || err2 != nil {
		alt1, alt2 = 0, 0
	}
	north, east := distanceNE(*l, other)
	return vector.Vec3[float64]{X: north, Y: east, Z: float64(alt1-alt2) * 0.01}
}

// Bearing returns the bearing in radians to other, in [0, 2pi), with 0 north
// and increasing clockwise.
func (l *Location) Bearing(other Location) float64 {
	offEast := float64(DiffLongitude(other.Lng, l.Lng))
	offNorth := float64(other.Lat-l.Lat) / LongitudeScale((l.Lat+other.Lat)/2)
	bearing := math.Pi/2 + math.Atan2(-offNorth, offEast)
	if bearing < 0 {
		bearing += 2 * math.Pi
	}
	return bearing
}

// BearingCd returns the bearing to other in centidegrees, rounded.
func (l *Location) BearingCd(other Location) int32 {
	return int32(radToCd(l.Bearing(other)) + 0.5)
}

// OffsetLatLng displaces a coordinate pair by north/east meters and returns
// the new pair. The longitude scale is evaluated at the mean of the old and
// new latitude; the result is pole-limited and antimeridian-wrapped.
func OffsetLatLng(latE7, lngE7 int32, northM, eastM float64) (int32, int32) {
	dlat := int32(northM * MetersToLatLon)
	dlng := int64((eastM * MetersToLatLon) / LongitudeScale(latE7+dlat/2))
	latE7 = LimitLatitude(latE7 + dlat)
	lngE7 = WrapLongitude(int64(lngE7) + dlng)
	return latE7, lngE7
}

// Offset displaces the location by north/east meters.
func (l *Location) Offset(northM, eastM float64) {
	l.Lat, l.Lng = OffsetLatLng(l.Lat, l.Lng, northM, eastM)
}

// OffsetNED displaces the location by an NED vector in meters. The down
// component is negated into the altitude, which is positive up.
func (l *Location) OffsetNED(ofsNED vector.Vec3[float64]) {
	l.Offset(ofsNED.X, ofsNED.Y)
	l.Alt += int32(-ofsNED.Z * 100)
}

// OffsetUpCm raises the raw altitude by the given centimeters.
func (l *Location) OffsetUpCm(altOffsetCm int32) {
	l.Alt += altOffsetCm
}

// OffsetUpM raises the raw altitude by the given meters.
func (l *Location) OffsetUpM(altOffsetM float64) {
	l.Alt += int32(altOffsetM * 100)
}

// OffsetBearing displaces the location by distanceM meters along bearingDeg
// (0 north, clockwise).
func (l *Location) OffsetBearing(bearingDeg, distanceM float64) {
	northM := math.Cos(bearingDeg*degToRad) * distanceM
	eastM := math.Sin(bearingDeg*degToRad) * distanceM
	l.Offset(northM, eastM)
}

// OffsetBearingAndPitch displaces the location by distanceM meters along
// bearingDeg, pitched up by pitchDeg. The vertical component goes into the
// altitude.
func (l *Location) OffsetBearingAndPitch(bearingDeg, pitchDeg, distanceM float64) {
	cosPitch := math.Cos(pitchDeg * degToRad)
	northM := cosPitch * math.Cos(bearingDeg*degToRad) * distanceM
	eastM := cosPitch * math.Sin(bearingDeg*degToRad) * distanceM
	l.Offset(northM, eastM)
	l.Alt += int32(math.Sin(pitchDeg*degToRad) * distanceM * 100)
}

// LinePathProportion returns how far along the segment p1->p2 this location
// projects, in the NE plane: 0 at p1, 1 at p2. Coincident endpoints (within
// tolerance) are treated as already past the line and return 1.
func (l *Location) LinePathProportion(p1, p2 Location) float64 {
	v12 := p1.DistanceNE(p2)
	v1s := p1.DistanceNE(*l)
	distSq := v12.LengthSquared()
	if distSq < 0.001 {
		return 1.0
	}
	return v12.Dot(v1s) / distSq
}

// PastIntervalFinishLine reports whether this location has passed the
// perpendicular through p2 of the segment p1->p2.
func (l *Location) PastIntervalFinishLine(p1, p2 Location) bool {
	return l.LinePathProportion(p1, p2) >= 1.0
}

// LinearlyInterpolateAlt sets the altitude by interpolating between p1 and p2
// according to this location's projection onto the segment, clamped to the
// segment. The result is tagged with p2's frame.
func (l *Location) LinearlyInterpolateAlt(p1, p2 Location) {
	t := l.LinePathProportion(p1, p2)
	t = math.Max(0, math.Min(1, t))
	l.SetAltCm(p1.Alt+int32(math.Round(float64(p2.Alt-p1.Alt)*t)), p2.AltFrame())
}

// OriginOffsetNECm returns the north/east vector in centimeters from the
// registered origin to l. Fails with ErrNoOrigin if no origin is set.
func OriginOffsetNECm[T vector.Float](l Location, r *Refs) (vector.Vec2[T], error) {
	if !r.OriginIsSet() {
		return vector.Vec2[T]{}, ErrNoOrigin
	}
	origin := r.Origin()
	north := float64(l.Lat-origin.Lat) * latLonToCm
	east := float64(DiffLongitude(l.Lng, origin.Lng)) * latLonToCm *
		LongitudeScale((l.Lat+origin.Lat)/2)
	return vector.Vec2[T]{X: T(north), Y: T(east)}, nil
}

// OriginOffsetNEUCm returns the north/east/up vector in centimeters from the
// registered origin to l, with the vertical component converted into the
// above-origin frame.
func OriginOffsetNEUCm[T vector.Float](l Location, r *Refs) (vector.Vec3[T], error) {
	altCm, err := l.AltCm(FrameAboveOrigin, r)
	if err != nil {
		return vector.Vec3[T]{}, err
	}
	ne, err := OriginOffsetNECm[T](l, r)
	if err != nil {
		return vector.Vec3[T]{}, err
	}
	return vector.Vec3[T]{X: ne.X, Y: ne.Y, Z: T(altCm)}, nil
}

// OriginOffsetNECm returns the north/east vector in centimeters from the
// registered origin to the location.
func (l *Location) OriginOffsetNECm(r *Refs) (vector.Vec2[float64], error) {
	return OriginOffsetNECm[float64](*l, r)
}

// OriginOffsetNEM is OriginOffsetNECm in meters.
func (l *Location) OriginOffsetNEM(r *Refs) (vector.Vec2[float64], error) {
	ne, err := OriginOffsetNECm[float64](*l, r)
	if err != nil {
		return vector.Vec2[float64]{}, err
	}
	return ne.Scale(0.01), nil
}

// OriginOffsetNEUCm returns the north/east/up vector in centimeters from the
// registered origin to the location.
func (l *Location) OriginOffsetNEUCm(r *Refs) (vector.Vec3[float64], error) {
	return OriginOffsetNEUCm[float64](*l, r)
}

// OriginOffsetNEUM is OriginOffsetNEUCm in meters.
func (l *Location) OriginOffsetNEUM(r *Refs) (vector.Vec3[float64], error) {
	neu, err := OriginOffsetNEUCm[float64](*l, r)
	if err != nil {
		return vector.Vec3[float64]{}, err
	}
	return neu.Scale(0.01), nil
}
