package location

import "math"

// Scaling constants for the equirectangular projection: meters moved per
// 1e-7 degree of latitude along a meridian, and its inverse.
const (
	LatLonToMeters = 0.011131884502145034
	MetersToLatLon = 89.83204953368922

	latLonToCm = LatLonToMeters * 100
	degToRad   = math.Pi / 180
)

// LongitudeScale returns the ratio of east-west to north-south meters per
// degree at the given latitude, clamped to 0.01 so the inverse stays bounded
// near the poles.
func LongitudeScale(latE7 int32) float64 {
	scale := math.Cos(float64(latE7) * (1e-7 * degToRad))
	return math.Max(scale, 0.01)
}

// WrapLongitude wraps a longitude in 1e-7 degrees into [-1.8e9, 1.8e9],
// applying at most one +/-360 degree correction. Inputs must lie within
// [-3.6e9, 3.6e9]; values beyond one full wrap are not handled.
func WrapLongitude(lngE7 int64) int32 {
	if lngE7 > 1800000000 {
		lngE7 -= 3600000000
	} else if lngE7 < -1800000000 {
		lngE7 += 3600000000
	}
	return int32(lngE7)
}

// DiffLongitude returns lng1 - lng2 in 1e-7 degrees, corrected across the
// antimeridian. When both values share a sign no crossing is possible within
// range and the plain difference is returned.
func DiffLongitude(lng1, lng2 int32) int32 {
	if (lng1 < 0) == (lng2 < 0) {
		return lng1 - lng2
	}
	dlng := int64(lng1) - int64(lng2)
	if dlng > 1800000000 {
		dlng -= 3600000000
	} else if dlng < -1800000000 {
		dlng += 3600000000
	}
	return int32(dlng)
}

// LimitLatitude reflects a latitude in 1e-7 degrees that has crossed a pole
// back into [-9e8, 9e8]. This is a pole-crossing approximation, not a true
// polar wrap: the longitude is not flipped.
func LimitLatitude(latE7 int32) int32 {
	if latE7 > 900000000 {
		return int32(1800000000 - int64(latE7))
	}
	if latE7 < -900000000 {
		return int32(-(1800000000 + int64(latE7)))
	}
	return latE7
}

// radToCd converts radians to centidegrees.
func radToCd(rad float64) float64 {
	return rad * (180 / math.Pi) * 100
}
