package sim

import (
	"math"

	"github.com/GitMasterNikanjam/go-location/location"
)

// SyntheticTerrain returns a terrain provider with a wavy ground model:
// baseM meters AMSL plus two overlapping sine ridges of up to reliefM meters.
// It stands in for real elevation data in simulation and tests.
func SyntheticTerrain(baseM, reliefM float64) location.TerrainFunc {
	return func(l location.Location) (float64, error) {
		// Ridge wavelengths of roughly 10 km and 4 km on the ground.
		northKm := l.LatDegrees() * 111.32
		eastKm := l.LngDegrees() * 111.32 * math.Cos(l.LatDegrees()*math.Pi/180)
		wave1 := math.Sin(northKm/10*2*math.Pi) * 0.7
		wave2 := math.Sin((northKm+eastKm)/4*2*math.Pi) * 0.3
		return baseM + reliefM*(wave1+wave2), nil
	}
}
