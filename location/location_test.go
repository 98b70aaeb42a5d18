package location

import (
	"math"
	"testing"

	"github.com/GitMasterNikanjam/go-location/vector"
)

func TestIsZero(t *testing.T) {
	var l Location
	if !l.IsZero() {
		t.Error("zero-valued Location should report IsZero")
	}

	tests := []struct {
		name   string
		mutate func(*Location)
	}{
		{"lat", func(l *Location) { l.Lat = 1 }},
		{"lng", func(l *Location) { l.Lng = 1 }},
		{"alt", func(l *Location) { l.Alt = 1 }},
		{"relative_alt", func(l *Location) { l.RelativeAlt = true }},
		{"loiter_ccw", func(l *Location) { l.LoiterCCW = true }},
		{"terrain_alt", func(l *Location) { l.TerrainAlt = true }},
		{"origin_alt", func(l *Location) { l.OriginAlt = true }},
		{"loiter_xtrack", func(l *Location) { l.LoiterXtrack = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Location
			tt.mutate(&l)
			if l.IsZero() {
				t.Errorf("Location with %s set should not report IsZero", tt.name)
			}
		})
	}
}

func TestZero(t *testing.T) {
	l := New(1, 2, 3, FrameAboveTerrain)
	l.LoiterXtrack = true
	l.Zero()
	if !l.IsZero() {
		t.Errorf("Zero() left fields set: %+v", l)
	}
}

func TestInitialized(t *testing.T) {
	var l Location
	if l.Initialized() {
		t.Error("zero Location should not report Initialized")
	}
	l.Alt = 1
	if !l.Initialized() {
		t.Error("Location with altitude set should report Initialized")
	}

	// Flags alone do not count as initialised
	var m Location
	m.RelativeAlt = true
	if m.Initialized() {
		t.Error("flags alone should not report Initialized")
	}
}

func TestCheckLatLng(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng int32
		valid    bool
	}{
		{"origin", 0, 0, true},
		{"extreme valid", 900000000, 1800000000, true},
		{"extreme valid negative", -900000000, -1800000000, true},
		{"lat too big", 900000001, 0, false},
		{"lat too small", -900000001, 0, false},
		{"lng too big", 0, 1800000001, false},
		{"lng too small", 0, -1800000001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Location{Lat: tt.lat, Lng: tt.lng}
			if got := l.CheckLatLng(); got != tt.valid {
				t.Errorf("CheckLatLng() = %v, expected %v", got, tt.valid)
			}
		})
	}
}

func TestFromDegrees(t *testing.T) {
	l := FromDegrees(-35.363262, 149.165237, 10.0, FrameAboveHome)
	if l.Lat != -353632620 {
		t.Errorf("Lat = %d, expected -353632620", l.Lat)
	}
	if l.Lng != 1491652370 {
		t.Errorf("Lng = %d, expected 1491652370", l.Lng)
	}
	if l.Alt != 1000 {
		t.Errorf("Alt = %d, expected 1000", l.Alt)
	}
	if math.Abs(l.LatDegrees()-(-35.363262)) > 1e-7 {
		t.Errorf("LatDegrees() = %f, expected -35.363262", l.LatDegrees())
	}
	if math.Abs(l.LngDegrees()-149.165237) > 1e-7 {
		t.Errorf("LngDegrees() = %f, expected 149.165237", l.LngDegrees())
	}
}

func TestFromOriginNEU(t *testing.T) {
	refs := &Refs{}
	refs.SetOrigin(New(-353632620, 1491652370, 58400, FrameAbsolute))

	// 100 m north, 50 m east, 20 m up of the origin
	l := FromOriginNEU(refs, vector.Vec3[float64]{X: 10000, Y: 5000, Z: 2000}, FrameAboveOrigin)
	if l.AltFrame() != FrameAboveOrigin {
		t.Errorf("AltFrame() = %v, expected %v", l.AltFrame(), FrameAboveOrigin)
	}
	if l.Alt != 2000 {
		t.Errorf("Alt = %d, expected 2000", l.Alt)
	}

	origin := refs.Origin()
	ne := origin.DistanceNE(l)
	if math.Abs(ne.X-100) > 1 || math.Abs(ne.Y-50) > 1 {
		t.Errorf("offset from origin = (%f, %f), expected about (100, 50)", ne.X, ne.Y)
	}
}

func TestFromOriginNEUWithoutOrigin(t *testing.T) {
	l := FromOriginNEU(nil, vector.Vec3[float64]{X: 10000, Y: 5000, Z: 2000}, FrameAboveOrigin)
	if l.Lat != 0 || l.Lng != 0 {
		t.Errorf("coordinates = (%d, %d), expected zero without an origin", l.Lat, l.Lng)
	}
	if l.Alt != 2000 {
		t.Errorf("Alt = %d, expected 2000", l.Alt)
	}
}

func TestSanitize(t *testing.T) {
	def := New(-353632620, 1491652370, 10000, FrameAbsolute)

	t.Run("zero latlng replaced", func(t *testing.T) {
		l := New(0, 0, 500, FrameAbsolute)
		if !l.Sanitize(def, nil) {
			t.Fatal("Sanitize should report a change")
		}
		if l.Lat != def.Lat || l.Lng != def.Lng {
			t.Errorf("coordinates = (%d, %d), expected defaults", l.Lat, l.Lng)
		}
	})

	t.Run("zero relative altitude repaired", func(t *testing.T) {
		refs := refsWithHome(2000)
		l := New(100, 200, 0, FrameAboveHome)
		if !l.Sanitize(def, refs) {
			t.Fatal("Sanitize should report a change")
		}
		// default at 100.00 m absolute is 80.00 m above a 20.00 m home
		if l.Alt != 8000 {
			t.Errorf("Alt = %d, expected 8000", l.Alt)
		}
	})

	t.Run("altitude repair skipped when conversion fails", func(t *testing.T) {
		l := New(100, 200, 0, FrameAboveHome)
		if l.Sanitize(def, nil) {
			t.Error("Sanitize should not report a change when nothing is repairable")
		}
		if l.Alt != 0 {
			t.Errorf("Alt = %d, expected untouched 0", l.Alt)
		}
	})

	t.Run("out of range replaced", func(t *testing.T) {
		l := New(950000000, 200, 500, FrameAbsolute)
		if !l.Sanitize(def, nil) {
			t.Fatal("Sanitize should report a change")
		}
		if l.Lat != def.Lat || l.Lng != def.Lng {
			t.Errorf("coordinates = (%d, %d), expected defaults", l.Lat, l.Lng)
		}
	})

	t.Run("valid point untouched", func(t *testing.T) {
		l := New(100, 200, 500, FrameAbsolute)
		before := l
		if l.Sanitize(def, nil) {
			t.Error("Sanitize should report no change for a valid point")
		}
		if l != before {
			t.Errorf("Sanitize modified a valid point: %+v != %+v", l, before)
		}
	})
}

func TestSameLatLonAs(t *testing.T) {
	a := New(100, 200, 300, FrameAbsolute)
	b := New(100, 200, 999, FrameAboveHome)
	if !a.SameLatLonAs(b) {
		t.Error("points with equal coordinates should compare equal")
	}
	b.Lng++
	if a.SameLatLonAs(b) {
		t.Error("points with different longitudes should not compare equal")
	}
}

func TestSameAltAs(t *testing.T) {
	t.Run("same frame exact", func(t *testing.T) {
		a := New(1, 2, 300, FrameAboveHome)
		b := New(3, 4, 300, FrameAboveHome)
		if !a.SameAltAs(b, nil) {
			t.Error("equal altitudes in the same frame should match")
		}
		b.Alt++
		if a.SameAltAs(b, nil) {
			t.Error("different altitudes in the same frame should not match")
		}
	})

	t.Run("cross frame via absolute", func(t *testing.T) {
		refs := refsWithHome(10000)
		a := New(1, 2, 2000, FrameAboveHome)
		b := New(3, 4, 12000, FrameAbsolute)
		if !a.SameAltAs(b, refs) {
			t.Error("20 m above a 100 m home should equal 120 m absolute")
		}
	})

	t.Run("cross frame unresolvable", func(t *testing.T) {
		a := New(1, 2, 2000, FrameAboveHome)
		b := New(3, 4, 12000, FrameAbsolute)
		if a.SameAltAs(b, nil) {
			t.Error("comparison must fail closed when a conversion fails")
		}
	})
}

func TestSameLocAs(t *testing.T) {
	refs := refsWithHome(10000)
	a := New(100, 200, 2000, FrameAboveHome)
	b := New(100, 200, 12000, FrameAbsolute)
	if !a.SameLocAs(b, refs) {
		t.Error("same coordinates and equivalent altitudes should match")
	}
	b.Lat++
	if a.SameLocAs(b, refs) {
		t.Error("different coordinates should not match")
	}
}
