package location

// TerrainFunc returns the terrain height above mean sea level, in meters, at
// the given location. It is called synchronously from altitude conversions
// and must not block.
type TerrainFunc func(Location) (float64, error)

// Refs holds the optional reference points that altitude-frame conversions
// depend on: a home location, an origin location, and a terrain provider.
// Conversions that need a reference which is not set fail with ErrNoHome,
// ErrNoOrigin or ErrNoTerrainProvider.
//
// Refs carries no internal locking. The expected usage is a single writer
// (the control loop that sets home on arming and origin on navigation-filter
// initialisation) with readers synchronized externally. All read paths accept
// a nil *Refs, which behaves as an empty registry.
type Refs struct {
	home      Location
	origin    Location
	homeSet   bool
	originSet bool
	terrain   TerrainFunc
}

// SetHome sets the home reference point.
func (r *Refs) SetHome(home Location) {
	r.home = home
	r.homeSet = true
}

// ClearHome clears the home reference point.
func (r *Refs) ClearHome() {
	r.home = Location{}
	r.homeSet = false
}

// HomeIsSet reports whether a home reference point is set.
func (r *Refs) HomeIsSet() bool {
	return r != nil && r.homeSet
}

// Home returns the home reference point, or the zero Location if none is set.
// Callers that must distinguish "unset" from "zero" use HomeIsSet.
func (r *Refs) Home() Location {
	if r == nil {
		return Location{}
	}
	return r.home
}

// SetOrigin sets the origin reference point.
func (r *Refs) SetOrigin(origin Location) {
	r.origin = origin
	r.originSet = true
}

// ClearOrigin clears the origin reference point.
func (r *Refs) ClearOrigin() {
	r.origin = Location{}
	r.originSet = false
}

// OriginIsSet reports whether an origin reference point is set.
func (r *Refs) OriginIsSet() bool {
	return r != nil && r.originSet
}

// Origin returns the origin reference point, or the zero Location if none is
// set.
func (r *Refs) Origin() Location {
	if r == nil {
		return Location{}
	}
	return r.origin
}

// SetTerrainProvider installs the terrain height callback, replacing any
// previous provider. A nil provider makes terrain-frame conversions fail
// with ErrNoTerrainProvider.
func (r *Refs) SetTerrainProvider(fn TerrainFunc) {
	r.terrain = fn
}

func (r *Refs) terrainProvider() TerrainFunc {
	if r == nil {
		return nil
	}
	return r.terrain
}
