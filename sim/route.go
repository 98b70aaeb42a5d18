package sim

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/GitMasterNikanjam/go-location/location"
)

// Waypoint is one route entry as stored in a route file.
type Waypoint struct {
	Lat   float64 `json:"lat"`             // decimal degrees
	Lon   float64 `json:"lon"`             // decimal degrees
	AltM  float64 `json:"alt_m"`           // meters in the given frame
	Frame string  `json:"frame,omitempty"` // altitude frame name; empty = above-home
}

// RouteFromWaypoints converts route entries into locations, validating each
// altitude frame name and coordinate range.
func RouteFromWaypoints(waypoints []Waypoint) ([]location.Location, error) {
	if len(waypoints) == 0 {
		return nil, ErrEmptyRoute
	}
	route := make([]location.Location, 0, len(waypoints))
	for i, wp := range waypoints {
		frame := location.FrameAboveHome
		if wp.Frame != "" {
			var err error
			frame, err = location.ParseFrame(wp.Frame)
			if err != nil {
				return nil, fmt.Errorf("waypoint %d: %w", i, err)
			}
		}
		loc := location.FromDegrees(wp.Lat, wp.Lon, wp.AltM, frame)
		if !loc.CheckLatLng() {
			return nil, fmt.Errorf("waypoint %d: coordinates out of range", i)
		}
		route = append(route, loc)
	}
	return route, nil
}

// ReadRouteFile loads a JSON route file: an array of waypoint objects with
// lat/lon in decimal degrees, alt_m in meters and an optional frame name.
func ReadRouteFile(path string) ([]location.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read route file: %w", err)
	}
	var waypoints []Waypoint
	if err := json.Unmarshal(data, &waypoints); err != nil {
		return nil, fmt.Errorf("failed to parse route file: %w", err)
	}
	return RouteFromWaypoints(waypoints)
}
