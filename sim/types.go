package sim

import (
	"time"

	"github.com/GitMasterNikanjam/go-location/location"
)

// Fix is one position report from the simulator.
type Fix struct {
	Location  location.Location `json:"location"`
	Latitude  float64           `json:"latitude"`  // decimal degrees
	Longitude float64           `json:"longitude"` // decimal degrees
	Altitude  float64           `json:"altitude"`  // meters AMSL where resolvable
	Speed     float64           `json:"speed"`     // m/s
	Course    float64           `json:"course"`    // degrees, 0 north
	HaveFix   bool              `json:"have_fix"`
	Waypoint  int               `json:"waypoint"` // index of the active waypoint
	Timestamp time.Time         `json:"timestamp"`
}

// Status represents the current simulator status
type Status struct {
	Running        bool          `json:"running"`
	StartTime      time.Time     `json:"start_time,omitempty"`
	ElapsedTime    time.Duration `json:"elapsed_time"`
	Fix            Fix           `json:"fix"`
	Config         Config        `json:"config"`
	RouteTotal     int           `json:"route_total,omitempty"`
	RouteCompleted bool          `json:"route_completed,omitempty"`
}

// Output bundles the NMEA sentences generated for one fix.
type Output struct {
	Sentences []string  `json:"sentences"`
	Fix       Fix       `json:"fix"`
	Timestamp time.Time `json:"timestamp"`
}
