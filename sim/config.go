package sim

import (
	"time"

	"github.com/GitMasterNikanjam/go-location/location"
)

// Config holds all configuration options for the vehicle simulator
type Config struct {
	Latitude      float64       `json:"latitude"`       // start latitude in decimal degrees
	Longitude     float64       `json:"longitude"`      // start longitude in decimal degrees
	Altitude      float64       `json:"altitude"`       // start altitude in meters above home
	HomeAltitude  float64       `json:"home_altitude"`  // home altitude AMSL in meters
	Speed         float64       `json:"speed"`          // ground speed in m/s
	OutputRate    time.Duration `json:"output_rate"`    // fix/NMEA output interval
	TimeToFix     time.Duration `json:"time_to_fix"`    // simulated time before the first valid fix
	AcceptRadius  float64       `json:"accept_radius"`  // waypoint acceptance radius in meters
	RouteFile     string        `json:"route_file"`     // JSON waypoint route to fly (empty = hold position)
	Loop          bool          `json:"loop"`           // restart the route after the last waypoint
	Duration      time.Duration `json:"duration"`       // how long to run (0 = indefinitely)
	SerialPort    string        `json:"serial_port"`    // serial port device for NMEA output (empty = none)
	BaudRate      int           `json:"baud_rate"`      // serial baud rate
	Terrain       bool          `json:"terrain"`        // install the synthetic terrain provider
	TerrainBase   float64       `json:"terrain_base"`   // synthetic terrain base height AMSL in meters
	TerrainRelief float64       `json:"terrain_relief"` // synthetic terrain relief amplitude in meters
	Quiet         bool          `json:"quiet"`          // suppress informational messages
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Latitude:      -35.363262, // CMAC
		Longitude:     149.165237,
		Altitude:      50.0,
		HomeAltitude:  584.0,
		Speed:         12.0,
		OutputRate:    1 * time.Second,
		TimeToFix:     2 * time.Second,
		AcceptRadius:  5.0,
		Loop:          false,
		BaudRate:      9600,
		Terrain:       false,
		TerrainBase:   580.0,
		TerrainRelief: 40.0,
	}
}

// Validate checks if the configuration is valid and returns an error if not
func (c *Config) Validate() error {
	if c.Speed <= 0 {
		return ErrInvalidSpeed
	}
	if c.OutputRate <= 0 {
		return ErrInvalidOutputRate
	}
	if c.AcceptRadius <= 0 {
		return ErrInvalidAcceptRadius
	}
	if c.BaudRate <= 0 {
		return ErrInvalidBaudRate
	}
	start := location.FromDegrees(c.Latitude, c.Longitude, c.Altitude, location.FrameAboveHome)
	if !start.CheckLatLng() {
		return ErrInvalidStartPosition
	}
	return nil
}
