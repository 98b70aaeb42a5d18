// Package sim implements a waypoint-following vehicle simulator built on the
// location package. It propagates a frame-tagged position along a route,
// resolves altitudes against an injected reference registry, and emits NMEA
// 0183 sentences at a fixed rate.
package sim

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/GitMasterNikanjam/go-location/location"
)

// Simulator flies a route of frame-tagged waypoints at constant ground speed.
type Simulator struct {
	mu     sync.RWMutex
	config Config
	refs   *location.Refs

	current  location.Location
	legStart location.Location
	course   float64 // degrees, 0 north

	route          []location.Location
	routeIndex     int
	routeCompleted bool

	haveFix        bool
	fixTime        time.Time
	startTime      time.Time
	lastUpdateTime time.Time

	nmeaWriter io.Writer
	callbacks  []func(Output)
	metrics    *Metrics

	running bool
	ctx     context.Context
	cancel  context.CancelFunc
	ticker  *time.Ticker
	stopped chan struct{}
}

// New creates a simulator from config. The reference registry is initialized
// with home and origin at the start position; the synthetic terrain provider
// is installed when config.Terrain is set.
func New(config Config) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	home := location.FromDegrees(config.Latitude, config.Longitude, config.HomeAltitude, location.FrameAbsolute)
	refs := &location.Refs{}
	refs.SetHome(home)
	refs.SetOrigin(home)

	now := time.Now()
	s := &Simulator{
		config:         config,
		refs:           refs,
		current:        location.FromDegrees(config.Latitude, config.Longitude, config.Altitude, location.FrameAboveHome),
		startTime:      now,
		fixTime:        now.Add(config.TimeToFix),
		lastUpdateTime: now,
	}
	s.legStart = s.current

	if config.Terrain {
		terrain := SyntheticTerrain(config.TerrainBase, config.TerrainRelief)
		refs.SetTerrainProvider(func(l location.Location) (float64, error) {
			heightM, err := terrain(l)
			if err != nil {
				s.metrics.IncTerrainFailures()
			}
			return heightM, err
		})
	}

	if config.RouteFile != "" {
		route, err := ReadRouteFile(config.RouteFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load route: %w", err)
		}
		s.route = route
	}

	return s, nil
}

// Refs returns the simulator's reference registry. The simulator is the
// single writer; external readers must not mutate it while running.
func (s *Simulator) Refs() *location.Refs {
	return s.refs
}

// SetNMEAWriter sets the writer for NMEA output
func (s *Simulator) SetNMEAWriter(writer io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nmeaWriter = writer
}

// SetMetrics attaches a metrics collector. Must be called before Start.
func (s *Simulator) SetMetrics(m *Metrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = m
}

// AddCallback adds a callback invoked with each output block
func (s *Simulator) AddCallback(callback func(Output)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, callback)
}

// Start starts the simulation loop
func (s *Simulator) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrSimulatorAlreadyRunning
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.ticker = time.NewTicker(s.config.OutputRate)
	s.stopped = make(chan struct{})
	s.running = true
	s.startTime = time.Now()
	s.fixTime = s.startTime.Add(s.config.TimeToFix)
	s.lastUpdateTime = s.startTime

	go s.run()
	return nil
}

// Stop stops the simulation loop
func (s *Simulator) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrSimulatorNotRunning
	}

	s.cancel()
	s.ticker.Stop()
	s.running = false
	close(s.stopped)
	return nil
}

// IsRunning returns whether the simulator is currently running
func (s *Simulator) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Done returns a channel closed when the simulator stops. Valid after Start.
func (s *Simulator) Done() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stopped
}

// Status returns the current simulator status
func (s *Simulator) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var elapsed time.Duration
	if s.running {
		elapsed = time.Since(s.startTime)
	}

	return Status{
		Running:        s.running,
		StartTime:      s.startTime,
		ElapsedTime:    elapsed,
		Fix:            s.makeFix(time.Now()),
		Config:         s.config,
		RouteTotal:     len(s.route),
		RouteCompleted: s.routeCompleted,
	}
}

// run is the main simulation loop
func (s *Simulator) run() {
	var durationChan <-chan time.Time
	if s.config.Duration > 0 {
		durationTimer := time.NewTimer(s.config.Duration)
		durationChan = durationTimer.C
		defer durationTimer.Stop()
	}

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.ticker.C:
			s.update()
			s.output()

			if s.routeDone() && !s.config.Loop && len(s.route) > 0 {
				s.Stop()
				return
			}
		case <-durationChan:
			s.Stop()
			return
		}
	}
}

func (s *Simulator) routeDone() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.routeCompleted
}

// update advances the simulated position by the wall-clock delta
func (s *Simulator) update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if !s.haveFix && now.After(s.fixTime) {
		s.haveFix = true
	}
	if s.haveFix {
		s.step(now.Sub(s.lastUpdateTime).Seconds())
	}
	s.lastUpdateTime = now
}

// step moves the vehicle dt seconds toward the active waypoint. The course
// is the instantaneous bearing to the waypoint; altitude tracks the leg by
// interpolating between the leg start and the waypoint in its frame.
func (s *Simulator) step(dt float64) {
	if dt <= 0 || s.routeCompleted || len(s.route) == 0 {
		return
	}

	target := s.route[s.routeIndex]
	distM := s.current.Distance(target)
	s.course = s.current.Bearing(target) * 180 / math.Pi

	travelM := s.config.Speed * dt
	if travelM >= distM || distM <= s.config.AcceptRadius {
		s.current.Lat = target.Lat
		s.current.Lng = target.Lng
		s.current.CopyAltFrom(target)
		s.advanceWaypoint()
		return
	}

	s.current.OffsetBearing(s.course, travelM)
	s.current.LinearlyInterpolateAlt(s.legStart, target)
}

func (s *Simulator) advanceWaypoint() {
	s.metrics.IncWaypointsReached()
	s.legStart = s.current
	s.routeIndex++
	if s.routeIndex >= len(s.route) {
		if s.config.Loop {
			s.routeIndex = 0
		} else {
			s.routeIndex = len(s.route) - 1
			s.routeCompleted = true
		}
	}
}

// makeFix snapshots the current state. Callers hold at least the read lock.
func (s *Simulator) makeFix(now time.Time) Fix {
	altM, err := s.current.AltM(location.FrameAbsolute, s.refs)
	if err != nil {
		// No reference to resolve against; report the raw value.
		s.metrics.IncFrameConversionFailures()
		altM = float64(s.current.Alt) * 0.01
	}
	return Fix{
		Location:  s.current,
		Latitude:  s.current.LatDegrees(),
		Longitude: s.current.LngDegrees(),
		Altitude:  altM,
		Speed:     s.config.Speed,
		Course:    s.course,
		HaveFix:   s.haveFix,
		Waypoint:  s.routeIndex,
		Timestamp: now,
	}
}

// output renders and distributes the NMEA block for the current state
func (s *Simulator) output() {
	s.mu.Lock()
	now := time.Now()
	fix := s.makeFix(now)
	sentences := generateSentences(fix, now)
	writer := s.nmeaWriter
	callbacks := s.callbacks
	s.mu.Unlock()

	if writer != nil {
		for _, sentence := range sentences {
			fmt.Fprint(writer, sentence)
		}
	}

	s.metrics.IncFixes()

	out := Output{Sentences: sentences, Fix: fix, Timestamp: now}
	for _, callback := range callbacks {
		go callback(out) // async to avoid blocking the loop
	}
}
