package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.bug.st/serial"

	"github.com/GitMasterNikanjam/go-location/sim"
)

// Version information - populated at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	flag.String("config", "", "TOML config file (flags override file values)")
	flag.Float64("lat", -35.363262, "Start latitude (decimal degrees)")
	flag.Float64("lon", 149.165237, "Start longitude (decimal degrees)")
	flag.Float64("alt", 50.0, "Start altitude above home (meters)")
	flag.Float64("home-alt", 584.0, "Home altitude AMSL (meters)")
	flag.Float64("speed", 12.0, "Ground speed (m/s)")
	flag.Duration("rate", 1*time.Second, "NMEA output rate")
	flag.Duration("fix-time", 2*time.Second, "Time to first fix")
	flag.Float64("accept-radius", 5.0, "Waypoint acceptance radius (meters)")
	flag.String("route", "", "JSON waypoint route file to fly")
	flag.Bool("loop", false, "Restart the route after the last waypoint")
	flag.Duration("duration", 0, "How long to run (0 = indefinitely)")
	flag.String("serial", "", "Serial port for NMEA output (e.g. /dev/ttyUSB0)")
	flag.Int("baud", 9600, "Serial port baud rate")
	flag.Bool("terrain", false, "Install the synthetic terrain provider")
	flag.Float64("terrain-base", 580.0, "Synthetic terrain base height AMSL (meters)")
	flag.Float64("terrain-relief", 40.0, "Synthetic terrain relief amplitude (meters)")
	flag.Bool("quiet", false, "Suppress info logging (only output NMEA data)")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.BoolP("version", "V", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		if Version != "dev" {
			fmt.Printf("v%s\n", Version)
		} else {
			fmt.Printf("%s\n", Commit)
		}
		os.Exit(0)
	}

	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		log.Fatalf("Failed to bind flags: %v", err)
	}
	viper.SetEnvPrefix("LOCSIM")
	viper.AutomaticEnv()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("Couldn't read config: %v", err)
		}
	}

	level, err := log.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr) // keep NMEA on stdout clean
	if viper.GetBool("quiet") {
		log.SetLevel(log.ErrorLevel)
	}

	config := sim.Config{
		Latitude:      viper.GetFloat64("lat"),
		Longitude:     viper.GetFloat64("lon"),
		Altitude:      viper.GetFloat64("alt"),
		HomeAltitude:  viper.GetFloat64("home-alt"),
		Speed:         viper.GetFloat64("speed"),
		OutputRate:    viper.GetDuration("rate"),
		TimeToFix:     viper.GetDuration("fix-time"),
		AcceptRadius:  viper.GetFloat64("accept-radius"),
		RouteFile:     viper.GetString("route"),
		Loop:          viper.GetBool("loop"),
		Duration:      viper.GetDuration("duration"),
		SerialPort:    viper.GetString("serial"),
		BaudRate:      viper.GetInt("baud"),
		Terrain:       viper.GetBool("terrain"),
		TerrainBase:   viper.GetFloat64("terrain-base"),
		TerrainRelief: viper.GetFloat64("terrain-relief"),
		Quiet:         viper.GetBool("quiet"),
	}

	simulator, err := sim.New(config)
	if err != nil {
		log.Fatalf("Failed to create simulator: %v", err)
	}

	var nmeaWriter io.Writer = os.Stdout
	if config.SerialPort != "" {
		mode := &serial.Mode{
			BaudRate: config.BaudRate,
			Parity:   serial.NoParity,
			DataBits: 8,
			StopBits: serial.OneStopBit,
		}
		port, err := serial.Open(config.SerialPort, mode)
		if err != nil {
			log.Fatalf("Failed to open serial port %s: %v", config.SerialPort, err)
		}
		defer port.Close()
		nmeaWriter = port
		log.WithFields(log.Fields{
			"port": config.SerialPort,
			"baud": config.BaudRate,
		}).Info("Opened serial port")
	}
	simulator.SetNMEAWriter(nmeaWriter)

	log.WithFields(log.Fields{
		"lat":   config.Latitude,
		"lon":   config.Longitude,
		"alt":   config.Altitude,
		"speed": config.Speed,
		"route": config.RouteFile,
	}).Info("Starting simulator")

	if err := simulator.Start(); err != nil {
		log.Fatalf("Failed to start simulator: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.WithField("signal", sig).Info("Shutting down")
		if err := simulator.Stop(); err != nil {
			log.Warnf("Stop failed: %v", err)
		}
	case <-simulator.Done():
		log.Info("Simulation finished")
	}
}
