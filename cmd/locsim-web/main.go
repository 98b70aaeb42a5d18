// Command locsim-web serves a control and telemetry API for the waypoint
// simulator: REST start/stop/status, a websocket fix stream and Prometheus
// metrics.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/GitMasterNikanjam/go-location/sim"
)

type webServer struct {
	mu         sync.Mutex
	simulator  *sim.Simulator
	lastConfig sim.Config
	metrics    *sim.Metrics

	upgrader  websocket.Upgrader
	clientsMu sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan sim.Output
}

func newWebServer(metrics *sim.Metrics) *webServer {
	return &webServer{
		lastConfig: sim.DefaultConfig(),
		metrics:    metrics,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan sim.Output, 16),
	}
}

func (ws *webServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	ws.mu.Lock()
	simulator := ws.simulator
	ws.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if simulator == nil {
		json.NewEncoder(w).Encode(map[string]any{"running": false})
		return
	}
	json.NewEncoder(w).Encode(simulator.Status())
}

func (ws *webServer) handleStart(w http.ResponseWriter, r *http.Request) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	config := ws.lastConfig
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
			http.Error(w, fmt.Sprintf("Invalid config: %v", err), http.StatusBadRequest)
			return
		}
	}
	ws.lastConfig = config

	if ws.simulator != nil && ws.simulator.IsRunning() {
		log.Info("Stopping existing simulator before starting new one")
		ws.simulator.Stop()
	}

	simulator, err := sim.New(config)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create simulator: %v", err), http.StatusBadRequest)
		return
	}
	simulator.SetMetrics(ws.metrics)
	simulator.AddCallback(func(out sim.Output) {
		select {
		case ws.broadcast <- out:
		default:
			// Channel full, skip this update
		}
	})

	if err := simulator.Start(); err != nil {
		http.Error(w, fmt.Sprintf("Failed to start simulator: %v", err), http.StatusInternalServerError)
		return
	}
	ws.simulator = simulator
	log.WithFields(log.Fields{
		"lat":   config.Latitude,
		"lon":   config.Longitude,
		"route": config.RouteFile,
	}).Info("Simulator started")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "started"})
}

func (ws *webServer) handleStop(w http.ResponseWriter, r *http.Request) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.simulator != nil {
		if ws.simulator.IsRunning() {
			if err := ws.simulator.Stop(); err != nil {
				http.Error(w, fmt.Sprintf("Failed to stop simulator: %v", err), http.StatusInternalServerError)
				return
			}
		}
		ws.simulator = nil
		log.Info("Simulator stopped")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "stopped"})
}

func (ws *webServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ws.clientsMu.Lock()
	ws.clients[conn] = true
	total := len(ws.clients)
	ws.clientsMu.Unlock()
	log.WithField("clients", total).Info("Client connected")

	ws.mu.Lock()
	simulator := ws.simulator
	ws.mu.Unlock()
	if simulator != nil {
		conn.WriteJSON(map[string]any{"type": "status", "data": simulator.Status()})
	}

	// Drain client messages until disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	ws.clientsMu.Lock()
	delete(ws.clients, conn)
	total = len(ws.clients)
	ws.clientsMu.Unlock()
	log.WithField("clients", total).Info("Client disconnected")
}

func (ws *webServer) broadcastToClients(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out := <-ws.broadcast:
			message := map[string]any{"type": "fix", "data": out}
			ws.clientsMu.Lock()
			for client := range ws.clients {
				if err := client.WriteJSON(message); err != nil {
					client.Close()
					delete(ws.clients, client)
				}
			}
			ws.clientsMu.Unlock()
		}
	}
}

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(level)

	metrics, err := sim.NewMetrics(nil)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}
	ws := newWebServer(metrics)

	router := mux.NewRouter()
	router.HandleFunc("/api/status", ws.handleStatus).Methods(http.MethodGet)
	router.HandleFunc("/api/start", ws.handleStart).Methods(http.MethodPost)
	router.HandleFunc("/api/stop", ws.handleStop).Methods(http.MethodPost)
	router.HandleFunc("/ws", ws.handleWebSocket)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	srv := &http.Server{Addr: *addr, Handler: router}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", *addr).Info("Listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return ws.broadcastToClients(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error(err)
		os.Exit(1)
	}
}
