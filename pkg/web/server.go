// Package web provides a minimal live dashboard for the classification
// pipeline: the latest prediction over HTTP and a websocket stream of new
// results.
package web

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-lens/internal/log"
	"github.com/teslashibe/go-lens/pkg/hub"
)

// Prediction is the dashboard view of the latest result.
type Prediction struct {
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Server is the dashboard server. It implements display.Sink: every Show
// call updates the latest value and pushes it to websocket subscribers.
type Server struct {
	app  *fiber.App
	port string

	mu     sync.RWMutex
	latest Prediction

	predictionHub *hub.Hub

	// OnMetrics supplies pipeline counters for /api/metrics. Optional.
	OnMetrics func() any
}

// NewServer creates the dashboard server.
func NewServer(port string) *Server {
	s := &Server{
		port:          port,
		predictionHub: hub.New("predictions"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "go-lens",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	app.Get("/healthz", s.handleHealth)

	api := app.Group("/api")
	api.Get("/prediction", s.handlePrediction)
	api.Get("/metrics", s.handleMetrics)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/predictions", websocket.New(s.handlePredictionsWS))

	s.app = app
	return s
}

// Show records the latest prediction and broadcasts it to subscribers.
func (s *Server) Show(text string) {
	p := Prediction{Text: text, At: time.Now()}

	s.mu.Lock()
	s.latest = p
	s.mu.Unlock()

	if err := s.predictionHub.BroadcastJSON(p); err != nil {
		log.Warn("prediction broadcast failed", "err", err)
	}
}

// Latest returns the most recent prediction.
func (s *Server) Latest() Prediction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Start runs the server. It blocks until the listener stops.
func (s *Server) Start() error {
	log.Info("dashboard listening", "port", s.port)
	go s.predictionHub.Run()
	return s.app.Listen(":" + s.port)
}

// StartAsync runs the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("dashboard server error", "err", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
