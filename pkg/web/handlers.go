package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-lens/pkg/hub"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handlePrediction returns the latest prediction.
func (s *Server) handlePrediction(c *fiber.Ctx) error {
	return c.JSON(s.Latest())
}

// handleMetrics returns pipeline counters when a provider is wired.
func (s *Server) handleMetrics(c *fiber.Ctx) error {
	if s.OnMetrics == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "metrics not configured",
		})
	}
	return c.JSON(s.OnMetrics())
}

// handlePredictionsWS streams every new prediction to the client.
func (s *Server) handlePredictionsWS(c *websocket.Conn) {
	client := hub.NewClient(s.predictionHub, c)

	// Send the current value so new clients do not start blank.
	if latest := s.Latest(); latest.Text != "" {
		c.WriteJSON(latest)
	}

	client.Run()
}
