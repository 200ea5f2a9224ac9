package web

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-framegrab/pkg/hub"
)

// handleStatus returns the session counters.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.session.Stats())
}

// handleFrames returns the frames saved so far, oldest first.
func (s *Server) handleFrames(c *fiber.Ctx) error {
	frames := s.session.Frames()
	return c.JSON(fiber.Map{
		"count":  len(frames),
		"frames": frames,
	})
}

// handleFrameFile serves one saved frame by file name. Only bare names
// are accepted; anything that looks like a path is rejected.
func (s *Server) handleFrameFile(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" || name != filepath.Base(name) ||
		strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid frame name",
		})
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "frame not found",
		})
	}
	return c.SendFile(path)
}

// handleEventsWS streams capture events to a dashboard client.
func (s *Server) handleEventsWS(c *websocket.Conn) {
	client := hub.NewClient(s.events, c)
	client.Run()
}
