// Package web provides a lightweight status dashboard for a capture
// session: session stats, the list of saved frames, and a websocket
// event feed. It serves status only; the live video feed never touches
// the network.
package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-framegrab/pkg/hub"
	"github.com/teslashibe/go-framegrab/pkg/store"
)

// Server is the status dashboard server.
type Server struct {
	app    *fiber.App
	addr   string
	dir    string
	logger *slog.Logger

	session *store.Session
	events  *hub.Hub
}

// NewServer creates a dashboard for the given session, serving saved
// frames out of dir.
func NewServer(addr, dir string, session *store.Session, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		addr:    addr,
		dir:     dir,
		logger:  logger,
		session: session,
		events:  hub.New(logger),
	}

	app := fiber.New(fiber.Config{
		AppName:               "framegrab dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/frames", s.handleFrames)

	// Saved frame files
	app.Get("/frames/:name", s.handleFrameFile)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/events", websocket.New(s.handleEventsWS))

	s.app = app
	return s
}

// Start starts the dashboard server. It blocks.
func (s *Server) Start() error {
	go s.events.Run()
	s.logger.Info("dashboard listening", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// StartAsync starts the dashboard server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			s.logger.Error("dashboard server error", "error", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// NotifySaved broadcasts a frame-saved event to connected clients.
func (s *Server) NotifySaved(name string) {
	s.events.Publish(hub.Saved(name))
}

// NotifySaveFailed broadcasts a save-failure event.
func (s *Server) NotifySaveFailed(name string, err error) {
	s.events.Publish(hub.SaveFailed(name, err))
}
