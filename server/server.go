// Package server exposes the FoodBot chat orchestration over HTTP. The
// endpoint never returns a 5xx for gateway failures: every such failure is
// absorbed into a 200 fallback reply, so the widget needs no retry logic.
package server

import (
	"encoding/json"
	"net"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/foodhubco/foodbot/chat"
	"github.com/foodhubco/foodbot/pkg/openai"
)

// Server is the HTTP surface of the chat service. Request handling is
// stateless; the only shared state (config, rule table, metrics) is
// read-only or internally synchronized.
type Server struct {
	config       Config
	orchestrator *chat.Orchestrator
	metrics      *Metrics
	logger       *zap.Logger
	app          *fiber.App
}

// New creates a Server. Credential absence is decided here, exactly once:
// without an API key the orchestrator gets no gateway and every reply comes
// from the fallback responder for the process lifetime.
func New(config Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	var gateway chat.Gateway
	if config.APIKey != "" {
		gateway = openai.NewClient(openai.Config{
			APIKey:  config.APIKey,
			BaseURL: config.BaseURL,
			Model:   config.Model,
			Timeout: config.GatewayTimeout,
		})
	} else {
		logger.Warn("no OpenAI credential configured, running in fallback-only mode")
	}

	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
	})

	s := &Server{
		config:       config,
		orchestrator: chat.New(gateway, config.SystemPrompt, logger),
		metrics:      NewMetrics(),
		logger:       logger,
		app:          app,
	}

	// Register routes
	app.Post("/api/chat", s.handleChat)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	// Prometheus exposition from the server's private registry
	app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}),
	))

	return s
}

// Run starts the server on the configured listening address.
func (s *Server) Run() error {
	s.logger.Info("starting chat server",
		zap.String("listen", s.config.ListenAddr),
		zap.String("model", s.config.Model),
		zap.Bool("llm_configured", s.orchestrator.Configured()),
	)

	return s.app.Listen(s.config.ListenAddr)
}

// RunWithListener serves on an existing listener. Tests use it to bind to an
// ephemeral port.
func (s *Server) RunWithListener(listener net.Listener) error {
	return s.app.Listener(listener)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// chatRequest is the inbound wire format. History entries carry the widget's
// type tag ("user" or "bot").
type chatRequest struct {
	Message string         `json:"message"`
	History []historyEntry `json:"history"`
}

type historyEntry struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// chatResponse is the outbound wire format. Error is present only when the
// reply was degraded to fallback by a gateway failure.
type chatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
	Error  string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleChat runs one turn of the conversation: parse, orchestrate, record
// metrics, respond. Invalid input is the only condition surfaced as an HTTP
// error.
func (s *Server) handleChat(c *fiber.Ctx) error {
	start := time.Now()

	var req chatRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		s.logger.Error("failed to parse request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	history := make([]chat.Turn, 0, len(req.History))
	for _, entry := range req.History {
		role := chat.RoleAssistant
		if entry.Type == "user" {
			role = chat.RoleUser
		}
		history = append(history, chat.Turn{Role: role, Text: entry.Text})
	}

	reply, err := s.orchestrator.Reply(c.Context(), req.Message, history)
	if err != nil {
		// Only invalid input reaches here; gateway failures have already
		// been absorbed into a fallback reply.
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "Message is required"})
	}

	s.metrics.RepliesTotal.WithLabelValues(reply.Source).Inc()
	if reply.Classification != "" {
		s.metrics.GatewayFailuresTotal.WithLabelValues(string(reply.Classification)).Inc()
	}
	s.metrics.RequestDuration.Observe(time.Since(start).Seconds())

	s.logger.Debug("chat reply",
		zap.String("source", reply.Source),
		zap.Duration("duration", time.Since(start)),
	)

	return c.JSON(chatResponse{
		Reply:  reply.Text,
		Source: reply.Source,
		Error:  reply.ErrorDetail,
	})
}
