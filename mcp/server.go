package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/halcyonforge/eu5ref/corpus"
	"github.com/halcyonforge/eu5ref/search"
)

const (
	serverName    = "eu5ref"
	serverVersion = "2.0.0"
)

// Server exposes a query engine over the Model Context Protocol.
type Server struct {
	engine *search.Engine
	source corpus.Source
	mcp    *server.MCPServer
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates an MCP server over the given corpus source and engine.
func NewServer(source corpus.Source, engine *search.Engine, opts ...Option) (*Server, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}

	s := &Server{
		engine: engine,
		source: source,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.mcp = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	)
	s.registerTools()
	s.registerResources()

	return s, nil
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio",
		"entries", s.source.Snapshot().TotalEntries(),
	)
	return server.ServeStdio(s.mcp)
}
