// ABOUTME: MCP server implementation for moodlog
// ABOUTME: Provides tools and resources for AI assistants to record and read moods
package mcp

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/moodlog/internal/db"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

// Server wraps the MCP server with moodlog-specific functionality.
type Server struct {
	mcpServer *mcp.Server
	store     *db.Store
	logger    *log.Logger
	now       func() time.Time
}

// NewServer creates a moodlog MCP server backed by store.
func NewServer(store *db.Store, logger *log.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    "moodlog",
		Version: Version,
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		store:     store,
		logger:    logger,
		now:       time.Now,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting", "db", s.store.Path())
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
