package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/scipdup/internal/analyzer"
	"github.com/dshills/scipdup/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "scipdup"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultDBPath is the default location for the history database
	DefaultDBPath = "~/.scipdup"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	analyzer *analyzer.Analyzer
	storage  storage.Storage
}

// NewServer creates a new MCP server instance. Repeat analyses of unchanged
// files are served from the analyzer's result cache.
func NewServer(dbPath string) (*Server, error) {
	dbFile, err := resolveDBFile(dbPath)
	if err != nil {
		return nil, err
	}

	// Initialize history storage
	store, err := storage.NewSQLiteStorage(dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Create analyzer with result caching enabled
	a := analyzer.New(&analyzer.Config{UseCache: true})

	// Create MCP server
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:      mcpServer,
		analyzer: a,
		storage:  store,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.storage.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	// Register analyze_index tool
	s.mcp.AddTool(analyzeIndexTool(), s.handleAnalyzeIndex)

	// Register list_runs tool
	s.mcp.AddTool(listRunsTool(), s.handleListRuns)
}

// resolveDBFile expands the history directory and returns the database file
// path, creating the directory if needed.
func resolveDBFile(dbPath string) (string, error) {
	if dbPath == "" || dbPath == DefaultDBPath {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".scipdup")
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create database directory: %w", err)
	}

	return filepath.Join(dbPath, "scipdup.db"), nil
}
